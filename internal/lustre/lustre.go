package lustre

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/GriffinCanCode/dfq/internal/mount"
)

// ComponentType is the role a mount plays in a Lustre filesystem. The
// declaration order is the sort order: metadata targets first, then
// object storage targets, then clients.
type ComponentType int

const (
	ComponentMDT ComponentType = iota
	ComponentOST
	ComponentClient
	ComponentUnknown
)

// String returns the display label of the component type.
func (c ComponentType) String() string {
	switch c {
	case ComponentMDT:
		return "MDT"
	case ComponentOST:
		return "OST"
	case ComponentClient:
		return "client"
	default:
		return "unknown"
	}
}

// Info is the overlay metadata attached to one mount.
type Info struct {
	UUID      string
	Component ComponentType
	Index     int
	HasIndex  bool
}

// Data is the overlay table built by a Collector. The zero value is the
// unavailable overlay: every lookup misses.
type Data struct {
	available bool
	byMount   map[string]Info
	byDevice  map[string]Info
}

// NewData builds an available overlay from mount-point keyed entries.
// Used by collectors and by tests injecting fixed overlay tables.
func NewData(byMount map[string]Info) *Data {
	return &Data{available: true, byMount: byMount, byDevice: map[string]Info{}}
}

// Available reports whether collection succeeded.
func (d *Data) Available() bool {
	return d != nil && d.available
}

// Lookup finds overlay metadata for a record, keyed by mount point first
// and device second, never by object identity.
func (d *Data) Lookup(rec *mount.Record) (Info, bool) {
	if !d.Available() || rec == nil {
		return Info{}, false
	}
	if info, ok := d.byMount[rec.MountPoint]; ok {
		return info, true
	}
	if info, ok := d.byDevice[rec.Device]; ok {
		return info, true
	}
	return Info{}, false
}

// IsLustre reports whether a record belongs to a Lustre filesystem,
// either as a client mount or as a local target backing one.
func (d *Data) IsLustre(rec *mount.Record) bool {
	if rec.FSType == "lustre" {
		return true
	}
	_, ok := d.Lookup(rec)
	return ok
}

// Collector produces overlay data. Collect is invoked at most once per
// run; errors are recoverable by treating the overlay as unavailable.
type Collector interface {
	Collect(ctx context.Context, records []*mount.Record) (*Data, error)
}

const devicesPath = "/proc/fs/lustre/devices"

type procCollector struct{}

// NewCollector builds the /proc-backed Lustre collector.
func NewCollector() Collector {
	return procCollector{}
}

// Collect reads the Lustre device list and keys the recognized targets
// by the mounts they back.
func (procCollector) Collect(ctx context.Context, records []*mount.Record) (*Data, error) {
	f, err := os.Open(devicesPath)
	if err != nil {
		return nil, fmt.Errorf("lustre device list: %w", err)
	}
	defer f.Close()
	targets, err := parseDevices(f)
	if err != nil {
		return nil, err
	}
	return buildData(targets, records), nil
}

// parseDevices reads /proc/fs/lustre/devices lines of the form
//
//	0 UP mdt fsname-MDT0000 fsname-MDT0000_UUID 11
//
// keeping only target entries (mdt, ost/obdfilter); helper devices like
// mdc/osc/lov are transport-side and carry no per-mount metadata.
func parseDevices(r io.Reader) (map[string]Info, error) {
	targets := make(map[string]Info)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 5 {
			continue
		}
		kind, name, uuid := fields[2], fields[3], fields[4]
		var component ComponentType
		switch kind {
		case "mdt":
			component = ComponentMDT
		case "ost", "obdfilter":
			component = ComponentOST
		default:
			continue
		}
		info := Info{UUID: uuid, Component: component}
		if idx, ok := targetIndex(name); ok {
			info.Index = idx
			info.HasIndex = true
		}
		targets[name] = info
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("lustre device list: %w", err)
	}
	return targets, nil
}

// targetIndex extracts the hexadecimal index from a target name such as
// fsname-OST001a.
func targetIndex(name string) (int, bool) {
	cut := strings.LastIndexAny(name, "-")
	if cut < 0 {
		return 0, false
	}
	suffix := name[cut+1:]
	for _, prefix := range []string{"MDT", "OST"} {
		if rest, ok := strings.CutPrefix(suffix, prefix); ok {
			idx, err := strconv.ParseInt(rest, 16, 32)
			if err != nil {
				return 0, false
			}
			return int(idx), true
		}
	}
	return 0, false
}

// buildData keys target metadata by the mounts backing them. Client
// mounts (fstype lustre) get a synthetic client entry named after the
// filesystem they mount.
func buildData(targets map[string]Info, records []*mount.Record) *Data {
	data := &Data{
		available: true,
		byMount:   make(map[string]Info),
		byDevice:  make(map[string]Info),
	}
	for _, rec := range records {
		if rec.FSType == "lustre" {
			fsname := clientFSName(rec.Device)
			data.byMount[rec.MountPoint] = Info{
				UUID:      fsname + "-client",
				Component: ComponentClient,
			}
			continue
		}
		for name, info := range targets {
			if strings.Contains(rec.Device, name) || strings.HasSuffix(rec.MountPoint, name) {
				data.byMount[rec.MountPoint] = info
				data.byDevice[rec.Device] = info
			}
		}
	}
	return data
}

// clientFSName extracts the filesystem name from a client device such as
// mgsnode@tcp:/fsname.
func clientFSName(device string) string {
	if idx := strings.LastIndex(device, "/"); idx >= 0 {
		return device[idx+1:]
	}
	return device
}
