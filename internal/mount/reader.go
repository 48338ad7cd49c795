package mount

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
)

// Reader produces the mount-table snapshot consumed by the pipeline.
type Reader interface {
	Read(ctx context.Context) ([]*Record, error)
}

// Filesystem types served over the network.
var remoteFSTypes = map[string]bool{
	"9p":         true,
	"afs":        true,
	"ceph":       true,
	"cifs":       true,
	"fuse.sshfs": true,
	"glusterfs":  true,
	"lustre":     true,
	"nfs":        true,
	"nfs4":       true,
	"smb2":       true,
	"smbfs":      true,
	"sshfs":      true,
}

type psutilReader struct {
	all bool
}

// NewReader builds the gopsutil-backed mount reader. With all set it
// includes every entry of the mount table, pseudo filesystems included.
func NewReader(all bool) Reader {
	return &psutilReader{all: all}
}

// Read snapshots the mount table. Partitions whose statistics cannot be
// read are kept with nil Stats so they still appear as unreachable.
func (p *psutilReader) Read(ctx context.Context) ([]*Record, error) {
	partitions, err := disk.PartitionsWithContext(ctx, p.all)
	if err != nil {
		return nil, fmt.Errorf("reading mount table: %w", err)
	}

	records := make([]*Record, 0, len(partitions))
	for _, part := range partitions {
		rec := &Record{
			Device:     part.Device,
			FSType:     part.Fstype,
			MountPoint: part.Mountpoint,
			Remote:     isRemote(part.Device, part.Fstype),
			DiskKind:   diskKindOf(part.Device),
		}
		if dev, ok := deviceIDOf(part.Mountpoint); ok {
			rec.DeviceID = dev
		} else {
			rec.DeviceID = part.Device
		}
		if usage, err := disk.UsageWithContext(ctx, part.Mountpoint); err == nil {
			rec.Stats = &Stats{
				Total:     usage.Total,
				Used:      usage.Used,
				Available: usage.Free,
				UseShare:  usage.UsedPercent / 100.0,
			}
			if usage.InodesTotal > 0 {
				rec.Inodes = &Inodes{
					Total:    usage.InodesTotal,
					Used:     usage.InodesUsed,
					Free:     usage.InodesFree,
					UseShare: usage.InodesUsedPercent / 100.0,
				}
			}
		}
		if label, err := disk.LabelWithContext(ctx, strings.TrimPrefix(part.Device, "/dev/")); err == nil {
			rec.Label = label
		}
		if serial, err := disk.SerialNumberWithContext(ctx, part.Device); err == nil {
			rec.UUID = serial
		}
		records = append(records, rec)
	}
	return records, nil
}

func isRemote(device, fstype string) bool {
	if remoteFSTypes[fstype] {
		return true
	}
	// nfs exports look like host:/path, cifs like //host/share
	return strings.Contains(device, ":/") || strings.HasPrefix(device, "//")
}
