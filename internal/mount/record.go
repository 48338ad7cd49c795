package mount

import (
	"path/filepath"
	"strings"
)

// Stats holds capacity statistics for a reachable mount.
type Stats struct {
	Total     uint64
	Used      uint64
	Available uint64
	UseShare  float64 // in [0,1]
}

// Inodes holds inode statistics where the filesystem reports them.
type Inodes struct {
	Total    uint64
	Used     uint64
	Free     uint64
	UseShare float64 // in [0,1]
}

// Record is one mounted filesystem. DeviceID is the uniqueness key used
// by overlay lookups and path filtering.
type Record struct {
	DeviceID   string
	Device     string
	FSType     string
	MountPoint string
	Remote     bool
	DiskKind   string
	Label      string
	UUID       string
	PartUUID   string
	Stats      *Stats
	Inodes     *Inodes
}

// DisplayName returns the filesystem name, falling back to the device id
// when the mount table reports an empty source.
func (r *Record) DisplayName() string {
	if r.Device == "" {
		return r.DeviceID
	}
	return r.Device
}

// Unreachable reports whether the mount could not be statted.
func (r *Record) Unreachable() bool {
	return r.Stats == nil
}

// Filesystem types that never hold user data; hidden unless --all.
var pseudoFSTypes = map[string]bool{
	"autofs":      true,
	"binfmt_misc": true,
	"bpf":         true,
	"cgroup":      true,
	"cgroup2":     true,
	"configfs":    true,
	"debugfs":     true,
	"devpts":      true,
	"devtmpfs":    true,
	"efivarfs":    true,
	"fusectl":     true,
	"hugetlbfs":   true,
	"mqueue":      true,
	"overlay":     true,
	"proc":        true,
	"pstore":      true,
	"ramfs":       true,
	"securityfs":  true,
	"squashfs":    true,
	"sysfs":       true,
	"tmpfs":       true,
	"tracefs":     true,
}

// IsNormal reports whether a mount is a storage volume worth showing by
// default: backed by a device or a remote export, not a pseudo
// filesystem, and not zero-sized.
func IsNormal(r *Record) bool {
	if pseudoFSTypes[r.FSType] {
		return false
	}
	if r.Stats != nil && r.Stats.Total == 0 {
		return false
	}
	return r.Remote || strings.HasPrefix(r.Device, "/dev/")
}

// Normal returns the records passing IsNormal, preserving order.
func Normal(records []*Record) []*Record {
	kept := make([]*Record, 0, len(records))
	for _, r := range records {
		if IsNormal(r) {
			kept = append(kept, r)
		}
	}
	return kept
}

// FilterByPath keeps the records holding the given path: the mounts on
// the same device as the path, resolved by device id where the platform
// supports it and by longest mount-point prefix otherwise.
func FilterByPath(records []*Record, path string) []*Record {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if dev, ok := deviceIDOf(abs); ok {
		kept := make([]*Record, 0, 1)
		for _, r := range records {
			if r.DeviceID == dev {
				kept = append(kept, r)
			}
		}
		if len(kept) > 0 {
			return kept
		}
	}
	best := ""
	for _, r := range records {
		if withinMount(abs, r.MountPoint) && len(r.MountPoint) > len(best) {
			best = r.MountPoint
		}
	}
	kept := make([]*Record, 0, 1)
	for _, r := range records {
		if r.MountPoint == best && best != "" {
			kept = append(kept, r)
		}
	}
	return kept
}

func withinMount(path, mountPoint string) bool {
	if mountPoint == "/" {
		return true
	}
	return path == mountPoint || strings.HasPrefix(path, mountPoint+string(filepath.Separator))
}
