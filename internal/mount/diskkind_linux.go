//go:build linux

package mount

import (
	"os"
	"path/filepath"
	"strings"
)

// diskKindOf classifies the block device backing a /dev node by probing
// sysfs. Non-device sources return an empty kind.
func diskKindOf(device string) string {
	name := strings.TrimPrefix(device, "/dev/")
	if name == device || strings.ContainsRune(name, '/') {
		return ""
	}
	return diskKindAt("/sys/block", name)
}

// diskKindAt resolves name against a sysfs block directory. Partitions
// (sda1, nvme0n1p2) are mapped to their whole device before probing.
func diskKindAt(root, name string) string {
	if _, err := os.Stat(filepath.Join(root, name)); err != nil {
		name = wholeDevice(name)
		if _, err := os.Stat(filepath.Join(root, name)); err != nil {
			return ""
		}
	}
	switch {
	case strings.HasPrefix(name, "zram"), strings.HasPrefix(name, "ram"):
		return "RAM"
	case strings.HasPrefix(name, "dm-"):
		if uuid, err := os.ReadFile(filepath.Join(root, name, "dm", "uuid")); err == nil &&
			strings.HasPrefix(string(uuid), "CRYPT") {
			return "crypt"
		}
		return ""
	}
	if b, err := os.ReadFile(filepath.Join(root, name, "removable")); err == nil &&
		strings.TrimSpace(string(b)) == "1" {
		return "remov"
	}
	b, err := os.ReadFile(filepath.Join(root, name, "queue", "rotational"))
	if err != nil {
		return ""
	}
	if strings.TrimSpace(string(b)) == "1" {
		return "HDD"
	}
	return "SSD"
}

// wholeDevice strips a partition suffix: sda1 -> sda, nvme0n1p2 -> nvme0n1.
func wholeDevice(name string) string {
	trimmed := strings.TrimRight(name, "0123456789")
	if strings.HasSuffix(trimmed, "p") && len(trimmed) > 1 &&
		trimmed[len(trimmed)-2] >= '0' && trimmed[len(trimmed)-2] <= '9' {
		return trimmed[:len(trimmed)-1]
	}
	return trimmed
}
