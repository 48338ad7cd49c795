//go:build !linux

package mount

// diskKindOf needs sysfs; off Linux the disk kind stays unknown.
func diskKindOf(string) string {
	return ""
}
