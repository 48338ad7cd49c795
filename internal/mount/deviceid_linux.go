//go:build linux

package mount

import "syscall"

// deviceIDOf resolves a path to its device id in major:minor form.
func deviceIDOf(path string) (string, bool) {
	var st syscall.Stat_t
	if err := syscall.Stat(path, &st); err != nil {
		return "", false
	}
	dev := uint64(st.Dev)
	major := (dev >> 8) & 0xfff
	major |= (dev >> 32) &^ 0xfff
	minor := dev & 0xff
	minor |= (dev >> 12) &^ 0xff
	return formatDeviceID(major, minor), true
}
