package mount

import "fmt"

func formatDeviceID(major, minor uint64) string {
	return fmt.Sprintf("%d:%d", major, minor)
}
