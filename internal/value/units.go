package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Units selects how byte sizes are rendered.
type Units int

const (
	// UnitsBinary renders with 1024-based steps (K, M, G...).
	UnitsBinary Units = iota
	// UnitsSI renders with 1000-based steps.
	UnitsSI
	// UnitsBytes renders the raw byte count.
	UnitsBytes
)

var unitLabels = []string{"B", "K", "M", "G", "T", "P"}

// ParseUnits parses the --units flag value.
func ParseUnits(s string) (Units, error) {
	switch strings.ToLower(s) {
	case "binary", "":
		return UnitsBinary, nil
	case "si":
		return UnitsSI, nil
	case "bytes":
		return UnitsBytes, nil
	}
	return UnitsBinary, fmt.Errorf("unknown units %q (want binary, si or bytes)", s)
}

// String returns the flag spelling of the units mode.
func (u Units) String() string {
	switch u {
	case UnitsSI:
		return "si"
	case UnitsBytes:
		return "bytes"
	default:
		return "binary"
	}
}

// FormatBytes renders a byte count in the selected units. Scaled values
// keep one decimal below 100 and none above, so columns stay narrow.
func (u Units) FormatBytes(n uint64) string {
	if u == UnitsBytes {
		return strconv.FormatUint(n, 10)
	}
	step := 1024.0
	if u == UnitsSI {
		step = 1000.0
	}
	size := float64(n)
	idx := 0
	for size >= step && idx < len(unitLabels)-1 {
		size /= step
		idx++
	}
	if idx == 0 || size >= 100.0 {
		return fmt.Sprintf("%.0f%s", size, unitLabels[idx])
	}
	return fmt.Sprintf("%.1f%s", size, unitLabels[idx])
}

// Format renders a value for a table cell. Missing renders as a dash.
func (v Value) Format(u Units) string {
	switch v.typ {
	case TypeBytes:
		return u.FormatBytes(uint64(v.num))
	case TypePercent:
		return fmt.Sprintf("%.0f%%", v.num)
	case TypeNumber:
		if v.num == float64(int64(v.num)) {
			return strconv.FormatInt(int64(v.num), 10)
		}
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case TypeText:
		return v.text
	case TypeBool:
		if v.b {
			return "x"
		}
		return ""
	default:
		return "-"
	}
}
