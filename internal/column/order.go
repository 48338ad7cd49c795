package column

import (
	"fmt"
	"strings"
)

// Order is a sort direction.
type Order int

const (
	Asc Order = iota
	Desc
)

// ParseOrder accepts "asc"/"desc" or any unambiguous abbreviation,
// case-insensitive.
func ParseOrder(s string) (Order, error) {
	low := strings.ToLower(s)
	if low != "" && strings.HasPrefix("asc", low) {
		return Asc, nil
	}
	if low != "" && strings.HasPrefix("desc", low) {
		return Desc, nil
	}
	return Asc, fmt.Errorf("unknown sort order %q (want asc or desc)", s)
}

// String returns the canonical spelling.
func (o Order) String() string {
	if o == Desc {
		return "desc"
	}
	return "asc"
}
