package sorting

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/GriffinCanCode/dfq/internal/column"
	"github.com/GriffinCanCode/dfq/internal/lustre"
	"github.com/GriffinCanCode/dfq/internal/mount"
)

// Sorting is an immutable (column, order) directive.
type Sorting struct {
	Col   column.Col
	Order column.Order
}

// Default sorts by size, largest first.
func Default() Sorting {
	col := column.DefaultSortCol()
	return Sorting{Col: col, Order: col.DefaultSortOrder()}
}

// ParseError reports an unparseable sort directive with its raw text.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%q can't be parsed as a sort expression: %s", e.Raw, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads "<column>[<sep><order>]" where <sep> is whitespace or "-".
// The column name is the longest prefix before the first separator, so
// column names never contain either. A missing order falls back to the
// column's default. Lustre columns are rejected unless the overlay was
// requested.
func Parse(s string, lustreEnabled bool) (Sorting, error) {
	raw := s
	cut := strings.IndexFunc(s, func(r rune) bool {
		return r == '-' || unicode.IsSpace(r)
	})
	name, rest := s, ""
	if cut >= 0 {
		name, rest = s[:cut], s[cut+1:]
	}
	col, err := column.Parse(name)
	if err != nil {
		return Sorting{}, &ParseError{Raw: raw, Err: err}
	}
	if col.Lustre() && !lustreEnabled {
		return Sorting{}, &ParseError{Raw: raw, Err: fmt.Errorf("column %q needs --lustre", col.Name())}
	}
	order := col.DefaultSortOrder()
	if rest != "" {
		order, err = column.ParseOrder(strings.TrimSpace(rest))
		if err != nil {
			return Sorting{}, &ParseError{Raw: raw, Err: err}
		}
	}
	return Sorting{Col: col, Order: order}, nil
}

// String formats the directive so it parses back to an equivalent one.
func (s Sorting) String() string {
	return s.Col.Name() + "-" + s.Order.String()
}

// Sort orders records in place. The overlay may be nil; records the
// overlay doesn't cover sort after covered ones and tie among themselves.
func (s Sorting) Sort(records []*mount.Record, overlay *lustre.Data) {
	sort.SliceStable(records, func(i, j int) bool {
		return s.Col.Compare(records[i], records[j], overlay) < 0
	})
	if s.Order == column.Desc {
		reverse(records)
	}
}

func reverse(records []*mount.Record) {
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
}
