package column

import (
	"fmt"
	"strings"
)

// UnknownColumnError reports an unresolvable column name, with
// prefix-based suggestions when any exist.
type UnknownColumnError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownColumnError) Error() string {
	if len(e.Suggestions) > 0 {
		return fmt.Sprintf("unknown column %q (did you mean %s?)", e.Name, strings.Join(e.Suggestions, ", "))
	}
	return fmt.Sprintf("unknown column %q", e.Name)
}

// Parse resolves a column name or alias. Matching is case-insensitive
// and exact; near misses only show up as suggestions in the error.
func Parse(name string) (Col, error) {
	low := strings.ToLower(name)
	for c := Col(0); c < colCount; c++ {
		if metas[c].name == low {
			return c, nil
		}
		for _, alias := range metas[c].aliases {
			if alias == low {
				return c, nil
			}
		}
	}
	return 0, &UnknownColumnError{Name: name, Suggestions: suggest(low)}
}

func suggest(prefix string) []string {
	if prefix == "" {
		return nil
	}
	var names []string
	for c := Col(0); c < colCount; c++ {
		if strings.HasPrefix(metas[c].name, prefix) {
			names = append(names, metas[c].name)
		}
	}
	return names
}

// ParseCols parses a --cols selection: "all", a comma-separated list of
// names, or a list starting with "+" to extend the default set.
func ParseCols(spec string) ([]Col, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Default(), nil
	}
	if strings.EqualFold(spec, "all") {
		return All(), nil
	}
	cols := []Col{}
	if rest, extend := strings.CutPrefix(spec, "+"); extend {
		cols = Default()
		spec = rest
	}
	for _, name := range strings.FieldsFunc(spec, func(r rune) bool { return r == ',' || r == ' ' }) {
		col, err := Parse(name)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("empty column selection %q", spec)
	}
	return cols, nil
}
