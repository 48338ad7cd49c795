package filter

import (
	"errors"
	"fmt"
)

// Compile failure categories. Every compile error wraps one of these and
// carries the raw expression text back to the user.
var (
	ErrSyntax          = errors.New("syntax error")
	ErrUnknownOperator = errors.New("unknown operator")
	ErrTypeMismatch    = errors.New("type mismatch")
)

// Error is a filter compile diagnostic: the raw expression, the rune
// position the problem was found at, and a human-readable reason.
type Error struct {
	Raw    string
	Pos    int
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Raw == "" {
		return fmt.Sprintf("at %d: %s", e.Pos, e.Reason)
	}
	return fmt.Sprintf("%q can't be compiled as a filter: at %d: %s", e.Raw, e.Pos, e.Reason)
}

func (e *Error) Unwrap() error { return e.Err }
