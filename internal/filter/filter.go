package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/GriffinCanCode/dfq/internal/column"
	"github.com/GriffinCanCode/dfq/internal/lustre"
	"github.com/GriffinCanCode/dfq/internal/mount"
	"github.com/GriffinCanCode/dfq/internal/value"
)

// Filter is a compiled, immutable filter expression. The zero value (and
// nil) is the identity filter keeping every record.
type Filter struct {
	raw  string
	root expr
}

type expr interface {
	eval(rec *mount.Record, overlay *lustre.Data) bool
}

type operator int

const (
	opEq operator = iota
	opNe
	opLt
	opLe
	opGt
	opGe
	opMatch
	opNotMatch
)

var operatorNames = map[string]operator{
	"=": opEq, "!=": opNe,
	"<": opLt, "<=": opLe,
	">": opGt, ">=": opGe,
	"~": opMatch, "!~": opNotMatch,
}

// Compile tokenizes and parses an expression against the column
// registry. All typing errors (unknown column, operator/kind mismatch,
// bad literal) surface here, before any record is evaluated.
func Compile(raw string, lustreEnabled bool) (*Filter, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	tokens, err := tokenize(raw)
	if err != nil {
		attach(err, raw)
		return nil, err
	}
	p := &parser{raw: raw, tokens: tokens, lustreEnabled: lustreEnabled}
	root, err := p.parseOr()
	if err != nil {
		attach(err, raw)
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		return nil, &Error{Raw: raw, Pos: tok.pos, Reason: fmt.Sprintf("unexpected trailing %q", tok.text), Err: ErrSyntax}
	}
	return &Filter{raw: raw, root: root}, nil
}

// Matches evaluates the filter against one record. Evaluation is pure:
// it never fails and never mutates the record.
func (f *Filter) Matches(rec *mount.Record, overlay *lustre.Data) bool {
	if f == nil || f.root == nil {
		return true
	}
	return f.root.eval(rec, overlay)
}

// Apply partitions records, returning the kept subset in input order.
// The identity filter returns the input unchanged.
func (f *Filter) Apply(records []*mount.Record, overlay *lustre.Data) []*mount.Record {
	if f == nil || f.root == nil {
		return records
	}
	kept := make([]*mount.Record, 0, len(records))
	for _, rec := range records {
		if f.root.eval(rec, overlay) {
			kept = append(kept, rec)
		}
	}
	return kept
}

// String returns the raw expression the filter was compiled from.
func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.raw
}

// attach fills the raw expression into an *Error bubbling up from the
// lexer or parser.
func attach(err error, raw string) {
	var ferr *Error
	if errors.As(err, &ferr) && ferr.Raw == "" {
		ferr.Raw = raw
	}
}

// boolean nodes

type orExpr struct{ terms []expr }

func (e *orExpr) eval(rec *mount.Record, overlay *lustre.Data) bool {
	for _, term := range e.terms {
		if term.eval(rec, overlay) {
			return true
		}
	}
	return false
}

type andExpr struct{ terms []expr }

func (e *andExpr) eval(rec *mount.Record, overlay *lustre.Data) bool {
	for _, term := range e.terms {
		if !term.eval(rec, overlay) {
			return false
		}
	}
	return true
}

type notExpr struct{ inner expr }

func (e *notExpr) eval(rec *mount.Record, overlay *lustre.Data) bool {
	return !e.inner.eval(rec, overlay)
}

// comparison node

type cmpExpr struct {
	col column.Col
	op  operator
	lit value.Value
}

func (e *cmpExpr) eval(rec *mount.Record, overlay *lustre.Data) bool {
	v := e.col.Value(rec, overlay)
	if v.IsMissing() {
		// missing satisfies nothing, not even !=
		return false
	}
	switch e.op {
	case opMatch:
		return containsFold(v.AsText(), e.lit.AsText())
	case opNotMatch:
		return !containsFold(v.AsText(), e.lit.AsText())
	}
	c := value.Compare(v, e.lit)
	switch e.op {
	case opEq:
		return c == 0
	case opNe:
		return c != 0
	case opLt:
		return c < 0
	case opLe:
		return c <= 0
	case opGt:
		return c > 0
	case opGe:
		return c >= 0
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
