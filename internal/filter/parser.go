package filter

import (
	"fmt"
	"strings"

	"github.com/GriffinCanCode/dfq/internal/column"
	"github.com/GriffinCanCode/dfq/internal/value"
)

type parser struct {
	raw           string
	tokens        []token
	next          int
	lustreEnabled bool
}

func (p *parser) peek() (token, bool) {
	if p.next >= len(p.tokens) {
		return token{}, false
	}
	return p.tokens[p.next], true
}

func (p *parser) advance() token {
	tok := p.tokens[p.next]
	p.next++
	return tok
}

// keyword matches a case-insensitive bare word without consuming it.
func (p *parser) keyword(words ...string) bool {
	tok, ok := p.peek()
	if !ok || tok.kind != tokWord {
		return false
	}
	for _, w := range words {
		if strings.EqualFold(tok.text, w) {
			return true
		}
	}
	return false
}

// connective matches a keyword or its symbolic operator form.
func (p *parser) connective(word, symbol string) bool {
	if p.keyword(word) {
		return true
	}
	tok, ok := p.peek()
	return ok && tok.kind == tokOperator && tok.text == symbol
}

func (p *parser) parseOr() (expr, error) {
	first, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	terms := []expr{first}
	for p.connective("or", "||") {
		p.advance()
		term, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	if len(terms) == 1 {
		return first, nil
	}
	return &orExpr{terms: terms}, nil
}

func (p *parser) parseAnd() (expr, error) {
	first, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	terms := []expr{first}
	for p.connective("and", "&&") {
		p.advance()
		term, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	if len(terms) == 1 {
		return first, nil
	}
	return &andExpr{terms: terms}, nil
}

func (p *parser) parseUnary() (expr, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, &Error{Pos: len(p.raw), Reason: "empty sub-expression", Err: ErrSyntax}
	}
	if p.keyword("not") {
		p.advance()
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &notExpr{inner: inner}, nil
	}
	if tok.kind == tokLParen {
		p.advance()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		closing, ok := p.peek()
		if !ok || closing.kind != tokRParen {
			return nil, &Error{Pos: tok.pos, Reason: "unbalanced parenthesis", Err: ErrSyntax}
		}
		p.advance()
		return inner, nil
	}
	return p.parseComparison()
}

// parseComparison reads "column op literal", resolving the column and
// typing the operator and literal against its kind.
func (p *parser) parseComparison() (expr, error) {
	tok := p.advance()
	if tok.kind != tokWord {
		return nil, &Error{Pos: tok.pos, Reason: fmt.Sprintf("expected a column name, got %q", tok.text), Err: ErrSyntax}
	}
	col, err := column.Parse(tok.text)
	if err != nil {
		return nil, &Error{Pos: tok.pos, Reason: err.Error(), Err: err}
	}
	if col.Lustre() && !p.lustreEnabled {
		return nil, &Error{Pos: tok.pos, Reason: fmt.Sprintf("column %q needs --lustre", col.Name()), Err: ErrSyntax}
	}

	opTok, ok := p.peek()
	if !ok || opTok.kind != tokOperator {
		return nil, &Error{Pos: tok.pos + len(tok.text), Reason: fmt.Sprintf("expected an operator after %q", col.Name()), Err: ErrSyntax}
	}
	p.advance()
	op, ok := operatorNames[opTok.text]
	if !ok {
		return nil, &Error{Pos: opTok.pos, Reason: fmt.Sprintf("unknown operator %q", opTok.text), Err: ErrUnknownOperator}
	}
	if err := checkOperator(col, op, opTok); err != nil {
		return nil, err
	}

	litTok, ok := p.peek()
	if !ok || litTok.kind != tokWord && litTok.kind != tokString {
		return nil, &Error{Pos: opTok.pos + len(opTok.text), Reason: fmt.Sprintf("expected a value after %q", opTok.text), Err: ErrSyntax}
	}
	p.advance()
	lit, err := value.ParseLiteral(litTok.text, col.Kind())
	if err != nil {
		return nil, &Error{Pos: litTok.pos, Reason: err.Error(), Err: err}
	}
	return &cmpExpr{col: col, op: op, lit: lit}, nil
}

// checkOperator enforces kind/operator compatibility at compile time:
// ordering needs an ordered kind, matching needs a textual one.
func checkOperator(col column.Col, op operator, tok token) error {
	kind := col.Kind()
	switch op {
	case opLt, opLe, opGt, opGe:
		if !kind.Ordered() {
			return &Error{
				Pos:    tok.pos,
				Reason: fmt.Sprintf("operator %q needs a numeric column but %q holds %s", tok.text, col.Name(), kind),
				Err:    ErrTypeMismatch,
			}
		}
	case opMatch, opNotMatch:
		if !kind.Textual() {
			return &Error{
				Pos:    tok.pos,
				Reason: fmt.Sprintf("operator %q needs a text column but %q holds %s", tok.text, col.Name(), kind),
				Err:    ErrTypeMismatch,
			}
		}
	}
	return nil
}
