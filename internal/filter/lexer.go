package filter

import (
	"fmt"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokWord tokenKind = iota
	tokString
	tokOperator
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// symbolic runes that terminate a bare word
const symbolRunes = "()=!<>~&|"

// operators ordered longest-first so two-rune forms win
var operators = []string{"&&", "||", "!=", "!~", "<=", ">=", "<", ">", "=", "~"}

// tokenize splits an expression on whitespace and punctuation, keeping
// quoted strings (single or double) as one token.
func tokenize(raw string) ([]token, error) {
	var tokens []token
	runes := []rune(raw)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(':
			tokens = append(tokens, token{kind: tokLParen, text: "(", pos: i})
			i++
		case r == ')':
			tokens = append(tokens, token{kind: tokRParen, text: ")", pos: i})
			i++
		case r == '"' || r == '\'':
			text, next, err := scanString(runes, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token{kind: tokString, text: text, pos: i})
			i = next
		case strings.ContainsRune(symbolRunes, r):
			op, ok := matchOperator(runes[i:])
			if !ok {
				return nil, &Error{Pos: i, Reason: fmt.Sprintf("unknown operator %q", string(r)), Err: ErrUnknownOperator}
			}
			tokens = append(tokens, token{kind: tokOperator, text: op, pos: i})
			i += len(op)
		default:
			start := i
			for i < len(runes) && !unicode.IsSpace(runes[i]) &&
				!strings.ContainsRune(symbolRunes+"()'\"", runes[i]) {
				i++
			}
			tokens = append(tokens, token{kind: tokWord, text: string(runes[start:i]), pos: start})
		}
	}
	return tokens, nil
}

func scanString(runes []rune, start int) (string, int, error) {
	quote := runes[start]
	for i := start + 1; i < len(runes); i++ {
		if runes[i] == quote {
			return string(runes[start+1 : i]), i + 1, nil
		}
	}
	return "", 0, &Error{Pos: start, Reason: "unterminated string", Err: ErrSyntax}
}

func matchOperator(runes []rune) (string, bool) {
	rest := string(runes)
	for _, op := range operators {
		if strings.HasPrefix(rest, op) {
			return op, true
		}
	}
	return "", false
}
