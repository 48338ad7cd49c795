// Package filter compiles and evaluates the mount filter language.
//
// Grammar, lowest precedence first:
//
//	expr       := or_expr
//	or_expr    := and_expr (("or" | "||") and_expr)*
//	and_expr   := unary (("and" | "&&") unary)*
//	unary      := "not" unary | comparison | "(" expr ")"
//	comparison := column op literal
//	op         := "=" | "!=" | "<" | "<=" | ">" | ">=" | "~" | "!~"
//
// Keywords are case-insensitive. Literals are typed by the column they
// are compared to: sizes take binary (10G) or SI (10GB) suffixes,
// percentages a % sign, and quoted strings keep internal whitespace.
// The "~" operator is a case-insensitive substring match on text
// columns; "!~" is its negation.
//
// Typing happens at compile time: an operator or literal that disagrees
// with the column's kind fails before any record is touched. Evaluation
// is pure and cannot fail; missing values never satisfy a predicate.
package filter
