package value

import "strings"

// Kind classifies what a column holds and which literals and operators
// apply to it.
type Kind int

const (
	KindBytes Kind = iota
	KindPercent
	KindNumber
	KindText
	KindOptionalText
	KindBool
)

// String returns the kind name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindBytes:
		return "size"
	case KindPercent:
		return "percentage"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindOptionalText:
		return "text"
	case KindBool:
		return "boolean"
	default:
		return "unknown"
	}
}

// Ordered reports whether values of this kind support <, <=, >, >=.
func (k Kind) Ordered() bool {
	return k == KindBytes || k == KindPercent || k == KindNumber
}

// Textual reports whether values of this kind support the match operators.
func (k Kind) Textual() bool {
	return k == KindText || k == KindOptionalText
}

// Type tags the concrete variant held by a Value.
type Type int

const (
	TypeMissing Type = iota
	TypeBytes
	TypePercent
	TypeNumber
	TypeText
	TypeBool
)

// Value is a tagged union over every attribute representation. The zero
// value is Missing.
type Value struct {
	typ  Type
	num  float64
	text string
	b    bool
}

// Missing is the sentinel for undefined attributes.
func Missing() Value { return Value{} }

// Bytes builds a byte-size value.
func Bytes(n uint64) Value { return Value{typ: TypeBytes, num: float64(n)} }

// Percent builds a percentage value; callers guarantee the [0,100] range.
func Percent(p float64) Value { return Value{typ: TypePercent, num: p} }

// Number builds a plain numeric value.
func Number(f float64) Value { return Value{typ: TypeNumber, num: f} }

// Text builds a string value.
func Text(s string) Value { return Value{typ: TypeText, text: s} }

// Bool builds a boolean value.
func Bool(b bool) Value { return Value{typ: TypeBool, b: b} }

// Type returns the variant tag.
func (v Value) Type() Type { return v.typ }

// IsMissing reports whether the value is the Missing sentinel.
func (v Value) IsMissing() bool { return v.typ == TypeMissing }

// AsBytes returns the byte count for TypeBytes values.
func (v Value) AsBytes() uint64 { return uint64(v.num) }

// AsFloat returns the numeric payload for bytes, percent and number values.
func (v Value) AsFloat() float64 { return v.num }

// AsText returns the string payload.
func (v Value) AsText() string { return v.text }

// AsBool returns the boolean payload.
func (v Value) AsBool() bool { return v.b }

// Raw returns the payload as a plain Go value for structured outputs
// (JSON, YAML). Missing maps to nil.
func (v Value) Raw() interface{} {
	switch v.typ {
	case TypeBytes:
		return uint64(v.num)
	case TypePercent, TypeNumber:
		return v.num
	case TypeText:
		return v.text
	case TypeBool:
		return v.b
	default:
		return nil
	}
}

// Compare defines a total order over values. Missing sorts before any
// defined value. Byte sizes and plain numbers are both magnitudes and
// compare with each other; otherwise values of different variants order
// by variant tag so the order stays total.
func Compare(a, b Value) int {
	if a.typ == TypeMissing || b.typ == TypeMissing {
		return int(boolTag(a.typ != TypeMissing)) - int(boolTag(b.typ != TypeMissing))
	}
	if a.typ == b.typ {
		switch a.typ {
		case TypeBytes, TypePercent, TypeNumber:
			return compareFloat(a.num, b.num)
		case TypeText:
			return strings.Compare(a.text, b.text)
		case TypeBool:
			return int(boolTag(a.b)) - int(boolTag(b.b))
		}
	}
	if magnitude(a.typ) && magnitude(b.typ) {
		return compareFloat(a.num, b.num)
	}
	return int(a.typ) - int(b.typ)
}

// magnitude covers the variants that share the "amount of bytes" scale.
func magnitude(t Type) bool {
	return t == TypeBytes || t == TypeNumber
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func boolTag(b bool) int8 {
	if b {
		return 1
	}
	return 0
}
