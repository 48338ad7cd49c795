package value

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse failures by category. Callers wrap them with position information.
var (
	// ErrUnitParse marks a malformed byte-size literal or suffix.
	ErrUnitParse = errors.New("invalid size literal")
	// ErrOutOfRange marks a percentage outside [0,100].
	ErrOutOfRange = errors.New("percentage out of [0,100]")
	// ErrBadLiteral marks any other literal that does not fit its kind.
	ErrBadLiteral = errors.New("invalid literal")
)

// byte-size suffixes; binary multiplies by 1024 per step, SI by 1000.
var suffixes = map[string]float64{
	"":    1,
	"b":   1,
	"k":   1 << 10,
	"m":   1 << 20,
	"g":   1 << 30,
	"t":   1 << 40,
	"p":   1 << 50,
	"kib": 1 << 10,
	"mib": 1 << 20,
	"gib": 1 << 30,
	"tib": 1 << 40,
	"pib": 1 << 50,
	"kb":  1e3,
	"mb":  1e6,
	"gb":  1e9,
	"tb":  1e12,
	"pb":  1e15,
}

// ParseLiteral parses a raw token against the kind of the column it is
// compared to. A token that does not fit the kind is a hard error, never
// a silent coercion to Missing.
func ParseLiteral(token string, kind Kind) (Value, error) {
	switch kind {
	case KindBytes:
		return parseBytes(token)
	case KindPercent:
		return parsePercent(token)
	case KindNumber:
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return Missing(), fmt.Errorf("%w: %q is not a number", ErrBadLiteral, token)
		}
		return Number(f), nil
	case KindText, KindOptionalText:
		return Text(token), nil
	case KindBool:
		switch strings.ToLower(token) {
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		}
		return Missing(), fmt.Errorf("%w: %q is not a boolean", ErrBadLiteral, token)
	}
	return Missing(), fmt.Errorf("%w: unsupported kind", ErrBadLiteral)
}

// parseBytes accepts a decimal mantissa with an optional unit suffix.
// Bare suffixes (K, M, G...) are binary, the *B forms (KB, MB...) are SI,
// and a bare number is raw bytes.
func parseBytes(token string) (Value, error) {
	s := strings.ToLower(strings.TrimSpace(token))
	cut := len(s)
	for cut > 0 {
		c := s[cut-1]
		if c >= '0' && c <= '9' || c == '.' {
			break
		}
		cut--
	}
	mantissa, suffix := s[:cut], s[cut:]
	if mantissa == "" {
		return Missing(), fmt.Errorf("%w: %q has no mantissa", ErrUnitParse, token)
	}
	f, err := strconv.ParseFloat(mantissa, 64)
	if err != nil || f < 0 {
		return Missing(), fmt.Errorf("%w: %q", ErrUnitParse, token)
	}
	mult, ok := suffixes[suffix]
	if !ok {
		return Missing(), fmt.Errorf("%w: unknown unit %q in %q", ErrUnitParse, suffix, token)
	}
	return Bytes(uint64(f * mult)), nil
}

// parsePercent accepts a mantissa with an optional trailing % sign and
// enforces the [0,100] range.
func parsePercent(token string) (Value, error) {
	s := strings.TrimSuffix(strings.TrimSpace(token), "%")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Missing(), fmt.Errorf("%w: %q is not a percentage", ErrBadLiteral, token)
	}
	if f < 0 || f > 100 {
		return Missing(), fmt.Errorf("%w: %q", ErrOutOfRange, token)
	}
	return Percent(f), nil
}
