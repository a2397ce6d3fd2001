// ABOUTME: Loose numeric check and local validation for direct lookups
// ABOUTME: Accepts anything a browser's generic number coercion accepts
package facts

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	decimalLiteral = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)
	hexLiteral     = regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`)
	octalLiteral   = regexp.MustCompile(`^0[oO][0-7]+$`)
	binaryLiteral  = regexp.MustCompile(`^0[bB][01]+$`)
)

// IsNumeric reports whether s coerces to a number. Surrounding whitespace is
// ignored and an empty string counts as zero, so callers check emptiness first.
// The check is deliberately lax: "3.14", "1e3", ".5", "5.", "0x1F" and
// "-Infinity" all pass.
func IsNumeric(s string) bool {
	s = strings.TrimFunc(s, isCoercionSpace)
	switch s {
	case "", "Infinity", "+Infinity", "-Infinity":
		return true
	}
	return decimalLiteral.MatchString(s) ||
		hexLiteral.MatchString(s) ||
		octalLiteral.MatchString(s) ||
		binaryLiteral.MatchString(s)
}

// U+0085 is a Go space but not a whitespace character for number coercion;
// the byte order mark is the reverse.
func isCoercionSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return r == '\uFEFF' || unicode.IsSpace(r)
}

// Validate runs the local checks for q. Random queries always pass.
func Validate(q Query) error {
	if q.Random {
		return nil
	}
	if strings.TrimFunc(q.Number, isCoercionSpace) == "" {
		return ErrEmptyInput
	}
	if !IsNumeric(q.Number) {
		return ErrNonNumeric
	}
	return nil
}
