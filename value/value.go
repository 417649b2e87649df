// Package value implements the Lox runtime value domain (nil, bool, float64,
// string, callable, all represented as Go's any) and the few predicates the
// interpreter needs over it: truthiness, equality, and stringification.
package value

import (
	"math"
	"strconv"
	"strings"
)

// Stringer is implemented by callables (functions, native functions) so that
// Stringify can format them without value importing the callable package.
type Stringer interface {
	String() string
}

// Truthy implements Lox's truthiness rule: nil and false are falsy, every
// other value — including 0, "", and all callables — is truthy.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// Equal implements Lox's == : nil equals only nil; values of different Go
// types are never equal; numbers compare by IEEE-754 equality (so NaN != NaN
// and +0 == -0, matching float64's own == operator, which this delegates to
// directly rather than special-casing).
func Equal(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		// Callables and any other reference-like value compare by identity.
		return a == b
	}
}

// Stringify renders a value the way "print" does: nil -> "nil", booleans ->
// "true"/"false", numbers -> shortest round-trip decimal with a trailing
// ".0" stripped when the value is integral, strings verbatim, callables via
// their own String().
func Stringify(v any) string {
	switch vv := v.(type) {
	case nil:
		return "nil"
	case bool:
		if vv {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(vv)
	case string:
		return vv
	case Stringer:
		return vv.String()
	default:
		return ""
	}
}

// formatNumber follows the spec's open-question resolution: shortest
// round-trip fixed-notation formatting, with a trailing ".0" stripped
// whenever the value is mathematically integral. Division by zero produces
// an infinity, printed the IEEE-754 way rather than as a runtime error.
func formatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if strings.HasSuffix(s, ".0") {
		return s[:len(s)-2]
	}
	return s
}
