package simplify

import "math/big"

// isNumberish reports whether toRat accepts v: a JSON number in any
// representation a decoder might produce, or a string holding a decimal
// number.
func isNumberish(v any) bool {
	_, ok := toRat(v)
	return ok
}

// isIntegerValue reports whether v is a JSON number with no fractional
// part, i.e. it would satisfy {"type": "integer"}.
func isIntegerValue(v any) bool {
	r, ok := toRat(v)
	return ok && r.IsInt()
}

// isNumberValue reports whether v is a JSON number with a nonzero
// fractional part.
func isNumberValue(v any) bool {
	r, ok := toRat(v)
	return ok && !r.IsInt()
}

// compareNumeric compares two decoded JSON numeric values exactly. ok is
// false if either value is not a number.
func compareNumeric(a, b any) (cmp int, ok bool) {
	ra, aok := toRat(a)
	rb, bok := toRat(b)
	if !aok || !bok {
		return 0, false
	}
	return ra.Cmp(rb), true
}

// isMultipleOf reports whether value is an integer multiple of factor,
// using exact rational arithmetic so that fractional factors (e.g. 0.01)
// are handled correctly.
func isMultipleOf(value, factor *big.Rat) bool {
	if factor.Sign() == 0 {
		return false
	}
	q := new(big.Rat).Quo(value, factor)
	return q.IsInt()
}
