package simplify

import (
	"math/big"

	json "github.com/goccy/go-json"
)

// toRat converts a decoded JSON numeric value (float64, json.Number, any
// Go numeric kind a decoder might hand back, or a string holding a decimal
// number) into an exact *big.Rat,
// avoiding the precision loss a float64-to-float64 comparison would incur
// on large integers or repeating decimals.
func toRat(v any) (*big.Rat, bool) {
	switch n := v.(type) {
	case *big.Rat:
		return n, true
	case float64:
		r := new(big.Rat)
		if r.SetFloat64(n) == nil {
			return nil, false
		}
		return r, true
	case float32:
		return toRat(float64(n))
	case int:
		return new(big.Rat).SetInt64(int64(n)), true
	case int64:
		return new(big.Rat).SetInt64(n), true
	case int32:
		return new(big.Rat).SetInt64(int64(n)), true
	case json.Number:
		r := new(big.Rat)
		if _, ok := r.SetString(string(n)); !ok {
			return nil, false
		}
		return r, true
	case string:
		r := new(big.Rat)
		if _, ok := r.SetString(n); !ok {
			return nil, false
		}
		return r, true
	default:
		return nil, false
	}
}

// fromRat renders a *big.Rat back to the JSON-native shape. An integer is
// a float64 when it round-trips exactly through one, otherwise a decimal
// string carried as json.Number so encoders don't re-introduce float
// error. A non-integer is always the nearest float64.
func fromRat(r *big.Rat) any {
	if r.IsInt() {
		f, exact := new(big.Float).SetInt(r.Num()).Float64()
		if exact == big.Exact {
			return f
		}
		return json.Number(r.Num().String())
	}
	f, _ := new(big.Float).SetRat(r).Float64()
	return f
}
