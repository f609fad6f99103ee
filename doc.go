// Package simplify rewrites a decoded JSON Schema (Draft 4/6/7) document
// into an equivalent, smaller schema: the same set of instances validates
// against the simplified schema as against the original.
//
// The package operates purely on decoded JSON values — bool, float64,
// string, []any, and ordered objects — never on wire bytes directly.
// Callers that want a byte-in/byte-out API can use SimplifyJSON instead of
// decoding themselves.
package simplify
