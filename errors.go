package simplify

import "errors"

// === Decoding Errors ===
var (
	// ErrDecodeSchema is returned when a byte-level convenience entry
	// point (SimplifyJSON, SimplifyJSONIndent) is given input that does
	// not decode as JSON.
	ErrDecodeSchema = errors.New("schema decode failed")

	// ErrEncodeSchema is returned when a simplified schema cannot be
	// re-encoded to JSON. The rule engine never produces a value this can
	// happen to on its own; this guards against a caller-supplied value
	// containing something JSON can't represent (e.g. NaN).
	ErrEncodeSchema = errors.New("schema encode failed")
)
