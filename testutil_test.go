package simplify

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

// mustDecode decodes a JSON Schema literal into this package's internal
// value model for use in white-box rule tests.
func mustDecode(t *testing.T, s string) any {
	t.Helper()
	v, err := decodeSchema([]byte(s))
	require.NoError(t, err)
	return v
}

// mustEncode re-encodes a decoded value back to a JSON string for
// assert.JSONEq comparisons.
func mustEncode(t *testing.T, v any) string {
	t.Helper()
	out, err := json.Marshal(v)
	require.NoError(t, err)
	return string(out)
}

// applyRule runs a single node rule once against a decoded schema literal
// and returns the rule's changed-flag plus the resulting JSON text.
func applyRule(t *testing.T, rule nodeRule, input string) (bool, string) {
	t.Helper()
	v := mustDecode(t, input)
	changed := rule(&v)
	return changed, mustEncode(t, v)
}
