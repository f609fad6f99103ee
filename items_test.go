package simplify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimplifyItemsTruncatesTupleToMaxItems(t *testing.T) {
	changed, out := applyRule(t, simplifyItems, `{"items":[{"type":"string"},true,true],"maxItems":1}`)
	assert.True(t, changed)
	assert.JSONEq(t, `{"items":[{"type":"string"}],"maxItems":1}`, out)
}

func TestSimplifyItemsTupleWithinMaxItemsIsNoop(t *testing.T) {
	changed, out := applyRule(t, simplifyItems, `{"items":[{"type":"string"},true],"maxItems":5}`)
	assert.False(t, changed)
	assert.JSONEq(t, `{"items":[{"type":"string"},true],"maxItems":5}`, out)
}

// TestSimplifyItemsTupleWithoutMaxItemsIsNoop regression-tests the fix for
// the unsound version of this rule, which used to drop trailing true-schema
// tuple entries even with no "maxItems" present — silently shrinking the
// tuple length a sibling "additionalItems" measures against.
func TestSimplifyItemsTupleWithoutMaxItemsIsNoop(t *testing.T) {
	changed, out := applyRule(t, simplifyItems, `{"items":[{"type":"string"},true,true]}`)
	assert.False(t, changed)
	assert.JSONEq(t, `{"items":[{"type":"string"},true,true]}`, out)
}

func TestSimplifyItemsSingleTrueSchemaDropped(t *testing.T) {
	changed, out := applyRule(t, simplifyItems, `{"items":true}`)
	assert.True(t, changed)
	assert.JSONEq(t, `{}`, out)
}

func TestSimplifyItemsSingleNonTrueSchemaIsNoop(t *testing.T) {
	changed, out := applyRule(t, simplifyItems, `{"items":{"type":"string"}}`)
	assert.False(t, changed)
	assert.JSONEq(t, `{"items":{"type":"string"}}`, out)
}

func TestSimplifyItemsAbsentKeywordIsNoop(t *testing.T) {
	changed, out := applyRule(t, simplifyItems, `{"type":"array"}`)
	assert.False(t, changed)
	assert.JSONEq(t, `{"type":"array"}`, out)
}
