package simplify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimplifyAdditionalItemsAbsentItemsDropsKeyword(t *testing.T) {
	changed, out := applyRule(t, simplifyAdditionalItems, `{"additionalItems":false}`)
	assert.True(t, changed)
	assert.JSONEq(t, `{}`, out)
}

func TestSimplifyAdditionalItemsTrueSchemaDropped(t *testing.T) {
	changed, out := applyRule(t, simplifyAdditionalItems, `{"items":[true],"additionalItems":true}`)
	assert.True(t, changed)
	assert.JSONEq(t, `{"items":[true]}`, out)
}

func TestSimplifyAdditionalItemsSingleSchemaItemsDropsKeyword(t *testing.T) {
	changed, out := applyRule(t, simplifyAdditionalItems, `{"items":{"type":"string"},"additionalItems":false}`)
	assert.True(t, changed)
	assert.JSONEq(t, `{"items":{"type":"string"}}`, out)
}

// TestSimplifyAdditionalItemsFalseTightensMaxItems regression-tests one of
// the two previously-missing branches: additionalItems:false over a tuple
// bounds the array length exactly at the tuple size, which can be captured
// directly as "maxItems" once "additionalItems" itself is dropped.
func TestSimplifyAdditionalItemsFalseTightensMaxItems(t *testing.T) {
	changed, out := applyRule(t, simplifyAdditionalItems, `{"items":[true,true,true],"additionalItems":false}`)
	assert.True(t, changed)
	assert.JSONEq(t, `{"items":[true,true,true],"maxItems":3}`, out)
}

func TestSimplifyAdditionalItemsFalseKeepsTighterExistingMaxItems(t *testing.T) {
	changed, out := applyRule(t, simplifyAdditionalItems, `{"items":[true,true,true],"additionalItems":false,"maxItems":2}`)
	assert.True(t, changed)
	assert.JSONEq(t, `{"items":[true,true,true],"maxItems":2}`, out)
}

// TestSimplifyAdditionalItemsRedundantWhenMaxItemsAlreadyBounds regression-
// tests the other previously-missing branch: once "maxItems" already caps
// the array at or below the tuple length, no index can ever reach the
// "additional" region, so the keyword is dead weight regardless of its
// value.
func TestSimplifyAdditionalItemsRedundantWhenMaxItemsAlreadyBounds(t *testing.T) {
	changed, out := applyRule(t, simplifyAdditionalItems, `{"items":[true,true,true],"additionalItems":{"type":"string"},"maxItems":2}`)
	assert.True(t, changed)
	assert.JSONEq(t, `{"items":[true,true,true],"maxItems":2}`, out)
}

func TestSimplifyAdditionalItemsNotYetRedundantIsNoop(t *testing.T) {
	changed, out := applyRule(t, simplifyAdditionalItems, `{"items":[true,true],"additionalItems":{"type":"string"},"maxItems":5}`)
	assert.False(t, changed)
	assert.JSONEq(t, `{"items":[true,true],"additionalItems":{"type":"string"},"maxItems":5}`, out)
}

func TestSimplifyAdditionalItemsAbsentKeywordIsNoop(t *testing.T) {
	changed, out := applyRule(t, simplifyAdditionalItems, `{"items":[true]}`)
	assert.False(t, changed)
	assert.JSONEq(t, `{"items":[true]}`, out)
}
