package simplify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPruneKeywordsForTypeDropsInapplicable(t *testing.T) {
	changed, out := applyRule(t, pruneKeywordsForType, `{"type":"string","maximum":5,"maxLength":3}`)
	assert.True(t, changed)
	assert.JSONEq(t, `{"type":"string","maxLength":3}`, out)
}

func TestPruneKeywordsForTypeFullSetIsNoop(t *testing.T) {
	changed, out := applyRule(t, pruneKeywordsForType, `{"maximum":5}`)
	assert.False(t, changed)
	assert.JSONEq(t, `{"maximum":5}`, out)
}

// TestPruneKeywordsForTypeKeepsSharedKeyword regression-tests the union-based
// fix: "minimum"/"maximum" are applicable to both Integer and Number, so an
// Integer-only type must not lose them just because the Number group was
// excluded from the allowed set.
func TestPruneKeywordsForTypeKeepsSharedKeyword(t *testing.T) {
	changed, out := applyRule(t, pruneKeywordsForType, `{"type":"integer","minimum":1,"maxLength":3}`)
	assert.True(t, changed)
	assert.JSONEq(t, `{"type":"integer","minimum":1}`, out)
}

func TestCanonicalizeTypeDropsRedundantInteger(t *testing.T) {
	changed, out := applyRule(t, canonicalizeType, `{"type":["integer","number"]}`)
	assert.True(t, changed)
	assert.JSONEq(t, `{"type":"number"}`, out)
}

func TestCanonicalizeTypeNoopWhenAlreadyCanonical(t *testing.T) {
	changed, out := applyRule(t, canonicalizeType, `{"type":"string"}`)
	assert.False(t, changed)
	assert.JSONEq(t, `{"type":"string"}`, out)
}

func TestCanonicalizeTypeAbsentIsNoop(t *testing.T) {
	changed, out := applyRule(t, canonicalizeType, `{"maximum":5}`)
	assert.False(t, changed)
	assert.JSONEq(t, `{"maximum":5}`, out)
}
