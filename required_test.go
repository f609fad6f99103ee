package simplify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimplifyRequiredDropsEmptyArray(t *testing.T) {
	changed, out := applyRule(t, simplifyRequired, `{"type":"object","required":[]}`)
	assert.True(t, changed)
	assert.JSONEq(t, `{"type":"object"}`, out)
}

func TestSimplifyRequiredNonEmptyIsNoop(t *testing.T) {
	changed, out := applyRule(t, simplifyRequired, `{"type":"object","required":["a"]}`)
	assert.False(t, changed)
	assert.JSONEq(t, `{"type":"object","required":["a"]}`, out)
}

func TestSimplifyRequiredAbsentIsNoop(t *testing.T) {
	changed, out := applyRule(t, simplifyRequired, `{"type":"object"}`)
	assert.False(t, changed)
	assert.JSONEq(t, `{"type":"object"}`, out)
}
