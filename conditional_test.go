package simplify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimplifyConditionalFalseIfTakesElseBranch(t *testing.T) {
	changed, out := applyRule(t, simplifyConditional, `{"if":false,"then":{"minLength":0},"else":{"maxLength":0}}`)
	assert.True(t, changed)
	assert.JSONEq(t, `{"allOf":[{"maxLength":0}]}`, out)
}

func TestSimplifyConditionalFalseIfNoElseDropsAll(t *testing.T) {
	changed, out := applyRule(t, simplifyConditional, `{"if":false,"then":{"minLength":0}}`)
	assert.True(t, changed)
	assert.JSONEq(t, `{}`, out)
}

func TestSimplifyConditionalTrueIfTakesThenBranch(t *testing.T) {
	changed, out := applyRule(t, simplifyConditional, `{"if":true,"then":{"minLength":0},"else":{"maxLength":0}}`)
	assert.True(t, changed)
	assert.JSONEq(t, `{"allOf":[{"minLength":0}]}`, out)
}

func TestSimplifyConditionalTrueIfNoThenDropsAll(t *testing.T) {
	changed, out := applyRule(t, simplifyConditional, `{"if":true,"else":{"maxLength":0}}`)
	assert.True(t, changed)
	assert.JSONEq(t, `{}`, out)
}

func TestSimplifyConditionalNonTrivialIfWithNeitherBranchIsDropped(t *testing.T) {
	changed, out := applyRule(t, simplifyConditional, `{"if":{"type":"string"}}`)
	assert.True(t, changed)
	assert.JSONEq(t, `{}`, out)
}

func TestSimplifyConditionalNonTrivialIfWithBranchIsNoop(t *testing.T) {
	changed, out := applyRule(t, simplifyConditional, `{"if":{"type":"string"},"then":{"minLength":1}}`)
	assert.False(t, changed)
	assert.JSONEq(t, `{"if":{"type":"string"},"then":{"minLength":1}}`, out)
}

func TestSimplifyConditionalAbsentIfIsNoop(t *testing.T) {
	changed, out := applyRule(t, simplifyConditional, `{"type":"string"}`)
	assert.False(t, changed)
	assert.JSONEq(t, `{"type":"string"}`, out)
}
