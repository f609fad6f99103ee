package simplify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNarrowTypeFromEnumDropsValuesOutsideType(t *testing.T) {
	changed, out := applyRule(t, narrowTypeFromEnum, `{"type":"string","enum":["a","b",1]}`)
	assert.True(t, changed)
	assert.JSONEq(t, `{"type":"string","enum":["a","b"]}`, out)
}

func TestNarrowTypeFromEnumAllValuesOutsideTypeBecomesFalse(t *testing.T) {
	changed, out := applyRule(t, narrowTypeFromEnum, `{"type":"string","enum":[1,2]}`)
	assert.True(t, changed)
	assert.JSONEq(t, `false`, out)
}

func TestNarrowTypeFromEnumNarrowsTypeToEnumUnion(t *testing.T) {
	changed, out := applyRule(t, narrowTypeFromEnum, `{"enum":["a","b"]}`)
	assert.True(t, changed)
	assert.JSONEq(t, `{"type":"string","enum":["a","b"]}`, out)
}

func TestNarrowTypeFromEnumMixedTypesWidensUnion(t *testing.T) {
	changed, out := applyRule(t, narrowTypeFromEnum, `{"enum":["a",1]}`)
	assert.True(t, changed)
	assert.JSONEq(t, `{"type":["integer","string"],"enum":["a",1]}`, out)
}

func TestNarrowTypeFromEnumAlreadyNarrowIsNoop(t *testing.T) {
	changed, out := applyRule(t, narrowTypeFromEnum, `{"type":"string","enum":["a","b"]}`)
	assert.False(t, changed)
	assert.JSONEq(t, `{"type":"string","enum":["a","b"]}`, out)
}

func TestNarrowTypeFromEnumAbsentIsNoop(t *testing.T) {
	changed, out := applyRule(t, narrowTypeFromEnum, `{"type":"string"}`)
	assert.False(t, changed)
	assert.JSONEq(t, `{"type":"string"}`, out)
}
