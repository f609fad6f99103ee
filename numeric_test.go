package simplify

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNumberish(t *testing.T) {
	assert.True(t, isNumberish(3.0))
	assert.True(t, isNumberish("3.5"))
	assert.False(t, isNumberish(true))
	assert.False(t, isNumberish([]any{}))
}

func TestIsIntegerAndNumberValue(t *testing.T) {
	assert.True(t, isIntegerValue(3.0))
	assert.False(t, isIntegerValue(3.5))
	assert.True(t, isNumberValue(3.5))
	assert.False(t, isNumberValue(3.0))
}

func TestCompareNumericExactForLargeValues(t *testing.T) {
	cmp, ok := compareNumeric("100000000000000000001", "100000000000000000000")
	assert.True(t, ok)
	assert.Equal(t, 1, cmp)
}

func TestCompareNumericRejectsNonNumeric(t *testing.T) {
	_, ok := compareNumeric("x", 1.0)
	assert.False(t, ok)
}

func TestIsMultipleOf(t *testing.T) {
	assert.True(t, isMultipleOf(big.NewRat(9, 1), big.NewRat(3, 1)))
	assert.False(t, isMultipleOf(big.NewRat(10, 1), big.NewRat(3, 1)))
	assert.True(t, isMultipleOf(big.NewRat(3, 100), big.NewRat(1, 100)))
	assert.False(t, isMultipleOf(big.NewRat(10, 1), big.NewRat(0, 1)))
}
