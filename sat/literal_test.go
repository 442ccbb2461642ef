package sat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLitNegateAndSign(t *testing.T) {
	l := NewLit(5, false)
	assert.Equal(t, int32(5), l.Var())
	assert.False(t, l.Sign())

	n := l.Negate()
	assert.Equal(t, int32(5), n.Var())
	assert.True(t, n.Sign())
	assert.Equal(t, l, n.Negate())
}

func TestLitValid(t *testing.T) {
	assert.False(t, LitUndef.Valid())
	assert.False(t, Lit(math.MinInt32).Valid())
	assert.True(t, NewLit(1, false).Valid())
}

func TestLitIndexDistinctPerPolarity(t *testing.T) {
	pos := NewLit(3, false)
	neg := NewLit(3, true)
	assert.NotEqual(t, litIndex(pos), litIndex(neg))
}
