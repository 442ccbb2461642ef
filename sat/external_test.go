package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExternalMapAllocatesStableInternalSlots(t *testing.T) {
	m := NewExternalMap()
	a := m.Internal(10)
	b := m.Internal(20)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, m.Internal(10))
	assert.Equal(t, int32(10), m.External(a))
}

func TestExternalMapUnionFindsRepresentative(t *testing.T) {
	m := NewExternalMap()
	a := m.Internal(1)
	b := m.Internal(2)
	c := m.Internal(3)

	m.Union(a, b)
	m.Union(a, c)

	assert.Equal(t, a, m.Representative(b))
	assert.Equal(t, a, m.Representative(c))
	assert.Equal(t, a, m.Representative(a))
}

func TestExternalMapFreezeMeltReferenceCounts(t *testing.T) {
	m := NewExternalMap()
	m.Freeze(1)
	m.Freeze(1)
	v := m.Internal(1)
	assert.True(t, m.IsFrozen(v))
	m.Melt(1)
	assert.True(t, m.IsFrozen(v), "still frozen after one melt of two freezes")
	m.Melt(1)
	assert.False(t, m.IsFrozen(v))
}
