package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClauseSizeAndShapePredicates(t *testing.T) {
	unit := &Clause{Lits: lits(1)}
	binary := &Clause{Lits: lits(1, 2)}
	long := &Clause{Lits: lits(1, 2, 3)}

	assert.True(t, unit.IsUnit())
	assert.False(t, unit.IsBinary())

	assert.True(t, binary.IsBinary())
	assert.False(t, binary.IsUnit())

	assert.Equal(t, 3, long.Size())
}

func TestClauseTierBucketsByGlue(t *testing.T) {
	assert.Equal(t, 0, (&Clause{Glue: 0}).Tier())
	assert.Equal(t, 0, (&Clause{Glue: 2}).Tier())
	assert.Equal(t, 1, (&Clause{Glue: 3}).Tier())
	assert.Equal(t, 1, (&Clause{Glue: 6}).Tier())
	assert.Equal(t, 2, (&Clause{Glue: 7}).Tier())
}

func TestClauseBumpUsedSaturatesAt255(t *testing.T) {
	c := &Clause{Used: 254}
	c.bumpUsed()
	assert.Equal(t, uint8(255), c.Used)
	c.bumpUsed()
	assert.Equal(t, uint8(255), c.Used, "Used must saturate, not wrap")
}
