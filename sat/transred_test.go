package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTransitiveReductionRemovesRedundantEdge encodes 1->2 (via -1,2),
// 2->3 (via -2,3) and a direct 1->3 (via -1,3) that is implied by the
// two-hop path and should be dropped.
func TestTransitiveReductionRemovesRedundantEdge(t *testing.T) {
	e := NewEngine(3, DefaultOptions())
	e.AddOriginalClause(lits(-1, 2), false)
	e.AddOriginalClause(lits(-2, 3), false)
	directRef := e.AddOriginalClause(lits(-1, 3), false)

	removed := e.TransitiveReduction(10000)
	assert.Equal(t, 1, removed)
	assert.True(t, e.arena.Clause(directRef).Garbage)
}

func TestTransitiveReductionNoOpWithoutRedundancy(t *testing.T) {
	e := NewEngine(2, DefaultOptions())
	e.AddOriginalClause(lits(-1, 2), false)
	removed := e.TransitiveReduction(10000)
	assert.Equal(t, 0, removed)
}
