package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTernaryResolveLearnsBinaryResolvent sets up (1 v 2 v 3) and
// (-1 v 2 v 3): resolving on variable 1 collapses the shared literals 2
// and 3 into a single binary resolvent.
func TestTernaryResolveLearnsBinaryResolvent(t *testing.T) {
	e := NewEngine(3, DefaultOptions())
	e.AddOriginalClause(lits(1, 2, 3), false)
	e.AddOriginalClause(lits(-1, 2, 3), false)

	require.False(t, e.hasClauseWithLits(lits(2, 3)))
	learned := e.TernaryResolve(1000)
	assert.Equal(t, 1, learned)
	assert.True(t, e.hasClauseWithLits(lits(2, 3)))
}

func TestTernaryResolveSkipsWhenAlreadyPresent(t *testing.T) {
	e := NewEngine(3, DefaultOptions())
	e.AddOriginalClause(lits(1, 2, 3), false)
	e.AddOriginalClause(lits(-1, 2, 3), false)
	e.AddOriginalClause(lits(2, 3), false)

	learned := e.TernaryResolve(1000)
	assert.Equal(t, 0, learned)
}
