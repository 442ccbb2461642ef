package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lits(vs ...int32) []Lit {
	out := make([]Lit, len(vs))
	for i, v := range vs {
		if v < 0 {
			out[i] = NewLit(-v, true)
		} else {
			out[i] = NewLit(v, false)
		}
	}
	return out
}

func TestPropagateUnitChain(t *testing.T) {
	e := NewEngine(3, DefaultOptions())
	e.AddOriginalClause(lits(1), false)
	e.AddOriginalClause(lits(-1, 2), false)
	e.AddOriginalClause(lits(-2, 3), false)

	conflict := e.RootLevelPropagate()
	require.Equal(t, CRefNone, conflict)

	assert.True(t, e.trail.Satisfied(NewLit(1, false)))
	assert.True(t, e.trail.Satisfied(NewLit(2, false)))
	assert.True(t, e.trail.Satisfied(NewLit(3, false)))
}

func TestPropagateDetectsConflict(t *testing.T) {
	e := NewEngine(1, DefaultOptions())
	e.AddOriginalClause(lits(1), false)
	e.AddOriginalClause(lits(-1), false)

	// Both are units on the same variable: the second Add detects the
	// root-level conflict immediately rather than waiting on Propagate.
	assert.True(t, e.unsatAtZero)
}

func TestPropagateDetectsConflictViaWatchedClause(t *testing.T) {
	e := NewEngine(2, DefaultOptions())
	e.AddOriginalClause(lits(1, 2), false)
	e.AddOriginalClause(lits(1, -2), false)
	e.AddOriginalClause(lits(-1, 2), false)
	e.AddOriginalClause(lits(-1, -2), false)

	conflict := e.RootLevelPropagate()
	if conflict == CRefNone {
		e.trail.NewDecisionLevel(NewLit(1, false))
		e.trail.Assign(NewLit(1, false), CRefNone)
		conflict = e.Propagate()
	}
	assert.NotEqual(t, CRefNone, conflict)
}

func TestPropagateBinaryFastPath(t *testing.T) {
	e := NewEngine(2, DefaultOptions())
	e.AddOriginalClause(lits(1, 2), false)

	e.trail.NewDecisionLevel(NewLit(1, true))
	e.trail.Assign(NewLit(1, true), CRefNone)
	conflict := e.Propagate()
	require.Equal(t, CRefNone, conflict)
	assert.True(t, e.trail.Satisfied(NewLit(2, false)))
}

// TestPropagateRelocatedWatchBlockerIsTheOtherLiteral exercises the path
// in repairWatch/Propagate that finds a fresh watch for a long clause and
// checks the newly installed watch entry's Blocker is the clause's other
// watched literal, not the literal it just relocated to.
func TestPropagateRelocatedWatchBlockerIsTheOtherLiteral(t *testing.T) {
	e := NewEngine(3, DefaultOptions())
	ref := e.AddOriginalClause(lits(1, 2, 3), false)

	e.trail.NewDecisionLevel(NewLit(1, true))
	e.trail.Assign(NewLit(1, true), CRefNone)
	conflict := e.Propagate()
	require.Equal(t, CRefNone, conflict)

	c := e.arena.Clause(ref)
	// Literal 1 was falsified and relocated off; the clause now watches
	// its two remaining literals, one of which is c.Lits[0].
	newKey := c.Lits[0].Negate()
	found := false
	for _, w := range e.watches.List(newKey) {
		if w.Ref == ref {
			found = true
			assert.Equal(t, c.Lits[1], w.Blocker, "blocker must be the clause's other watched literal")
		}
	}
	assert.True(t, found, "relocated watch must be registered under the new literal's negation")
}

func TestPropagateLongClauseWatchRepair(t *testing.T) {
	e := NewEngine(4, DefaultOptions())
	e.AddOriginalClause(lits(1, 2, 3, 4), false)

	for _, v := range []int32{1, 2, 3} {
		e.trail.NewDecisionLevel(NewLit(v, true))
		e.trail.Assign(NewLit(v, true), CRefNone)
		conflict := e.Propagate()
		require.Equal(t, CRefNone, conflict)
	}
	assert.True(t, e.trail.Satisfied(NewLit(4, false)))
}
