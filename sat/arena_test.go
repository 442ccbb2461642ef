package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArenaNewClauseAssignsIncreasingIDs(t *testing.T) {
	a := NewArena()
	r1 := a.NewClause(lits(1, 2), false, 0)
	r2 := a.NewClause(lits(1, 3), true, 2)
	assert.Less(t, a.Clause(r1).ID, a.Clause(r2).ID)
	assert.Equal(t, 2, a.Live())
}

func TestArenaMarkGarbageIsIdempotent(t *testing.T) {
	a := NewArena()
	ref := a.NewClause(lits(1, 2), false, 0)
	a.MarkGarbage(ref)
	assert.Equal(t, 0, a.Live())
	assert.Equal(t, 1, a.Garbage())
	a.MarkGarbage(ref)
	assert.Equal(t, 1, a.Garbage(), "marking garbage twice must not double-count")
}

func TestArenaMarkGarbageSkipsProtectedClause(t *testing.T) {
	e := NewEngine(2, DefaultOptions())
	ref := e.NewResolvedClause(lits(1, 2), 1, nil)
	e.trail.NewDecisionLevel(NewLit(1, false))
	e.trail.Assign(NewLit(1, false), ref)

	e.arena.ProtectReasons(e.trail)
	e.arena.MarkGarbage(ref)
	assert.False(t, e.arena.Clause(ref).Garbage, "clause backing a live trail reason must survive")

	e.arena.UnprotectReasons()
	e.arena.MarkGarbage(ref)
	assert.True(t, e.arena.Clause(ref).Garbage)
}

func TestArenaGarbageCollectionRemapsReferences(t *testing.T) {
	a := NewArena()
	r1 := a.NewClause(lits(1, 2), false, 0)
	r2 := a.NewClause(lits(1, 3), false, 0)
	r3 := a.NewClause(lits(1, 4), false, 0)
	a.MarkGarbage(r2)

	result := a.GarbageCollection()
	assert.Equal(t, 2, a.Live())
	assert.Equal(t, 0, a.Garbage())

	newR1, ok1 := result.Remap[r1]
	assert.True(t, ok1)
	newR3, ok3 := result.Remap[r3]
	assert.True(t, ok3)
	_, gone := result.Remap[r2]
	assert.False(t, gone, "garbage clause must not appear in the remap")

	assert.Equal(t, lits(1, 2), a.Clause(newR1).Lits)
	assert.Equal(t, lits(1, 4), a.Clause(newR3).Lits)
}

func TestArenaNextIDAdvancesTheSameSequenceAsNewClause(t *testing.T) {
	a := NewArena()
	ref := a.NewClause(lits(1, 2), false, 0)
	id := a.NextID()
	assert.Greater(t, id, a.Clause(ref).ID)
}

func TestEngineNextProofIDIsIndependentPerEngine(t *testing.T) {
	e1 := NewEngine(2, DefaultOptions())
	e2 := NewEngine(2, DefaultOptions())
	first1 := e1.nextProofID()
	first2 := e2.nextProofID()
	assert.Equal(t, first1, first2, "two freshly created engines must not share a global ID counter")
}

func TestArenaAllSkipsGarbageClauses(t *testing.T) {
	a := NewArena()
	r1 := a.NewClause(lits(1, 2), false, 0)
	r2 := a.NewClause(lits(1, 3), false, 0)
	a.MarkGarbage(r2)

	var seen []ClauseRef
	a.All(func(ref ClauseRef, c *Clause) { seen = append(seen, ref) })
	assert.Equal(t, []ClauseRef{r1}, seen)
}
