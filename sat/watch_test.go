package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWatchClauseInstallsBothWatchedNegations(t *testing.T) {
	w := NewWatches()
	c := &Clause{Lits: lits(1, 2, 3)}
	ref := ClauseRef(7)
	w.WatchClause(ref, c)

	l1 := w.List(NewLit(1, true))
	l2 := w.List(NewLit(2, true))
	assert.Len(t, l1, 1)
	assert.Len(t, l2, 1)
	assert.Equal(t, ref, l1[0].Ref)
	assert.Equal(t, NewLit(2, false), l1[0].Blocker)
	assert.False(t, l1[0].Binary, "a ternary clause is not a binary watch")
}

func TestWatchClauseMarksBinaryWatches(t *testing.T) {
	w := NewWatches()
	c := &Clause{Lits: lits(1, 2)}
	ref := ClauseRef(3)
	w.WatchClause(ref, c)

	l1 := w.List(NewLit(1, true))
	assert.True(t, l1[0].Binary)
}

func TestWatchClauseSkipsUnitClauses(t *testing.T) {
	w := NewWatches()
	c := &Clause{Lits: lits(1)}
	w.WatchClause(ClauseRef(1), c)
	assert.Empty(t, w.List(NewLit(1, true)))
	assert.Empty(t, w.List(NewLit(1, false)))
}

func TestUnwatchClauseRemovesBothEntries(t *testing.T) {
	w := NewWatches()
	c := &Clause{Lits: lits(1, 2)}
	ref := ClauseRef(5)
	w.WatchClause(ref, c)
	w.UnwatchClause(ref, c)

	assert.Empty(t, w.List(NewLit(1, true)))
	assert.Empty(t, w.List(NewLit(2, true)))
}

func TestWatchesRemoveDropsOnlyMatchingRef(t *testing.T) {
	w := NewWatches()
	lit := NewLit(1, false)
	w.Add(lit, Watch{Ref: ClauseRef(1)})
	w.Add(lit, Watch{Ref: ClauseRef(2)})

	w.Remove(lit, ClauseRef(1))

	list := w.List(lit)
	assert.Len(t, list, 1)
	assert.Equal(t, ClauseRef(2), list[0].Ref)
}

func TestSetListEmptyDeletesEntry(t *testing.T) {
	w := NewWatches()
	lit := NewLit(1, false)
	w.Add(lit, Watch{Ref: ClauseRef(1)})
	w.SetList(lit, nil)
	assert.Nil(t, w.lists[lit])
}
