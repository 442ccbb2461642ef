package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrailAssignSetsValueAndLevel(t *testing.T) {
	tr := NewTrail(2)
	tr.NewDecisionLevel(NewLit(1, true))
	tr.Assign(NewLit(1, true), CRefNone)
	assert.True(t, tr.Falsified(NewLit(1, false)))
	assert.True(t, tr.Satisfied(NewLit(1, true)))
	assert.Equal(t, int32(1), tr.Var(1).Level)
}

func TestTrailFixSurvivesBacktrack(t *testing.T) {
	tr := NewTrail(1)
	tr.Fix(NewLit(1, false))
	tr.NewDecisionLevel(LitUndef)
	tr.Backtrack(0)
	assert.True(t, tr.Satisfied(NewLit(1, false)), "a fixed literal must never unassign")
}

func TestTrailBacktrackUnassignsAboveLevel(t *testing.T) {
	tr := NewTrail(2)
	tr.NewDecisionLevel(NewLit(1, false))
	tr.Assign(NewLit(1, false), CRefNone)
	tr.NewDecisionLevel(NewLit(2, false))
	tr.Assign(NewLit(2, false), CRefNone)

	tr.Backtrack(1)
	assert.Equal(t, int32(1), tr.Level())
	assert.True(t, tr.Satisfied(NewLit(1, false)))
	assert.False(t, tr.IsAssigned(NewLit(2, false)))
}

func TestTrailBacktrackNoOpAtOrAboveCurrentLevel(t *testing.T) {
	tr := NewTrail(1)
	tr.NewDecisionLevel(NewLit(1, false))
	tr.Assign(NewLit(1, false), CRefNone)
	tr.Backtrack(1)
	assert.Equal(t, int32(1), tr.Level(), "backtracking to the current level changes nothing")
}

func TestTrailNextToPropagateDrainsInOrder(t *testing.T) {
	tr := NewTrail(2)
	tr.NewDecisionLevel(NewLit(1, false))
	tr.Assign(NewLit(1, false), CRefNone)
	tr.Assign(NewLit(2, false), CRefNone)

	l1, ok1 := tr.NextToPropagate()
	assert.True(t, ok1)
	assert.Equal(t, NewLit(1, false), l1)

	l2, ok2 := tr.NextToPropagate()
	assert.True(t, ok2)
	assert.Equal(t, NewLit(2, false), l2)

	_, ok3 := tr.NextToPropagate()
	assert.False(t, ok3)
}

func TestTrailResetPropagationQueueRewindsQHead(t *testing.T) {
	tr := NewTrail(1)
	tr.NewDecisionLevel(NewLit(1, false))
	tr.Assign(NewLit(1, false), CRefNone)
	tr.NextToPropagate()
	tr.ResetPropagationQueue()
	_, ok := tr.NextToPropagate()
	assert.True(t, ok, "resetting the queue must make the literal propagatable again")
}

func TestTrailCheckControlAlignmentHoldsAfterNormalUse(t *testing.T) {
	tr := NewTrail(2)
	tr.NewDecisionLevel(NewLit(1, false))
	tr.Assign(NewLit(1, false), CRefNone)
	tr.NewDecisionLevel(NewLit(2, false))
	tr.Assign(NewLit(2, false), CRefNone)
	assert.True(t, tr.checkControlAlignment())
}
