package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBumpVariableRoutesToActiveHeuristic(t *testing.T) {
	e := NewEngine(1, DefaultOptions())
	e.heuristic = HeuristicEVSIDS
	e.bumpVariable(1)
	assert.Greater(t, e.evsids.Score(1), 0.0)
}

func TestDecayHeuristicOnlyAffectsEVSIDS(t *testing.T) {
	e := NewEngine(1, DefaultOptions())
	before := e.vmtf.tick
	e.decayHeuristic()
	assert.Equal(t, before, e.vmtf.tick, "VMTF mode has no decay step")

	e.heuristic = HeuristicEVSIDS
	incBefore := e.evsids.inc
	e.decayHeuristic()
	assert.Greater(t, e.evsids.inc, incBefore)
}

func TestBackjumpRestoresUnassignedVariablesToVMTF(t *testing.T) {
	e := NewEngine(2, DefaultOptions())
	e.trail.NewDecisionLevel(NewLit(1, false))
	e.trail.Assign(NewLit(1, false), CRefNone)
	e.trail.NewDecisionLevel(NewLit(2, false))
	e.trail.Assign(NewLit(2, false), CRefNone)

	e.backjump(1)
	assert.Equal(t, int32(1), e.DecisionLevel())
	assert.False(t, e.trail.IsAssigned(NewLit(2, false)))
}

func TestBackjumpSkipsFixedVariables(t *testing.T) {
	e := NewEngine(1, DefaultOptions())
	e.trail.Fix(NewLit(1, false))
	e.trail.NewDecisionLevel(LitUndef)
	e.backjump(0)
	assert.True(t, e.trail.Satisfied(NewLit(1, false)))
}

func TestAllAssignedIgnoresEliminatedAndSubstitutedVariables(t *testing.T) {
	e := NewEngine(2, DefaultOptions())
	e.trail.NewDecisionLevel(NewLit(1, false))
	e.trail.Assign(NewLit(1, false), CRefNone)
	e.trail.Var(2).Status = StatusEliminated
	assert.True(t, e.allAssigned())
}

func TestAllAssignedFalseWithAnActiveUnassignedVariable(t *testing.T) {
	e := NewEngine(2, DefaultOptions())
	e.trail.NewDecisionLevel(NewLit(1, false))
	e.trail.Assign(NewLit(1, false), CRefNone)
	assert.False(t, e.allAssigned())
}

func TestSearchReturnsUnsatWhenEmptyClauseAlreadyDerived(t *testing.T) {
	e := NewEngine(1, DefaultOptions())
	e.unsatAtZero = true
	status := e.Search(nil, nil, nil)
	assert.Equal(t, StatusUnsatisfiable, status)
}

func TestSearchReturnsUnknownWhenTerminatorFires(t *testing.T) {
	e := NewEngine(1, DefaultOptions())
	e.terminator = func() bool { return true }
	status := e.Search(nil, nil, nil)
	assert.Equal(t, StatusUnknown, status)
}
