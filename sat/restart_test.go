package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReluctantNextProducesLubySequence(t *testing.T) {
	r := NewRestartController(DefaultOptions())
	want := []int64{1, 1, 2, 1, 1, 2, 4}
	got := make([]int64, len(want))
	for i := range got {
		got[i] = r.reluctantNext()
	}
	assert.Equal(t, want, got)
}

func TestShouldRestartUnstableModeTriggersOnGlueDivergence(t *testing.T) {
	r := NewRestartController(DefaultOptions())
	for i := 0; i < 20; i++ {
		r.NoteConflict(2)
	}
	assert.False(t, r.ShouldRestart())
	for i := 0; i < 20; i++ {
		r.NoteConflict(50)
	}
	assert.True(t, r.ShouldRestart())
}

func TestRestartedResetsCounterAndAdvancesReluctantInStableMode(t *testing.T) {
	r := NewRestartController(DefaultOptions())
	r.mode = modeStable
	r.conflictsSinceRestart = 5
	before := r.reluctantV
	r.Restarted()
	assert.Equal(t, int64(0), r.conflictsSinceRestart)
	assert.NotEqual(t, before, r.reluctantV)
}

func TestMaybeSwitchModeTogglesAndGrowsBudget(t *testing.T) {
	r := NewRestartController(DefaultOptions())
	budget := r.ticksBudgetFor(0)
	r.modeConflicts = budget
	switched := r.MaybeSwitchMode(0)
	assert.True(t, switched)
	assert.Equal(t, modeStable, r.mode)
	assert.Equal(t, int64(0), r.modeConflicts)
	assert.Greater(t, r.ticksBudget, budget)
}

func TestReuseTrailLevelKeepsEveryLevelWithNonNegativeTimestamp(t *testing.T) {
	trail := NewTrail(3)
	trail.NewDecisionLevel(NewLit(1, false))
	trail.Assign(NewLit(1, false), CRefNone)
	trail.NewDecisionLevel(NewLit(2, false))
	trail.Assign(NewLit(2, false), CRefNone)

	timestamps := map[int32]int64{1: 10, 2: 20}
	next := func(v int32) int64 { return timestamps[v] }
	level := ReuseTrailLevel(trail, next)
	assert.Equal(t, int32(2), level)
}
