package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewVarDataDefaultsToActiveWithNoReason(t *testing.T) {
	vd := newVarData()
	assert.Equal(t, StatusActive, vd.Status)
	assert.Equal(t, CRefNone, vd.Reason)
	assert.Equal(t, -1, vd.HeapPos)
	assert.False(t, vd.Assigned())
}

func TestVarDataFlagSetClearHas(t *testing.T) {
	vd := &VarData{}
	assert.False(t, vd.has(FlagSeen))
	vd.set(FlagSeen)
	assert.True(t, vd.has(FlagSeen))
	vd.set(FlagKeep)
	assert.True(t, vd.has(FlagKeep))
	vd.clear(FlagSeen)
	assert.False(t, vd.has(FlagSeen))
	assert.True(t, vd.has(FlagKeep), "clearing one flag must not disturb another")
}

func TestVarDataAssignedTracksValue(t *testing.T) {
	vd := &VarData{}
	assert.False(t, vd.Assigned())
	vd.Value = 1
	assert.True(t, vd.Assigned())
	vd.Value = -1
	assert.True(t, vd.Assigned())
}
