package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVMTFQueueNextStartsAtHead(t *testing.T) {
	q := NewVMTFQueue(3)
	assigned := func(int32) bool { return false }
	assert.Equal(t, int32(3), q.Next(assigned))
}

func TestVMTFQueueNextSkipsAssignedVariables(t *testing.T) {
	q := NewVMTFQueue(3)
	assignedSet := map[int32]bool{3: true}
	assigned := func(v int32) bool { return assignedSet[v] }
	assert.Equal(t, int32(2), q.Next(assigned))
}

func TestVMTFQueueBumpMovesVariableToHead(t *testing.T) {
	q := NewVMTFQueue(3)
	q.Bump(1)
	assert.Equal(t, int32(1), q.head)
	assert.Greater(t, q.Timestamp(1), int64(0))
}

func TestVMTFQueueNoteUnassignedPrefersMoreRecentlyBumped(t *testing.T) {
	q := NewVMTFQueue(3)
	q.Bump(1)
	q.Bump(2)
	q.unassigned = 3

	q.NoteUnassigned(1)
	assert.Equal(t, int32(1), q.unassigned, "1 was bumped more recently than the unbumped default 3")

	q.NoteUnassigned(2)
	assert.Equal(t, int32(2), q.unassigned, "2's timestamp is newer than 1's")
}

func TestVMTFQueueGrowExtendsQueueWithoutDisturbingUnassignedPointer(t *testing.T) {
	q := NewVMTFQueue(2)
	q.Grow(4)
	assert.Equal(t, int32(4), q.head, "new variables are linked in at the head")
	// unassigned was already non-zero before growing, so Grow leaves it
	// alone; the new variables only become reachable once the old
	// unassigned variable is exhausted by backward scanning.
	assigned := func(int32) bool { return false }
	assert.Equal(t, int32(2), q.Next(assigned))
}

func TestVMTFQueueGrowFromEmptySetsUnassignedToFirstNewVariable(t *testing.T) {
	q := NewVMTFQueue(0)
	q.Grow(2)
	// unassigned was 0 (empty queue), so Grow latches it onto the first
	// variable it links in rather than the last.
	assert.Equal(t, int32(1), q.unassigned)
}
