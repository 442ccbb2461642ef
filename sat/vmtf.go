package sat

// VMTFQueue is the doubly-linked "variable move to front" queue (spec §3,
// "Queue (VMTF)"). After propagation, unassigned always points at the
// most-recently-bumped unassigned variable — decide.go relies on this
// invariant to pick the next decision in O(1) amortized.
type VMTFQueue struct {
	prev, next []int32 // 1-indexed; 0 is the sentinel head/tail
	bumped     []int64
	unassigned int32
	head       int32
	tick       int64
}

func NewVMTFQueue(numVars int32) *VMTFQueue {
	q := &VMTFQueue{
		prev:   make([]int32, numVars+1),
		next:   make([]int32, numVars+1),
		bumped: make([]int64, numVars+1),
	}
	q.rebuild(numVars)
	return q
}

func (q *VMTFQueue) rebuild(numVars int32) {
	for v := int32(1); v <= numVars; v++ {
		q.prev[v] = v - 1
		if v < numVars {
			q.next[v] = v + 1
		} else {
			q.next[v] = 0
		}
	}
	if numVars > 0 {
		q.head = numVars
		q.unassigned = numVars
	}
}

func (q *VMTFQueue) Grow(numVars int32) {
	old := int32(len(q.prev)) - 1
	if numVars <= old {
		return
	}
	for v := old + 1; v <= numVars; v++ {
		q.prev = append(q.prev, 0)
		q.next = append(q.next, 0)
		q.bumped = append(q.bumped, 0)
		q.prev[v] = q.head
		q.next[v] = 0
		if q.head != 0 {
			q.next[q.head] = v
		}
		q.head = v
		if q.unassigned == 0 {
			q.unassigned = v
		}
	}
}

// unlink removes v from the list without touching unassigned.
func (q *VMTFQueue) unlink(v int32) {
	p, n := q.prev[v], q.next[v]
	if p != 0 {
		q.next[p] = n
	}
	if n != 0 {
		q.prev[n] = p
	}
	if q.head == v {
		q.head = p
	}
}

// Bump moves v to the front of the queue and stamps it with a fresh
// timestamp (spec §4.5's "queue timestamp" ordering used by reuse-trail).
func (q *VMTFQueue) Bump(v int32) {
	q.tick++
	q.bumped[v] = q.tick
	if q.head == v {
		return
	}
	q.unlink(v)
	q.prev[v] = q.head
	q.next[v] = 0
	if q.head != 0 {
		q.next[q.head] = v
	}
	q.head = v
}

// NoteUnassigned is called when v becomes unassigned again (after a
// backtrack); it moves the unassigned pointer to v if v was bumped more
// recently than the variable the pointer currently names.
func (q *VMTFQueue) NoteUnassigned(v int32) {
	if q.bumped[v] > q.bumped[q.unassigned] || q.unassigned == 0 {
		q.unassigned = v
	}
}

// Next walks backward from unassigned until it finds a variable that is
// still unassigned, advancing the cached pointer as it goes. If that walk
// runs off the end of the queue it rescans once from the head, so
// variables linked in ahead of the pointer (by Grow) are still found.
func (q *VMTFQueue) Next(isAssigned func(int32) bool) int32 {
	v := q.unassigned
	for v != 0 && isAssigned(v) {
		v = q.prev[v]
	}
	if v == 0 {
		v = q.head
		for v != 0 && isAssigned(v) {
			v = q.prev[v]
		}
	}
	q.unassigned = v
	return v
}

func (q *VMTFQueue) Timestamp(v int32) int64 { return q.bumped[v] }
