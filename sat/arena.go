package sat

// Arena owns every clause in the engine. References into it (watches,
// occurrence lists, trail reasons) are ClauseRef indices, never pointers,
// so that garbage_collection can rewrite them in bulk (spec §4.1, §9).
type Arena struct {
	clauses   []*Clause
	nextID    uint64
	live      int
	garbage   int // count of garbage-marked clauses awaiting collection
	protected map[ClauseRef]bool
}

func NewArena() *Arena {
	return &Arena{
		clauses: make([]*Clause, 0, 1024),
		nextID:  1,
	}
}

// NewClause allocates a clause and returns its handle. Identifiers are
// strictly increasing (spec invariant 7).
func (a *Arena) NewClause(lits []Lit, redundant bool, glue int32) ClauseRef {
	c := &Clause{
		ID:        a.nextID,
		Lits:      lits,
		Glue:      glue,
		Redundant: redundant,
	}
	a.nextID++
	ref := ClauseRef(len(a.clauses))
	a.clauses = append(a.clauses, c)
	a.live++
	return ref
}

// NextID hands out the next identifier in the arena's strictly increasing
// sequence without allocating a clause, for proof events (derived units)
// that have no clause object of their own but still need an ID in the same
// per-solver stream (spec §9, invariant 7).
func (a *Arena) NextID() uint64 {
	id := a.nextID
	a.nextID++
	return id
}

func (a *Arena) Clause(ref ClauseRef) *Clause {
	if ref < 0 || int(ref) >= len(a.clauses) {
		return nil
	}
	return a.clauses[ref]
}

// MarkGarbage is idempotent: marking an already-garbage clause is a no-op.
func (a *Arena) MarkGarbage(ref ClauseRef) {
	c := a.Clause(ref)
	if c == nil || c.Garbage {
		return
	}
	if a.protected != nil && a.protected[ref] {
		return
	}
	c.Garbage = true
	a.live--
	a.garbage++
}

// ProtectReasons marks every clause reachable as a reason on the trail so
// that a reduce pass running concurrently with a live trail never collects
// a clause still needed to justify an assignment (spec §4.1).
func (a *Arena) ProtectReasons(trail *Trail) {
	a.protected = make(map[ClauseRef]bool, len(trail.lits))
	for v := int32(1); v <= trail.numVars; v++ {
		vd := &trail.vars[v]
		if vd.Status == StatusActive && vd.Reason >= 0 {
			a.protected[vd.Reason] = true
		}
	}
}

func (a *Arena) UnprotectReasons() { a.protected = nil }

// ShrinkClause overwrites a clause's literal array in place (spec §4.1).
// It only replaces the literals: watches, proof events, and any revisit
// by later inprocessing passes are left to the caller.
func (a *Arena) ShrinkClause(ref ClauseRef, newLits []Lit) {
	c := a.Clause(ref)
	if c == nil {
		return
	}
	c.Lits = newLits
}

// GCResult reports how references must be rewritten after a collection.
type GCResult struct {
	Remap map[ClauseRef]ClauseRef
}

// GarbageCollection copies live clauses into a fresh backing slice and
// returns the old->new reference remap; callers rewrite watches,
// occurrence lists, and trail reasons using it (spec §4.1).
func (a *Arena) GarbageCollection() GCResult {
	fresh := make([]*Clause, 0, a.live)
	remap := make(map[ClauseRef]ClauseRef, a.live)
	for oldRef, c := range a.clauses {
		if c == nil || c.Garbage {
			continue
		}
		newRef := ClauseRef(len(fresh))
		fresh = append(fresh, c)
		remap[ClauseRef(oldRef)] = newRef
	}
	a.clauses = fresh
	a.garbage = 0
	return GCResult{Remap: remap}
}

func (a *Arena) Live() int    { return a.live }
func (a *Arena) Garbage() int { return a.garbage }

// All iterates every non-nil, non-garbage clause; used by inprocessing
// passes that need a full scan rather than watch-driven traversal.
func (a *Arena) All(fn func(ClauseRef, *Clause)) {
	for i, c := range a.clauses {
		if c == nil || c.Garbage {
			continue
		}
		fn(ClauseRef(i), c)
	}
}
