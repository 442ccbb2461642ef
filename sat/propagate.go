package sat

// Propagate runs unit propagation over the watch lists until fixpoint or
// conflict (spec §4.2). It returns the conflicting clause ref, or CRefNone
// if the trail reached a fixpoint without conflict.
//
// For literal L newly on the trail, watches(-L) are walked: binary watches
// are handled first since they cannot be repaired and either assign or
// conflict immediately; for a long clause, the blocking literal is checked
// before touching the clause at all, and only on a miss does the search
// for a new watch begin at the clause's rotating Pos cursor.
func (e *Engine) Propagate() ClauseRef {
	for {
		l, ok := e.trail.NextToPropagate()
		if !ok {
			return CRefNone
		}
		e.ticks++
		// l just became true, so any clause watching l's negation now has
		// that watched literal falsified; WatchClause registers a clause
		// watching literal w under key w.Negate(), so the clauses to
		// revisit here are keyed by l itself.
		falseLit := l.Negate()
		list := e.watches.List(l)

		kept := list[:0]
		var conflict ClauseRef = CRefNone

		for i := 0; i < len(list); i++ {
			wa := list[i]
			if e.trail.Satisfied(wa.Blocker) {
				kept = append(kept, wa)
				continue
			}
			if wa.Binary {
				// Binary fast path: the other literal is exactly the
				// blocker, and it cannot be repaired.
				if e.trail.Falsified(wa.Blocker) {
					conflict = wa.Ref
					kept = append(kept, list[i:]...)
					goto drain
				}
				e.trail.Assign(wa.Blocker, wa.Ref)
				e.stats.Propagations++
				kept = append(kept, wa)
				continue
			}

			c := e.arena.Clause(wa.Ref)
			if c == nil || c.Garbage {
				continue // dropped: stale watch from a collected clause
			}
			newWatch, unit, confl := e.repairWatch(c, falseLit)
			switch {
			case confl:
				conflict = wa.Ref
				kept = append(kept, list[i:]...)
				goto drain
			case unit:
				// c.Lits[0] is now the sole unassigned literal by
				// repairWatch's contract.
				e.trail.Assign(c.Lits[0], wa.Ref)
				e.stats.Propagations++
				kept = append(kept, Watch{Blocker: c.Lits[1], Ref: wa.Ref})
			case newWatch != LitUndef:
				// c.Lits[0] is the literal we just relocated the watch to
				// (the new watched literal itself); the blocker must be the
				// clause's *other* watched literal, c.Lits[1].
				e.watches.Add(newWatch.Negate(), Watch{Blocker: c.Lits[1], Ref: wa.Ref})
			default:
				kept = append(kept, wa)
			}
		}
	drain:
		e.watches.SetList(l, kept)
		if conflict != CRefNone {
			return conflict
		}
	}
}

// repairWatch tries to find a replacement watch for clause c after
// falseLit became false. It rotates the search starting at c.Pos so
// repeated repairs amortize across the clause's literals. On return,
// if unit is true, c.Lits[0] holds the sole remaining unassigned literal
// and c.Lits[1] its blocker-to-be; this mirrors the in-place swap
// convention used by the watch lists.
func (e *Engine) repairWatch(c *Clause, falseLit Lit) (newWatch Lit, unit bool, conflict bool) {
	// Normalize so Lits[0] is the watch that just became false.
	if c.Lits[1] == falseLit {
		c.Lits[0], c.Lits[1] = c.Lits[1], c.Lits[0]
	}
	other := c.Lits[1]
	if e.trail.Satisfied(other) {
		return LitUndef, false, false
	}

	n := len(c.Lits)
	start := int(c.Pos)
	if start < 2 || start >= n {
		start = 2
	}
	for k := 0; k < n-2; k++ {
		idx := 2 + (start-2+k)%(n-2)
		cand := c.Lits[idx]
		if !e.trail.Falsified(cand) {
			c.Lits[0], c.Lits[idx] = cand, c.Lits[0]
			c.Pos = int32(idx)
			return cand, false, false
		}
	}
	// No replacement: other is the unit literal or the conflict.
	if e.trail.Falsified(other) {
		return LitUndef, false, true
	}
	c.Lits[0] = other
	c.Lits[1] = falseLit
	return LitUndef, true, false
}

// RootLevelPropagate re-runs propagation from the beginning of the trail
// at decision level zero, used to normalize state after chronological
// backtracking tolerated an out-of-order assignment (spec §4.2).
func (e *Engine) RootLevelPropagate() ClauseRef {
	e.trail.ResetPropagationQueue()
	return e.Propagate()
}
