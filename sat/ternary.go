package sat

// TernaryResolve looks for pairs of ternary (three-literal) clauses that
// share two literals of opposite polarity on one variable and produce a
// binary resolvent (spec §4.11, "ternary resolution"): a cheap special
// case of general resolution restricted to small clauses, run often since
// its cost is bounded by the ternary clause count rather than the whole
// database.
func (e *Engine) TernaryResolve(budget int64) int {
	var ternaries []ClauseRef
	e.arena.All(func(ref ClauseRef, c *Clause) {
		if c.Size() == 3 {
			ternaries = append(ternaries, ref)
		}
	})

	byLit := make(map[Lit][]ClauseRef)
	for _, ref := range ternaries {
		c := e.arena.Clause(ref)
		for _, l := range c.Lits {
			byLit[l] = append(byLit[l], ref)
		}
	}

	learned := 0
	spent := int64(0)
	seenPairs := make(map[[2]ClauseRef]bool)
	for _, ref := range ternaries {
		if spent >= budget {
			break
		}
		c := e.arena.Clause(ref)
		if c == nil || c.Garbage {
			continue
		}
		for _, l := range c.Lits {
			for _, other := range byLit[l.Negate()] {
				if other == ref {
					continue
				}
				key := pairKey(ref, other)
				if seenPairs[key] {
					continue
				}
				seenPairs[key] = true
				spent++
				oc := e.arena.Clause(other)
				if oc == nil || oc.Garbage {
					continue
				}
				if res, ok := resolve(c, oc, l.Var()); ok && len(res) == 2 {
					if !e.hasClauseWithLits(res) {
						e.NewResolvedClause(res, 2, []uint64{c.ID, oc.ID})
						e.stats.ClausesEliminated++ // counted as a simplification event
						learned++
					}
				}
			}
		}
	}
	return learned
}

func pairKey(a, b ClauseRef) [2]ClauseRef {
	if a < b {
		return [2]ClauseRef{a, b}
	}
	return [2]ClauseRef{b, a}
}

// hasClauseWithLits is a small guard against re-deriving a binary clause
// already present as a watch.
func (e *Engine) hasClauseWithLits(lits []Lit) bool {
	if len(lits) != 2 {
		return false
	}
	for _, w := range e.watches.List(lits[0].Negate()) {
		c := e.arena.Clause(w.Ref)
		if c == nil || !c.IsBinary() {
			continue
		}
		if (c.Lits[0] == lits[0] && c.Lits[1] == lits[1]) || (c.Lits[0] == lits[1] && c.Lits[1] == lits[0]) {
			return true
		}
	}
	return false
}
