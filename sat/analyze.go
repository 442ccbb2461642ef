package sat

// AnalyzeResult is what conflict analysis hands back to the main loop:
// the learned clause, its glue, the level to backjump to, and — when a
// proof is being traced — the antecedent clause IDs resolved through, in
// resolution order, suitable for an LRAT chain.
type AnalyzeResult struct {
	Lits           []Lit
	Glue           int32
	BacktrackLevel int32
	Antecedents    []uint64
}

// seenState holds the scratch arrays conflict analysis reuses across
// calls, avoiding a fresh allocation per conflict.
type seenState struct {
	seen   []bool
	poison []int8 // 0 unknown, 1 removable, -1 not removable
}

func newSeenState(numVars int32) *seenState {
	return &seenState{
		seen:   make([]bool, numVars+1),
		poison: make([]int8, numVars+1),
	}
}

func (e *Engine) seenState() *seenState {
	if e.seenScratch == nil || int32(len(e.seenScratch.seen)) <= e.numVars {
		e.seenScratch = newSeenState(e.numVars + 1)
	}
	return e.seenScratch
}

// AnalyzeConflict implements first-UIP learning (spec §4.3): walk the
// trail backward from the conflict, counting open literals at the current
// level via `seen`, resolving through each reason in turn until exactly
// one current-level literal remains.
func (e *Engine) AnalyzeConflict(conflict ClauseRef) *AnalyzeResult {
	level := e.DecisionLevel()
	if level == 0 {
		return nil // root-level conflict: caller sets UNSAT
	}

	ss := e.seenState()
	for v := range ss.poison {
		ss.poison[v] = 0
	}

	learned := make([]Lit, 0, 8)
	var antecedents []uint64
	var touched []int32 // every var marked seen this call, for the final clear
	pending := 0        // literals at `level` still to resolve

	resolve := func(c *Clause, skip Lit) {
		if c != nil {
			antecedents = append(antecedents, c.ID)
		}
		for _, lit := range c.Lits {
			if lit == skip {
				continue
			}
			v := lit.Var()
			if ss.seen[v] {
				continue
			}
			ss.seen[v] = true
			touched = append(touched, v)
			lvl := e.trail.Var(v).Level
			if lvl == level {
				pending++
			} else if lvl > 0 {
				learned = append(learned, lit)
			} else {
				// level-zero literal: falsified permanently, drop it
			}
		}
	}

	conflictClause := e.arena.Clause(conflict)
	resolve(conflictClause, LitUndef)

	pos := e.trail.Size() - 1
	var uip Lit
	for {
		for pos >= 0 && !ss.seen[e.trail.lits[pos].Var()] {
			pos--
		}
		if pos < 0 {
			break
		}
		l := e.trail.lits[pos]
		v := l.Var()
		pending--
		ss.seen[v] = false // consumed
		if pending == 0 {
			uip = l.Negate()
			break
		}
		reasonRef := e.trail.Var(v).Reason
		reasonClause := e.arena.Clause(reasonRef)
		if reasonClause != nil {
			resolve(reasonClause, l)
		} else if reasonRef == CRefExternal {
			// External reasons materialize as a unit fact; treat the
			// literal itself as its own antecedent boundary.
		}
		pos--
	}

	// uip goes first: minimize and the watch scheme both rely on the
	// asserting literal occupying position 0.
	learned = append([]Lit{uip}, learned...)
	learned = e.minimize(learned, ss)

	// Glue is the number of distinct decision levels among the learned
	// clause's own literals (spec §4.3), not every level touched while
	// resolving through antecedents — invariant 5 requires glue <= size.
	levels := make(map[int32]bool, len(learned))
	for _, l := range learned {
		levels[e.trail.VarOf(l).Level] = true
	}
	glue := int32(len(levels))
	backtrack := e.computeBacktrackLevel(learned, level)

	// Clear seen flags for every var touched during analysis, including
	// literals minimize() dropped, so the next call starts from a clean
	// slate instead of silently skipping them in resolve().
	for _, v := range touched {
		ss.seen[v] = false
	}

	return &AnalyzeResult{Lits: learned, Glue: glue, BacktrackLevel: backtrack, Antecedents: antecedents}
}

// computeBacktrackLevel finds the second-highest decision level among the
// learned literals (the UIP's own level is always highest); backjumping
// there is what makes the new unit/clause immediately propagating.
func (e *Engine) computeBacktrackLevel(lits []Lit, conflictLevel int32) int32 {
	best := int32(0)
	for _, l := range lits {
		lvl := e.trail.VarOf(l).Level
		if lvl != conflictLevel && lvl > best {
			best = lvl
		}
	}
	return best
}

// minimize removes literals whose reasons are already subsumed by the
// learned clause (spec §4.3): a literal can be dropped iff every other
// literal in its reason is either fixed at level zero or already present
// (recursively removable), cached via poison/removable flags.
func (e *Engine) minimize(lits []Lit, ss *seenState) []Lit {
	inClause := make(map[int32]bool, len(lits))
	for _, l := range lits {
		inClause[l.Var()] = true
	}
	kept := lits[:1] // the UIP literal is never removed
	for _, l := range lits[1:] {
		if e.isRemovable(l, inClause, ss, 0) {
			continue
		}
		kept = append(kept, l)
	}
	return kept
}

func (e *Engine) isRemovable(l Lit, inClause map[int32]bool, ss *seenState, depth int) bool {
	v := l.Var()
	if ss.poison[v] != 0 {
		return ss.poison[v] == 1
	}
	if depth > 64 {
		return false // conservative bound on recursive minimization
	}
	vd := e.trail.VarOf(l)
	if vd.Level == 0 {
		ss.poison[v] = 1
		return true
	}
	reason := e.arena.Clause(vd.Reason)
	if reason == nil {
		ss.poison[v] = -1
		return false
	}
	for _, rl := range reason.Lits {
		if rl.Var() == v {
			continue
		}
		if inClause[rl.Var()] {
			continue
		}
		if !e.isRemovable(rl, inClause, ss, depth+1) {
			ss.poison[v] = -1
			return false
		}
	}
	ss.poison[v] = 1
	return true
}
