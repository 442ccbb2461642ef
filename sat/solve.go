package sat

// Status mirrors spec §5's solve-state outcomes.
type Status int

const (
	StatusUnknown Status = iota
	StatusSatisfiable
	StatusUnsatisfiable
)

// Search runs the decision/propagate/analyze loop to completion (spec
// §4): propagate to fixpoint, analyze and learn on conflict, backjump,
// and otherwise decide, restart, reduce, or rephase as scheduled. It
// returns once every variable is assigned (SAT), an empty clause is
// derived (UNSAT), an assumption is falsified (UNSAT under the
// assumptions), or the terminator callback requests a stop (unknown).
func (e *Engine) Search(assumptions []Lit, constraint []Lit, externalDecide func() Lit) Status {
	assumptionPos := 0
	if e.unsatAtZero {
		return StatusUnsatisfiable
	}

	for {
		if e.terminator != nil && e.terminator() {
			return StatusUnknown
		}

		conflict := e.Propagate()
		if conflict != CRefNone {
			if e.DecisionLevel() == 0 {
				e.unsatAtZero = true
				return StatusUnsatisfiable
			}
			e.onConflict(conflict)
			continue
		}

		// Assumptions are rescanned from the start on every step, so one
		// left unassigned by a backjump is decided again.
		assumptionPos = 0
		for assumptionPos < len(assumptions) && e.trail.Satisfied(assumptions[assumptionPos]) {
			assumptionPos++
		}
		if assumptionPos < len(assumptions) && e.trail.Falsified(assumptions[assumptionPos]) {
			return StatusUnsatisfiable
		}

		if e.allAssigned() {
			e.UpdateBestPhase()
			return StatusSatisfiable
		}

		e.UpdateTargetPhase()

		if e.restart.MaybeSwitchMode(e.ticks) {
			// mode flip already reset the relevant controller state
		}
		if e.restart.ShouldRestart() {
			e.backjump(e.reuseLevel())
			e.restart.Restarted()
			continue
		}
		if e.rephase.Due() {
			e.backjump(0)
			e.ApplyRephase(e.rephase.Next())
			continue
		}
		if e.reduceC.Due() {
			e.Reduce()
			e.reduceC.Scheduled()
		}
		if e.DecisionLevel() == 0 && e.ShouldInprocess() {
			e.Inprocess()
			if e.unsatAtZero {
				return StatusUnsatisfiable
			}
			continue
		}

		if !e.Decide(assumptions, &assumptionPos, constraint, externalDecide) {
			return StatusSatisfiable
		}
	}
}

// onConflict learns from a conflict, installs the learned clause, and
// backjumps (spec §4.3, §4.4's "clause bumping on conflict").
func (e *Engine) onConflict(conflict ClauseRef) {
	e.conflicts++
	e.stats.Conflicts++

	if c := e.arena.Clause(conflict); c != nil {
		c.bumpUsed()
	}

	result := e.AnalyzeConflict(conflict)
	if result == nil {
		e.unsatAtZero = true
		return
	}

	for _, l := range result.Lits {
		e.bumpVariable(l.Var())
	}
	e.decayHeuristic()

	e.backjump(result.BacktrackLevel)
	e.NewResolvedClause(result.Lits, result.Glue, result.Antecedents)
	e.stats.RecordLearned(result.Glue)
	e.restart.NoteConflict(result.Glue)
	e.rephase.NoteConflict()
	e.reduceC.NoteConflict()

	if len(result.Lits) == 1 {
		// already fixed by NewResolvedClause; nothing further to assign
		return
	}
	// result.Lits[0] is the first-UIP asserting literal: after backjumping
	// to BacktrackLevel the learned clause is unit on it.
	unit := result.Lits[0]
	if !e.trail.IsAssigned(unit) {
		ref := e.learned[len(e.learned)-1]
		e.trail.Assign(unit, ref)
	}
}

func (e *Engine) bumpVariable(v int32) {
	switch e.heuristic {
	case HeuristicEVSIDS:
		e.evsids.Bump(v)
	default:
		e.vmtf.Bump(v)
	}
}

func (e *Engine) decayHeuristic() {
	if e.heuristic == HeuristicEVSIDS {
		e.evsids.Decay()
	}
}

// backjump undoes the trail down to level, restoring unassigned
// variables to the decision heuristics.
func (e *Engine) backjump(level int32) {
	if level >= e.DecisionLevel() {
		return
	}
	cutoff := e.trail.control[level+1].TrailOffset
	for i := int(cutoff); i < e.trail.Size(); i++ {
		l := e.trail.lits[i]
		if l == LitUndef {
			continue
		}
		v := l.Var()
		if e.trail.Var(v).Status == StatusFixed {
			continue
		}
		switch e.heuristic {
		case HeuristicEVSIDS:
			e.evsids.Push(v)
		default:
			e.vmtf.NoteUnassigned(v)
		}
	}
	e.trail.Backtrack(level)
}

func (e *Engine) reuseLevel() int32 {
	if e.heuristic != HeuristicVMTF {
		return 0
	}
	return ReuseTrailLevel(e.trail, func(v int32) int64 {
		next := e.vmtf.Next(func(u int32) bool { return e.trail.Var(u).Assigned() })
		if next == 0 {
			return -1
		}
		return e.vmtf.Timestamp(v) - e.vmtf.Timestamp(next)
	})
}

func (e *Engine) allAssigned() bool {
	for v := int32(1); v <= e.numVars; v++ {
		vd := e.trail.Var(v)
		if vd.Status == StatusEliminated || vd.Status == StatusSubstituted {
			continue
		}
		if !vd.Assigned() {
			return false
		}
	}
	return true
}
