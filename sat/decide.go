package sat

// Decide picks and assigns the next decision literal, opening a new
// decision level (spec §4.7). The order of precedence is: a pending
// assumption, the global constraint (if one is still unsatisfied and
// undecided), an external propagator decision, and finally the active
// heuristic (VMTF or EVSIDS) combined with the phase policy.
func (e *Engine) Decide(assumptions []Lit, assumptionPos *int, constraint []Lit, externalDecide func() Lit) bool {
	if lit, ok := e.nextAssumption(assumptions, assumptionPos); ok {
		e.assign(lit, CRefExternal, true)
		return true
	}
	if lit, ok := e.nextConstraintLit(constraint); ok {
		e.assign(lit, CRefNone, true)
		return true
	}
	if externalDecide != nil {
		if lit := externalDecide(); lit.Valid() {
			e.assign(lit, CRefNone, true)
			return true
		}
	}
	v := e.pickVariable()
	if v == 0 {
		return false
	}
	lit := e.phaseLit(v)
	e.assign(lit, CRefNone, true)
	return true
}

func (e *Engine) nextAssumption(assumptions []Lit, pos *int) (Lit, bool) {
	for *pos < len(assumptions) {
		lit := assumptions[*pos]
		*pos++
		if e.trail.Satisfied(lit) {
			continue
		}
		return lit, true
	}
	return LitUndef, false
}

func (e *Engine) nextConstraintLit(constraint []Lit) (Lit, bool) {
	if len(constraint) == 0 {
		return LitUndef, false
	}
	satisfiedAny := false
	var undecided Lit
	for _, l := range constraint {
		if e.trail.Satisfied(l) {
			satisfiedAny = true
			break
		}
		if !e.trail.IsAssigned(l) && undecided == LitUndef {
			undecided = l
		}
	}
	if satisfiedAny || undecided == LitUndef {
		return LitUndef, false
	}
	return undecided, true
}

// pickVariable selects the next unassigned variable from the active
// heuristic (spec §2 item 6).
func (e *Engine) pickVariable() int32 {
	switch e.heuristic {
	case HeuristicEVSIDS:
		for {
			v := e.evsids.Pop()
			if v == 0 {
				return 0
			}
			if !e.trail.Var(v).Assigned() {
				return v
			}
		}
	default:
		return e.vmtf.Next(func(v int32) bool { return e.trail.Var(v).Assigned() })
	}
}

// phaseLit applies the forced -> target -> saved -> initial precedence
// (spec §4.7, sourced from CaDiCaL's decide.cpp) to pick v's polarity.
func (e *Engine) phaseLit(v int32) Lit {
	vd := e.trail.Var(v)
	var phase Phase
	switch {
	case e.opts.ForcedPhase != PhaseUnset:
		phase = e.opts.ForcedPhase
	case vd.ForcedPhase != PhaseUnset:
		phase = vd.ForcedPhase
	case e.opts.TargetPhases && e.restart.Stable() && vd.TargetPhase != PhaseUnset:
		phase = vd.TargetPhase
	case vd.SavedPhase != PhaseUnset:
		phase = vd.SavedPhase
	default:
		phase = PhaseFalse
	}
	return NewLit(v, phase == PhaseFalse)
}

// assign records a decision or forced assignment, opening a new control
// frame when isDecision is true.
func (e *Engine) assign(lit Lit, reason ClauseRef, isDecision bool) {
	if isDecision {
		e.trail.NewDecisionLevel(lit)
		e.stats.Decisions++
	}
	e.trail.Assign(lit, reason)
}
