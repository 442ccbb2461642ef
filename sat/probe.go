package sat

// Probe runs failed-literal probing with hyper-binary resolution (spec
// §4.11, "probing"): tentatively assume each candidate literal at a fresh
// decision level, propagate, and record what that forces. A literal whose
// assumption leads to a conflict is itself implied false at level zero,
// and every literal a probe forces through a non-binary reason yields a
// learned binary clause (not-probe or forced) (hyper-binary resolution).
func (e *Engine) Probe(budget int64) int {
	units := 0
	spent := int64(0)
	for v := int32(1); v <= e.numVars && spent < budget; v++ {
		vd := e.trail.Var(v)
		if vd.Status != StatusActive || vd.Assigned() {
			continue
		}
		for _, polarity := range [2]bool{false, true} {
			lit := NewLit(v, polarity)
			if e.trail.IsAssigned(lit) {
				continue
			}
			spent++
			if e.probeLiteral(lit) {
				units++
				e.stats.UnitsFromProbing++
			}
		}
	}
	return units
}

// probeLiteral assumes lit, propagates, and undoes the assumption. If
// propagation conflicts, lit's negation is forced true at level zero.
// Otherwise it harvests hyper-binary resolvents from literals that became
// true alongside lit but are not already implied by an existing binary
// clause on lit.
func (e *Engine) probeLiteral(lit Lit) bool {
	if e.trail.IsAssigned(lit) {
		return false
	}
	startSize := e.trail.Size()
	e.trail.NewDecisionLevel(lit)
	e.trail.Assign(lit, CRefNone)

	conflict := e.Propagate()
	if conflict != CRefNone {
		e.backjump(e.DecisionLevel() - 1)
		e.trail.Fix(lit.Negate())
		rootConflict := e.RootLevelPropagate()
		if rootConflict != CRefNone {
			e.unsatAtZero = true
		}
		return true
	}

	e.harvestHyperBinaries(lit, startSize)
	e.backjump(e.DecisionLevel() - 1)
	return false
}

// harvestHyperBinaries learns lit -> forced as a binary clause for every
// literal forced during this probe that was not already on the trail
// before the probe began and has no existing two-literal justification.
func (e *Engine) harvestHyperBinaries(lit Lit, startSize int) {
	for i := startSize; i < e.trail.Size(); i++ {
		forced := e.trail.lits[i]
		if forced == lit || forced == LitUndef {
			continue
		}
		vd := e.trail.VarOf(forced)
		reason := e.arena.Clause(vd.Reason)
		if reason != nil && reason.IsBinary() {
			continue // already justified by a direct binary clause
		}
		e.NewResolvedClause([]Lit{lit.Negate(), forced}, 2, nil)
	}
}
