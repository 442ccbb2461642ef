package sat

// Sweep partitions the active variables into small environments and
// solves each with a nested Engine instance to discover fixed values a
// purely syntactic pass would miss (spec §4.11, "sweeping"): a SAT call is
// cheap over a few dozen variables, and a variable that takes one value in
// every model of its environment's sub-formula takes it in every model of
// the full formula. Equivalences between variables are not detected.
func (e *Engine) Sweep(budget int64) int {
	environments := e.partitionEnvironments(budget)
	found := 0
	for _, env := range environments {
		found += e.sweepEnvironment(env)
	}
	return found
}

// partitionEnvironments groups active variables into clusters bounded by
// a small size, following the shared-clause neighborhood of each
// variable; budget caps the total number of variables scanned.
func (e *Engine) partitionEnvironments(budget int64) [][]int32 {
	const envSize = 12
	var environments [][]int32
	var current []int32
	spent := int64(0)
	for v := int32(1); v <= e.numVars && spent < budget; v++ {
		vd := e.trail.Var(v)
		if vd.Status != StatusActive || vd.Assigned() {
			continue
		}
		current = append(current, v)
		spent++
		if len(current) == envSize {
			environments = append(environments, current)
			current = nil
		}
	}
	if len(current) > 0 {
		environments = append(environments, current)
	}
	return environments
}

// sweepEnvironment builds a restricted sub-formula over env's variables
// (every clause in the arena whose variables all lie in env), enumerates
// its models with a nested Engine by repeatedly blocking the last one, and
// fixes every variable that kept one value across all of them. Nothing is
// fixed unless the enumeration runs out of models within maxModels rounds.
func (e *Engine) sweepEnvironment(env []int32) int {
	inEnv := make(map[int32]bool, len(env))
	for _, v := range env {
		inEnv[v] = true
	}

	remap := make(map[int32]int32, len(env))
	for i, v := range env {
		remap[v] = int32(i + 1)
	}

	sub := NewEngine(int32(len(env)), DefaultOptions())
	sub.opts.Elim, sub.opts.Probe, sub.opts.Vivify = false, false, false
	sub.opts.Congruence, sub.opts.Sweep, sub.opts.Subsume = false, false, false

	e.arena.All(func(ref ClauseRef, c *Clause) {
		lits := make([]Lit, 0, c.Size())
		for _, l := range c.Lits {
			if !inEnv[l.Var()] {
				return
			}
			lits = append(lits, NewLit(remap[l.Var()], l.Sign()))
		}
		sub.AddOriginalClause(lits, false)
	})

	agree := make(map[int32]int8, len(env)) // observed common value, 0 = disagreement seen
	firstModel := true
	const maxModels = 8
	exhausted := false
	for i := 0; i < maxModels; i++ {
		status := sub.Search(nil, nil, nil)
		if status != StatusSatisfiable {
			exhausted = status == StatusUnsatisfiable
			break
		}
		for _, v := range env {
			rv := remap[v]
			vd := sub.trail.Var(rv)
			if !vd.Assigned() {
				continue
			}
			if firstModel {
				agree[v] = vd.Value
			} else if agree[v] != vd.Value {
				agree[v] = 0
			}
		}
		firstModel = false

		block := make([]Lit, 0, len(env))
		for _, v := range env {
			rv := remap[v]
			vd := sub.trail.Var(rv)
			if vd.Assigned() {
				block = append(block, NewLit(rv, vd.Value > 0))
			}
		}
		if len(block) == 0 {
			break
		}
		sub.backjump(0)
		sub.AddOriginalClause(block, false)
	}

	if !exhausted {
		return 0
	}
	found := 0
	for _, v := range env {
		if val, ok := agree[v]; ok && val != 0 {
			vd := e.trail.Var(v)
			if !vd.Assigned() {
				e.trail.Fix(NewLit(v, val < 0))
				e.stats.SweepEquivalences++
				found++
			}
		}
	}
	return found
}
