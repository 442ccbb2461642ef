package sat

// Inprocess runs one round of the techniques enabled in Options, in the
// fixed order spec §4.11 lists them (cheap syntactic passes before
// expensive semantic ones), each gated by its own effort budget so a
// single round cannot blow past the conflict interval that scheduled it.
func (e *Engine) Inprocess() {
	e.stats.InprocessRuns++

	if e.opts.Subsume {
		e.Decompose()
	}
	if e.opts.Ternary {
		e.TernaryResolve(e.opts.ProbeEffort)
	}
	if e.opts.Transred {
		e.TransitiveReduction(e.opts.ProbeEffort)
	}
	if e.opts.Probe {
		e.Probe(e.opts.ProbeEffort)
	}
	if e.opts.Vivify {
		e.Vivify(e.opts.VivifyEffort)
	}
	if e.opts.Congruence {
		e.CongruenceClosure(e.opts.ElimEffort)
	}
	if e.opts.Elim {
		e.Eliminate(e.opts.ElimEffort)
	}
	if e.opts.Sweep {
		e.Sweep(e.opts.SweepEffort)
	}

	if res := e.arena.GarbageCollection(); res.Remap != nil {
		e.remapWatches(res.Remap)
	}
}

// ShouldInprocess reports whether enough conflicts have elapsed since the
// last round to justify another one (spec §4.11's own scheduling
// interval, separate from restart/reduce/rephase).
func (e *Engine) ShouldInprocess() bool {
	return e.opts.InprocessEvery > 0 && e.conflicts > 0 && e.conflicts%e.opts.InprocessEvery == 0 &&
		e.stats.InprocessRuns < e.conflicts/e.opts.InprocessEvery
}
