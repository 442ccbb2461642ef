package sat

import "sort"

// ReduceController schedules clause-database reduction (spec §4.4): a
// geometrically widening interval of conflicts, after which the lowest-
// ranked fraction of non-protected redundant clauses are collected.
type ReduceController struct {
	opts      *Options
	conflicts int64
	nextAt    int64
	interval  int64
	target    int
}

func NewReduceController(opts *Options) *ReduceController {
	return &ReduceController{
		opts:     opts,
		interval: 2000,
		nextAt:   2000,
		target:   opts.ReduceTarget,
	}
}

func (r *ReduceController) NoteConflict() { r.conflicts++ }

func (r *ReduceController) Due() bool {
	return r.opts.Reduce && r.conflicts >= r.nextAt
}

func (r *ReduceController) Scheduled() {
	r.interval += r.interval / 3
	r.nextAt = r.conflicts + r.interval
}

// reduceCandidate is a scratch view used only to rank clauses.
type reduceCandidate struct {
	ref  ClauseRef
	tier int
	used uint8
	size int32
}

// Reduce walks the learned-clause set, keeps Clause.Tier's tier-0 (glue
// <= 2) clauses unconditionally, and removes the lowest-ranked target percent of
// the rest, skipping anything protected as a current reason (spec §4.4:
// "reduce never deletes a clause that is a reason on the trail").
func (e *Engine) Reduce() {
	e.arena.ProtectReasons(e.trail)
	defer e.arena.UnprotectReasons()

	var candidates []reduceCandidate
	kept := e.learned[:0]
	for _, ref := range e.learned {
		c := e.arena.Clause(ref)
		if c == nil || c.Garbage {
			continue
		}
		tier := c.Tier()
		if tier == 0 || e.arena.protected[ref] {
			kept = append(kept, ref)
			continue
		}
		candidates = append(candidates, reduceCandidate{ref: ref, tier: tier, used: c.Used, size: int32(c.Size())})
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.used != b.used {
			return a.used < b.used
		}
		if a.tier != b.tier {
			return a.tier > b.tier
		}
		return a.size > b.size
	})

	remove := len(candidates) * e.reduceC.target / 100
	for i, cand := range candidates {
		if i < remove {
			e.MarkGarbage(cand.ref)
			e.stats.Deleted++
			continue
		}
		kept = append(kept, cand.ref)
	}
	e.learned = kept

	if res := e.arena.GarbageCollection(); res.Remap != nil {
		e.remapWatches(res.Remap)
		e.stats.Flushed++
	}
}

// remapWatches rewrites every watch list reference, the original/learned
// clause lists, and the trail's reason references after a garbage
// collection compacts the arena (spec §4.1: "GC remaps every live
// ClauseRef exactly once").
func (e *Engine) remapWatches(remap map[ClauseRef]ClauseRef) {
	for lit, list := range e.watches.lists {
		for i, w := range list {
			if nr, ok := remap[w.Ref]; ok {
				list[i].Ref = nr
			}
		}
		e.watches.lists[lit] = list
	}
	for i, ref := range e.original {
		if nr, ok := remap[ref]; ok {
			e.original[i] = nr
		}
	}
	for i, ref := range e.learned {
		if nr, ok := remap[ref]; ok {
			e.learned[i] = nr
		}
	}
	for v := int32(1); v <= e.numVars; v++ {
		vd := e.trail.Var(v)
		if nr, ok := remap[vd.Reason]; ok {
			vd.Reason = nr
		}
	}
}
