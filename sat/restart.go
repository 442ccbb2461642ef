package sat

import "math"

// stabilizeMode tracks whether the search is currently in CaDiCaL's
// "stable" phase (reluctant doubling restarts, target phases favored) or
// "unstable" phase (Glucose-style EMA restarts), per spec §4.5.
type stabilizeMode int

const (
	modeUnstable stabilizeMode = iota
	modeStable
)

// RestartController decides when the main loop should give up its current
// trail and restart from level zero (spec §4.5). It owns both restart
// policies and the per-mode conflict budget that switches between them.
type RestartController struct {
	opts *Options
	mode stabilizeMode

	// Glucose EMA state (unstable mode): a fast and a slow exponential
	// moving average of learned-clause glue; restart once the fast
	// average rises enough above the slow one.
	fastGlue float64
	slowGlue float64
	fastBeta float64
	slowBeta float64
	warmup   int64

	// Reluctant doubling state (stable mode): a two-counter Luby-like
	// sequence, cheaper than computing the Luby number directly.
	reluctantU int64
	reluctantV int64
	base       int64

	conflictsSinceRestart int64
	ticksBudget           int64
	modeConflicts         int64
}

func NewRestartController(opts *Options) *RestartController {
	r := &RestartController{
		opts:     opts,
		mode:     modeUnstable,
		fastBeta: 1.0 / 32,
		slowBeta: 1.0 / 4096,
		warmup:   int64(opts.UnstableRestartInt),
		base:     opts.StableReluctantBase,
	}
	r.resetReluctant()
	return r
}

func (r *RestartController) resetReluctant() {
	r.reluctantU = 1
	r.reluctantV = 1
}

// reluctantNext advances the two-counter doubling sequence and returns the
// next interval, in units of r.base conflicts.
func (r *RestartController) reluctantNext() int64 {
	next := r.reluctantV
	if r.reluctantU&(-r.reluctantU) == r.reluctantV {
		r.reluctantU++
		r.reluctantV = 1
	} else {
		r.reluctantV *= 2
	}
	return next
}

// NoteConflict updates the glue EMAs and per-mode conflict counters; call
// once per learned clause, before ShouldRestart.
func (r *RestartController) NoteConflict(glue int32) {
	g := float64(glue)
	if r.fastGlue == 0 && r.slowGlue == 0 {
		r.fastGlue, r.slowGlue = g, g
	} else {
		r.fastGlue += r.fastBeta * (g - r.fastGlue)
		r.slowGlue += r.slowBeta * (g - r.slowGlue)
	}
	r.conflictsSinceRestart++
	r.modeConflicts++
}

// ShouldRestart reports whether the engine should back off to level zero
// now, per the active mode's policy.
func (r *RestartController) ShouldRestart() bool {
	if !r.opts.Reduce && !r.opts.Stabilize {
		// restart is still meaningful without reduce/stabilize, fall through
	}
	switch r.mode {
	case modeStable:
		return r.conflictsSinceRestart >= r.reluctantV*r.base
	default:
		margin := 1.0 + float64(r.opts.RestartMargin)/100.0
		return r.conflictsSinceRestart > 10 && r.fastGlue > r.slowGlue*margin
	}
}

// Restarted resets the per-restart counters and advances the reluctant
// sequence when in stable mode.
func (r *RestartController) Restarted() {
	if r.mode == modeStable {
		r.reluctantNext()
	}
	r.conflictsSinceRestart = 0
}

// MaybeSwitchMode flips between stable and unstable once the conflicts
// counted in the current mode reach the mode budget, then grows the budget
// by half. The budget is counted in conflicts; the ticks argument is not
// consulted.
func (r *RestartController) MaybeSwitchMode(ticks int64) bool {
	if !r.opts.Stabilize {
		return false
	}
	if r.modeConflicts < r.ticksBudgetFor(ticks) {
		return false
	}
	if r.mode == modeUnstable {
		r.mode = modeStable
		r.resetReluctant()
	} else {
		r.mode = modeUnstable
		r.fastGlue, r.slowGlue = 0, 0
	}
	r.modeConflicts = 0
	r.ticksBudget = r.nextTicksBudget()
	return true
}

func (r *RestartController) ticksBudgetFor(ticks int64) int64 {
	if r.ticksBudget == 0 {
		r.ticksBudget = r.opts.UnstableRestartInt * 100
	}
	return r.ticksBudget
}

func (r *RestartController) nextTicksBudget() int64 {
	grown := int64(math.Ceil(float64(r.ticksBudget) * 1.5))
	if grown <= r.ticksBudget {
		grown = r.ticksBudget + 1
	}
	return grown
}

func (r *RestartController) Mode() stabilizeMode { return r.mode }
func (r *RestartController) Stable() bool         { return r.mode == modeStable }

// ReuseTrailLevel computes how much of the current trail can survive a
// restart unshaken (spec §4.5, "reuse-trail"): it walks the decision
// levels upward from 1 and returns the level just below the first one for
// which nextDecisionTimestamp reports a negative value. solve.go's
// reuseLevel passes the decision variable's VMTF timestamp minus that of
// the next decision candidate, so a level is kept while its decision was
// bumped no earlier than the candidate and would be redecided anyway.
func ReuseTrailLevel(trail *Trail, nextDecisionTimestamp func(v int32) int64) int32 {
	level := trail.Level()
	reuse := int32(0)
	for l := int32(1); l <= level; l++ {
		frame := trail.control[l]
		v := frame.Decision.Var()
		if nextDecisionTimestamp(v) < 0 {
			break
		}
		reuse = l
	}
	return reuse
}
