package sat

// RephaseScheme names one of the phase-selection strategies spec §4.6
// cycles through at widening intervals.
type RephaseScheme int

const (
	RephaseBest RephaseScheme = iota
	RephaseTarget
	RephaseFlipped
	RephaseInverted
	RephaseOriginal
	RephaseRandom
	RephaseWalk
)

func (s RephaseScheme) String() string {
	switch s {
	case RephaseBest:
		return "best"
	case RephaseTarget:
		return "target"
	case RephaseFlipped:
		return "flipped"
	case RephaseInverted:
		return "inverted"
	case RephaseOriginal:
		return "original"
	case RephaseRandom:
		return "random"
	case RephaseWalk:
		return "walk"
	default:
		return "unknown"
	}
}

// rephaseCycle is the order CaDiCaL rotates through; walk is only
// scheduled when local-search is enabled.
var rephaseCycle = []RephaseScheme{RephaseBest, RephaseTarget, RephaseOriginal, RephaseFlipped, RephaseInverted}

// RephaseController decides when to reassign every variable's saved phase
// from one of the schemes above (spec §4.6), on an interval that widens
// geometrically, by half after each rephase.
type RephaseController struct {
	opts        *Options
	conflicts   int64
	nextAt      int64
	interval    int64
	cycleIndex  int
	rng         uint64 // xorshift64 state for RephaseRandom
}

func NewRephaseController(opts *Options) *RephaseController {
	return &RephaseController{
		opts:     opts,
		interval: 1000,
		nextAt:   1000,
		rng:      0x9e3779b97f4a7c15,
	}
}

// NoteConflict advances the controller's conflict counter; call once per
// conflict.
func (r *RephaseController) NoteConflict() { r.conflicts++ }

// Due reports whether a rephase should happen now.
func (r *RephaseController) Due() bool { return r.conflicts >= r.nextAt }

// Next returns the scheme to apply and advances the schedule.
func (r *RephaseController) Next() RephaseScheme {
	var scheme RephaseScheme
	if r.opts.Walk && r.cycleIndex%7 == 6 {
		scheme = RephaseWalk
	} else {
		scheme = rephaseCycle[r.cycleIndex%len(rephaseCycle)]
	}
	r.cycleIndex++
	r.interval = r.interval + r.interval/2
	r.nextAt = r.conflicts + r.interval
	return scheme
}

func (r *RephaseController) nextRandom() uint64 {
	r.rng ^= r.rng << 13
	r.rng ^= r.rng >> 7
	r.rng ^= r.rng << 17
	return r.rng
}

// ApplyRephase rewrites SavedPhase for every active variable according to
// scheme (spec §4.6). best/target read previously recorded snapshots;
// flipped negates the current saved phase; inverted negates the original
// polarity heuristic; original resets to the per-variable ForcedPhase
// default; random draws fresh coin flips.
func (e *Engine) ApplyRephase(scheme RephaseScheme) {
	for v := int32(1); v <= e.numVars; v++ {
		vd := e.trail.Var(v)
		if vd.Status == StatusEliminated || vd.Status == StatusSubstituted {
			continue
		}
		switch scheme {
		case RephaseBest:
			if vd.BestPhase != PhaseUnset {
				vd.SavedPhase = vd.BestPhase
			}
		case RephaseTarget:
			if vd.TargetPhase != PhaseUnset {
				vd.SavedPhase = vd.TargetPhase
			}
		case RephaseFlipped:
			vd.SavedPhase = -vd.SavedPhase
		case RephaseInverted:
			if vd.ForcedPhase != PhaseUnset {
				vd.SavedPhase = -vd.ForcedPhase
			} else {
				vd.SavedPhase = PhaseTrue
			}
		case RephaseOriginal:
			if vd.ForcedPhase != PhaseUnset {
				vd.SavedPhase = vd.ForcedPhase
			} else {
				vd.SavedPhase = PhaseFalse
			}
		case RephaseRandom:
			if e.rephase.nextRandom()&1 == 0 {
				vd.SavedPhase = PhaseTrue
			} else {
				vd.SavedPhase = PhaseFalse
			}
		case RephaseWalk:
			// no local search runs; the current saved phases are left
			// in place.
		}
	}
	e.stats.Rephases++
}

// UpdateTargetPhase copies the value of every assigned variable into its
// "target" phase (spec §4.6). Search calls it after every conflict-free
// propagation that leaves a variable unassigned; it does not compare the
// trail against earlier, longer assignments.
func (e *Engine) UpdateTargetPhase() {
	for v := int32(1); v <= e.numVars; v++ {
		vd := e.trail.Var(v)
		if vd.Assigned() {
			if vd.Value > 0 {
				vd.TargetPhase = PhaseTrue
			} else {
				vd.TargetPhase = PhaseFalse
			}
		}
	}
}

// UpdateBestPhase copies the value of every assigned variable into its
// "best" phase. Search calls it once a full satisfying assignment is
// reached.
func (e *Engine) UpdateBestPhase() {
	for v := int32(1); v <= e.numVars; v++ {
		vd := e.trail.Var(v)
		if vd.Assigned() {
			if vd.Value > 0 {
				vd.BestPhase = PhaseTrue
			} else {
				vd.BestPhase = PhaseFalse
			}
		}
	}
}
