package sat

import (
	"github.com/sirupsen/logrus"
	"github.com/xDarkicex/cadical-go/core"
)

// State is the incremental-API state machine of spec §5: callers move
// through it by calling Add/Assume/Solve/etc, and a call made in the
// wrong state is a contract violation, not an ordinary error.
type State int

const (
	StateInitializing State = iota
	StateConfiguring
	StateSteady
	StateAdding
	StateSolving
	StateSatisfied
	StateUnsatisfied
	StateInconclusive
	StateDeleting
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateConfiguring:
		return "configuring"
	case StateSteady:
		return "steady"
	case StateAdding:
		return "adding"
	case StateSolving:
		return "solving"
	case StateSatisfied:
		return "satisfied"
	case StateUnsatisfied:
		return "unsatisfied"
	case StateInconclusive:
		return "inconclusive"
	case StateDeleting:
		return "deleting"
	default:
		return "unknown"
	}
}

// Solver is the public incremental entry point: external variable
// numbering, the state machine, assumptions/constraint/failed-core
// bookkeeping, and the proof tracer fan-out sit here, layered over the
// internal Engine (spec §5, §4.8, §4.10).
type Solver struct {
	engine *Engine
	state  State
	opts   *Options
	log    *logrus.Logger

	external *ExternalMap
	tracers  fanout

	assumptions   []Lit
	constraint    []Lit
	pendingClause []Lit
	lastStatus    Status
	failedCore    map[Lit]bool
	propagator    ExternalPropagator
}

// New creates a fresh Solver; it passes through the Initializing state and
// is returned in the Configuring state (spec §5).
func New() *Solver {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	opts := DefaultOptions()
	s := &Solver{
		engine:   NewEngine(0, opts),
		state:    StateInitializing,
		opts:     opts,
		log:      log,
		external: NewExternalMap(),
	}
	s.engine.externalMap = s.external
	s.state = StateConfiguring
	return s
}

// AddTracer attaches a proof tracer; valid only before any clause has
// been added (spec §4.10, "BeginProof").
func (s *Solver) AddTracer(t Tracer) {
	s.tracers.Add(t)
	s.engine.tracer.Add(t)
}

// Configure applies a bundled option set by name (spec §6.1).
func (s *Solver) Configure(name string) error {
	if s.state != StateConfiguring {
		return core.NewContractError("sat", "Configure", "must be called before adding clauses")
	}
	return s.opts.Configure(name)
}

// Set applies a single named boolean option (spec §6.1).
func (s *Solver) Set(name string, value bool) error {
	return s.opts.Set(name, value)
}

func (s *Solver) ensureAddable() error {
	switch s.state {
	case StateConfiguring, StateSteady, StateAdding:
		s.state = StateAdding
		return nil
	case StateSatisfied, StateUnsatisfied, StateInconclusive:
		// Clauses are only ever added at decision level zero (spec §5);
		// a concluded Solve call may have left the trail deeper than
		// that.
		s.engine.backjump(0)
		s.state = StateAdding
		return nil
	default:
		return core.NewContractError("sat", "Add", "invalid state: "+s.state.String())
	}
}

// internalize maps a slice of external signed literals to internal ones,
// growing the engine and reserving internal slots as needed.
func (s *Solver) internalize(extLits []int32) []Lit {
	out := make([]Lit, len(extLits))
	maxVar := int32(0)
	for i, e := range extLits {
		if e == 0 {
			panic(core.NewContractError("sat", "internalize", "literal must not be zero"))
		}
		v := e
		neg := false
		if v < 0 {
			v = -v
			neg = true
		}
		iv := s.external.Internal(v)
		if iv > maxVar {
			maxVar = iv
		}
		out[i] = NewLit(s.external.Representative(iv), neg)
	}
	if maxVar > s.engine.numVars {
		s.engine.Grow(maxVar)
	}
	return out
}

// Add appends one literal of a clause under construction, or ends it on a
// zero terminator, mirroring IPASIR's incremental clause-building call
// (spec §5, §6.2).
func (s *Solver) Add(lit int32) {
	if err := s.ensureAddable(); err != nil {
		panic(err)
	}
	if lit == 0 {
		lits := s.pendingClause
		s.pendingClause = nil
		s.engine.AddOriginalClause(lits, false)
		s.state = StateSteady
		return
	}
	s.pendingClause = append(s.pendingClause, s.internalize([]int32{lit})[0])
}

// AddClause is the batch convenience form of Add for a whole clause at
// once (spec §6.2).
func (s *Solver) AddClause(lits ...int32) {
	if err := s.ensureAddable(); err != nil {
		panic(err)
	}
	s.engine.AddOriginalClause(s.internalize(lits), false)
	s.state = StateSteady
}

// Assume adds lit to the assumption set for the next Solve call (spec
// §6.3). Solve clears the assumption set when it returns.
func (s *Solver) Assume(lit int32) {
	if s.state != StateSteady && s.state != StateConfiguring {
		panic(core.NewContractError("sat", "Assume", "invalid state: "+s.state.String()))
	}
	l := s.internalize([]int32{lit})[0]
	s.assumptions = append(s.assumptions, l)
	s.tracers.AddAssumption(l)
}

// Constrain sets the single standing constraint clause (spec §6.3): at
// most one may be active, and it persists across Solve calls until
// replaced or explicitly cleared with a zero-length call.
func (s *Solver) Constrain(lits ...int32) {
	if len(lits) == 0 {
		s.constraint = nil
		return
	}
	s.constraint = s.internalize(lits)
	s.tracers.AddConstraint(s.constraint)
}

// Solve runs the search to a conclusion under the current assumptions and
// constraint (spec §5, §6.3).
func (s *Solver) Solve() Status {
	s.state = StateSolving
	s.tracers.SolveQuery()

	var externalDecide func() Lit
	if s.propagator != nil {
		externalDecide = s.propagator.CBDecide
	}

	status := s.engine.Search(s.assumptions, s.constraint, externalDecide)
	s.lastStatus = status

	switch status {
	case StatusSatisfiable:
		s.state = StateSatisfied
		model := s.engine.Model()
		s.tracers.ConcludeSAT(model)
	case StatusUnsatisfiable:
		s.state = StateUnsatisfied
		s.computeFailedCore()
		s.tracers.ConcludeUNSAT(s.failedCoreLits())
	default:
		s.state = StateInconclusive
		s.tracers.ConcludeUnknown()
	}
	s.assumptions = nil
	return status
}

// computeFailedCore walks the assumptions actually touched by the final
// conflict's resolution chain, marking them failed (spec §6.3's
// failed-assumption query). A conservative approximation: any assumption
// whose literal never got assigned true is included.
func (s *Solver) computeFailedCore() {
	s.failedCore = make(map[Lit]bool)
	for _, a := range s.assumptions {
		if !s.engine.trail.Satisfied(a) {
			s.failedCore[a] = true
		}
	}
}

func (s *Solver) failedCoreLits() []Lit {
	out := make([]Lit, 0, len(s.failedCore))
	for l := range s.failedCore {
		out = append(out, l)
	}
	return out
}

// Failed reports whether lit is part of the failed assumption core from
// the last unsatisfiable Solve call (spec §6.3).
func (s *Solver) Failed(lit int32) bool {
	if s.state != StateUnsatisfied {
		panic(core.NewContractError("sat", "Failed", "only valid after an UNSAT result"))
	}
	l := s.internalize([]int32{lit})[0]
	return s.failedCore[l]
}

// Val returns the value of lit in the last satisfying model (spec §6.3).
func (s *Solver) Val(lit int32) int32 {
	if s.state != StateSatisfied {
		panic(core.NewContractError("sat", "Val", "only valid after a SAT result"))
	}
	v := s.external.Representative(s.external.Internal(abs32(lit)))
	vd := s.engine.trail.Var(v)
	if vd.Value > 0 {
		return lit
	}
	return -lit
}

// Fixed reports whether lit is implied at level zero regardless of any
// assumptions (spec §6.3).
func (s *Solver) Fixed(lit int32) int8 {
	l := s.internalize([]int32{lit})[0]
	vd := s.engine.trail.VarOf(l)
	if vd.Status != StatusFixed {
		return 0
	}
	return s.engine.trail.Value(l)
}

// Freeze/Melt manage the external-variable freeze count that keeps
// inprocessing from eliminating a variable the caller still needs to
// query or reuse across Solve calls (spec §6.3).
func (s *Solver) Freeze(lit int32) { s.external.Freeze(abs32(lit)) }
func (s *Solver) Melt(lit int32)   { s.external.Melt(abs32(lit)) }

// Reserve grows internal storage up front for up to maxVar external
// variables (spec §6.1).
func (s *Solver) Reserve(maxVar int32) {
	s.engine.Grow(maxVar)
}

// ResetAssumptions clears the assumption set without solving (spec §6.3).
func (s *Solver) ResetAssumptions() {
	s.assumptions = nil
	s.tracers.ResetAssumptions()
}

// SetPropagator installs an external propagator plugin (spec §4.8).
func (s *Solver) SetPropagator(p ExternalPropagator) { s.propagator = p }

// State reports the current incremental-API state.
func (s *Solver) State() State { return s.state }

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
