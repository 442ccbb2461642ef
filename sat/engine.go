package sat

import "github.com/sirupsen/logrus"

// Engine is the decision/propagate/analyze loop together with the clause
// database, watch scheme, and scheduling controllers (spec §2). Solver
// (solver.go) layers the incremental API, external variable numbering,
// and proof fan-out on top of it.
type Engine struct {
	arena   *Arena
	trail   *Trail
	watches *Watches
	numVars int32

	original []ClauseRef // irredundant clauses, in addition order
	learned  []ClauseRef // redundant (learned) clauses

	heuristic HeuristicMode
	vmtf      *VMTFQueue
	evsids    *EVSIDSHeap

	restart *RestartController
	reduceC *ReduceController
	rephase *RephaseController

	opts  *Options
	stats *Stats
	log   *logrus.Logger

	tracer fanout

	conflicts int64
	ticks     int64

	unsatAtZero bool // persistent flag: an empty clause was derived

	terminator func() bool

	seenScratch *seenState // reused across AnalyzeConflict calls

	extension   *ExtensionStack
	externalMap *ExternalMap
}

// HeuristicMode selects between the two interchangeable decision schemes
// of spec §2 item 6.
type HeuristicMode int

const (
	HeuristicVMTF HeuristicMode = iota
	HeuristicEVSIDS
)

func NewEngine(numVars int32, opts *Options) *Engine {
	if opts == nil {
		opts = DefaultOptions()
	}
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	e := &Engine{
		arena:     NewArena(),
		trail:     NewTrail(numVars),
		watches:   NewWatches(),
		numVars:   numVars,
		heuristic: HeuristicVMTF,
		vmtf:      NewVMTFQueue(numVars),
		evsids:    NewEVSIDSHeap(numVars),
		restart:   NewRestartController(opts),
		reduceC:   NewReduceController(opts),
		rephase:   NewRephaseController(opts),
		opts:      opts,
		stats:     NewStats(),
		log:         log,
		extension:   NewExtensionStack(),
		externalMap: NewExternalMap(),
	}
	return e
}

// Grow extends internal arrays to accommodate a larger maximum variable
// index (spec §6.1, "reserve").
func (e *Engine) Grow(numVars int32) {
	if numVars <= e.numVars {
		return
	}
	e.numVars = numVars
	e.trail.Grow(numVars)
	e.vmtf.Grow(numVars)
	e.evsids.Grow(numVars)
}

func (e *Engine) DecisionLevel() int32 { return e.trail.Level() }

// AddOriginalClause installs a clause supplied by the user (or restored
// from the extension stack). Empty and unit clauses are handled specially:
// an empty clause sets the persistent UNSAT flag (spec §7); a unit clause
// is fixed at level zero.
func (e *Engine) AddOriginalClause(lits []Lit, restored bool) ClauseRef {
	lits = dedupSortedCopy(lits)
	e.tracer.AddOriginalClause(0, false, lits, restored)

	switch len(lits) {
	case 0:
		e.unsatAtZero = true
		return CRefNone
	case 1:
		l := lits[0]
		if e.trail.IsAssigned(l) {
			if e.trail.Falsified(l) {
				e.unsatAtZero = true
			}
			return CRefNone
		}
		e.trail.Fix(l)
		return CRefNone
	}

	ref := e.arena.NewClause(lits, false, 0)
	c := e.arena.Clause(ref)
	e.watches.WatchClause(ref, c)
	e.original = append(e.original, ref)
	return ref
}

// NewResolvedClause installs a clause learned by conflict analysis or
// produced by inprocessing resolution (spec §3, "Lifecycle").
func (e *Engine) NewResolvedClause(lits []Lit, glue int32, antecedents []uint64) ClauseRef {
	if len(lits) == 1 {
		e.trail.Fix(lits[0])
		e.tracer.AddDerivedClause(e.nextProofID(), true, lits, antecedents)
		return CRefNone
	}
	ref := e.arena.NewClause(lits, true, glue)
	c := e.arena.Clause(ref)
	e.watches.WatchClause(ref, c)
	e.learned = append(e.learned, ref)
	e.tracer.AddDerivedClause(c.ID, true, lits, antecedents)
	return ref
}

// nextProofID hands out the next identifier from this engine's own arena,
// so nested engines (sweep.go) never interleave ID streams with the outer
// solver (spec §9: global mutable state must live inside a single engine
// value; invariant 7: strictly increasing identifiers per solver).
func (e *Engine) nextProofID() uint64 {
	return e.arena.NextID()
}

// MarkGarbage deletes a clause from the live database: it is unwatched,
// reported to the proof tracer, and marked garbage in the arena (spec
// §4.1).
func (e *Engine) MarkGarbage(ref ClauseRef) {
	c := e.arena.Clause(ref)
	if c == nil || c.Garbage {
		return
	}
	e.watches.UnwatchClause(ref, c)
	e.tracer.DeleteClause(c.ID, c.Redundant, c.Lits)
	e.arena.MarkGarbage(ref)
}

// dedupSortedCopy returns a copy of lits without duplicate literals, in
// first-occurrence order. It does not sort and does not detect
// tautologies (see isTautology).
func dedupSortedCopy(lits []Lit) []Lit {
	out := make([]Lit, 0, len(lits))
	seen := make(map[Lit]bool, len(lits))
	for _, l := range lits {
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}

// isTautology reports whether lits contains both a literal and its
// negation.
func isTautology(lits []Lit) bool {
	seen := make(map[Lit]bool, len(lits))
	for _, l := range lits {
		if seen[l.Negate()] {
			return true
		}
		seen[l] = true
	}
	return false
}
