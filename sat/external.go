package sat

// ExternalMap translates between the external variable numbering the
// caller uses and the internal, densely packed numbering the engine
// operates on (spec §4.8). Equivalent-literal substitution unions
// external variables onto a single internal representative via a
// union-find so that freeze/melt and value queries see through it
// transparently.
type ExternalMap struct {
	toInternal map[int32]int32
	toExternal map[int32]int32
	parent     map[int32]int32 // union-find over internal vars, for substitution
	frozen     map[int32]int
	nextInternal int32
}

func NewExternalMap() *ExternalMap {
	return &ExternalMap{
		toInternal: make(map[int32]int32),
		toExternal: make(map[int32]int32),
		parent:     make(map[int32]int32),
		frozen:     make(map[int32]int),
	}
}

// Internal returns the internal variable for an external one, allocating
// a fresh internal slot on first use.
func (m *ExternalMap) Internal(ext int32) int32 {
	if v, ok := m.toInternal[ext]; ok {
		return v
	}
	m.nextInternal++
	v := m.nextInternal
	m.toInternal[ext] = v
	m.toExternal[v] = ext
	return v
}

// External returns the external variable that originally mapped to an
// internal one, or 0 if internal was never externally visible (e.g. a
// Tseitin variable introduced by congruence extraction).
func (m *ExternalMap) External(internal int32) int32 { return m.toExternal[internal] }

// Union merges two internal variables into one equivalence class,
// recording which survives as representative (spec §4.8,
// "equivalent-literal substitution").
func (m *ExternalMap) Union(keep, drop int32) {
	m.parent[m.find(drop)] = m.find(keep)
}

func (m *ExternalMap) find(v int32) int32 {
	p, ok := m.parent[v]
	if !ok {
		return v
	}
	root := m.find(p)
	m.parent[v] = root
	return root
}

// Representative returns the surviving internal variable after any
// substitutions have unioned v away.
func (m *ExternalMap) Representative(v int32) int32 { return m.find(v) }

// Freeze marks ext as frozen: its internal variable will not be
// eliminated, substituted, or otherwise removed by inprocessing (spec
// §4.8). Freezing is reference counted so nested freeze/melt pairs behave
// correctly.
func (m *ExternalMap) Freeze(ext int32) {
	v := m.Internal(ext)
	m.frozen[v]++
}

// Melt releases one freeze reference; the variable becomes eligible for
// elimination again once its count reaches zero.
func (m *ExternalMap) Melt(ext int32) {
	v := m.Internal(ext)
	if m.frozen[v] > 0 {
		m.frozen[v]--
		if m.frozen[v] == 0 {
			delete(m.frozen, v)
		}
	}
}

func (m *ExternalMap) IsFrozen(internal int32) bool { return m.frozen[internal] > 0 }

// ExternalPropagator is the plugin interface spec §4.8 describes for
// CDCL-with-theory-propagation integrations (CaDiCaL's IPASIR-UP
// extension): the solver calls back into it during search, and it may
// assert propagations, add lazy reason/external clauses, or override
// decisions.
type ExternalPropagator interface {
	// NotifyAssignment is called whenever the solver assigns lit.
	NotifyAssignment(lit Lit)
	// NotifyNewDecisionLevel is called when the solver opens a new level.
	NotifyNewDecisionLevel()
	// NotifyBacktrack is called when the solver backtracks to level.
	NotifyBacktrack(level int32)

	// CBCheckFoundModel is called with a full candidate model before the
	// solver reports SAT; returning false forces the search to continue
	// (the propagator is expected to have added a blocking clause via
	// CBAddExternalClauseLit first).
	CBCheckFoundModel(model []Lit) bool

	// CBDecide lets the propagator supply the next decision literal; a
	// return of LitUndef defers to the solver's own heuristic.
	CBDecide() Lit

	// CBPropagate lets the propagator assert a forced literal; LitUndef
	// means it has nothing more to propagate right now.
	CBPropagate() Lit

	// CBAddReasonClauseLit streams, literal by literal, the reason clause
	// justifying the propagated literal most recently returned from
	// CBPropagate. A zero literal ends the clause.
	CBAddReasonClauseLit(propagatedLit Lit) Lit

	// CBHasExternalClause reports whether the propagator has a new clause
	// to contribute (e.g. a lazily generated lemma) and whether it is
	// known-forgettable (may be dropped on backtrack without replay).
	CBHasExternalClause() (has bool, forgettable bool)

	// CBAddExternalClauseLit streams the pending external clause,
	// literal by literal; a zero literal ends the clause.
	CBAddExternalClauseLit() Lit

	// IsLazy reports whether this propagator only wants to be consulted
	// right before a model is reported, rather than during search.
	IsLazy() bool
}
