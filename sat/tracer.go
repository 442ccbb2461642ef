package sat

// Tracer is the fan-out target for clause events (spec §4.10). It is
// declared here, not in the proof package, so the engine depends on no
// concrete dialect: any type in package proof that implements this method
// set (DRAT/FRAT/LRAT/VeriPB/IDRUP tracers all do) can be attached via
// Solver.AddTracer without sat importing proof.
type Tracer interface {
	AddOriginalClause(id uint64, redundant bool, lits []Lit, restored bool)
	AddDerivedClause(id uint64, redundant bool, lits []Lit, antecedents []uint64)
	DeleteClause(id uint64, redundant bool, lits []Lit)
	WeakenMinus(id uint64, lits []Lit)
	Strengthen(id uint64)
	FinalizeClause(id uint64, lits []Lit)
	ReportStatus(status int)
	BeginProof(firstID uint64)
	SolveQuery()
	AddAssumption(lit Lit)
	AddAssumptionClause(id uint64, lits []Lit)
	AddConstraint(lits []Lit)
	ResetAssumptions()
	ConcludeSAT(model []Lit)
	ConcludeUNSAT(core []Lit)
	ConcludeUnknown()
}

// fanout broadcasts every event to a list of tracers synchronously, in the
// order the engine produces them (spec §5: "Tracers — synchronous
// fan-out... must not re-enter the solver").
type fanout struct {
	tracers []Tracer
}

func (f *fanout) Add(t Tracer) {
	if t != nil {
		f.tracers = append(f.tracers, t)
	}
}

func (f *fanout) AddOriginalClause(id uint64, redundant bool, lits []Lit, restored bool) {
	for _, t := range f.tracers {
		t.AddOriginalClause(id, redundant, lits, restored)
	}
}
func (f *fanout) AddDerivedClause(id uint64, redundant bool, lits []Lit, antecedents []uint64) {
	for _, t := range f.tracers {
		t.AddDerivedClause(id, redundant, lits, antecedents)
	}
}
func (f *fanout) DeleteClause(id uint64, redundant bool, lits []Lit) {
	for _, t := range f.tracers {
		t.DeleteClause(id, redundant, lits)
	}
}
func (f *fanout) WeakenMinus(id uint64, lits []Lit) {
	for _, t := range f.tracers {
		t.WeakenMinus(id, lits)
	}
}
func (f *fanout) Strengthen(id uint64) {
	for _, t := range f.tracers {
		t.Strengthen(id)
	}
}
func (f *fanout) FinalizeClause(id uint64, lits []Lit) {
	for _, t := range f.tracers {
		t.FinalizeClause(id, lits)
	}
}
func (f *fanout) ReportStatus(status int) {
	for _, t := range f.tracers {
		t.ReportStatus(status)
	}
}
func (f *fanout) BeginProof(firstID uint64) {
	for _, t := range f.tracers {
		t.BeginProof(firstID)
	}
}
func (f *fanout) SolveQuery() {
	for _, t := range f.tracers {
		t.SolveQuery()
	}
}
func (f *fanout) AddAssumption(lit Lit) {
	for _, t := range f.tracers {
		t.AddAssumption(lit)
	}
}
func (f *fanout) AddAssumptionClause(id uint64, lits []Lit) {
	for _, t := range f.tracers {
		t.AddAssumptionClause(id, lits)
	}
}
func (f *fanout) AddConstraint(lits []Lit) {
	for _, t := range f.tracers {
		t.AddConstraint(lits)
	}
}
func (f *fanout) ResetAssumptions() {
	for _, t := range f.tracers {
		t.ResetAssumptions()
	}
}
func (f *fanout) ConcludeSAT(model []Lit) {
	for _, t := range f.tracers {
		t.ConcludeSAT(model)
	}
}
func (f *fanout) ConcludeUNSAT(core []Lit) {
	for _, t := range f.tracers {
		t.ConcludeUNSAT(core)
	}
}
func (f *fanout) ConcludeUnknown() {
	for _, t := range f.tracers {
		t.ConcludeUnknown()
	}
}
