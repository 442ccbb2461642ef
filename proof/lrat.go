package proof

import (
	"io"

	"github.com/xDarkicex/cadical-go/sat"
)

// LRATTracer emits an LRAT proof (spec §4.10): every derived clause lists
// the antecedent clause IDs it resolved through ('<id> <lits> 0 <ants> 0'),
// which is exactly what AnalyzeConflict already tracks, making LRAT the
// cheapest dialect to produce accurately. Deletions are batched on a
// single 'd' line as LRAT checkers expect.
type LRATTracer struct {
	w            *writer
	pendingDels  []uint64
}

func NewLRATTracer(w io.Writer) *LRATTracer {
	return &LRATTracer{w: newWriter(w, FramingASCII)}
}

func (t *LRATTracer) flushDeletes() {
	if len(t.pendingDels) == 0 {
		return
	}
	t.w.w.WriteString("d ")
	for _, id := range t.pendingDels {
		t.w.w.WriteString(uitoa(id))
		t.w.w.WriteByte(' ')
	}
	t.w.w.WriteString("0\n")
	t.pendingDels = t.pendingDels[:0]
}

func (t *LRATTracer) AddOriginalClause(id uint64, redundant bool, lits []sat.Lit, restored bool) {
	// Original clauses are axioms in LRAT: no antecedent list at all.
	t.flushDeletes()
	t.w.w.WriteString(uitoa(id) + " ")
	for _, l := range lits {
		t.w.w.WriteString(itoa(int32(l)) + " ")
	}
	t.w.w.WriteString("0 0\n")
}

func (t *LRATTracer) AddDerivedClause(id uint64, redundant bool, lits []sat.Lit, antecedents []uint64) {
	t.flushDeletes()
	t.w.w.WriteString(uitoa(id) + " ")
	for _, l := range lits {
		t.w.w.WriteString(itoa(int32(l)) + " ")
	}
	t.w.w.WriteString("0 ")
	for _, a := range antecedents {
		t.w.w.WriteString(uitoa(a) + " ")
	}
	t.w.w.WriteString("0\n")
}

func (t *LRATTracer) DeleteClause(id uint64, redundant bool, lits []sat.Lit) {
	t.pendingDels = append(t.pendingDels, id)
}
func (t *LRATTracer) WeakenMinus(id uint64, lits []sat.Lit)    {}
func (t *LRATTracer) Strengthen(id uint64)                     {}
func (t *LRATTracer) FinalizeClause(id uint64, lits []sat.Lit) {}
func (t *LRATTracer) ReportStatus(status int)                  {}
func (t *LRATTracer) BeginProof(firstID uint64)                {}
func (t *LRATTracer) SolveQuery()                              {}
func (t *LRATTracer) AddAssumption(lit sat.Lit)                {}
func (t *LRATTracer) AddAssumptionClause(id uint64, lits []sat.Lit) {}
func (t *LRATTracer) AddConstraint(lits []sat.Lit) {}
func (t *LRATTracer) ResetAssumptions()            {}
func (t *LRATTracer) ConcludeSAT(model []sat.Lit)  {}
func (t *LRATTracer) ConcludeUNSAT(core []sat.Lit) { t.flushDeletes() }
func (t *LRATTracer) ConcludeUnknown()             {}

func (t *LRATTracer) Close(underlying io.Writer) error {
	t.flushDeletes()
	return t.w.Close(underlying)
}
