package proof

import (
	"io"

	"github.com/xDarkicex/cadical-go/sat"
)

// IDRUPTracer emits an IDRUP proof (spec §4.10): DRUP extended with
// explicit incremental-API markers ('i' input clause, 'q' query with its
// assumption list, 'u'/'s' conclusion) so a checker can replay a whole
// sequence of incremental Solve calls, not just a single one-shot run.
type IDRUPTracer struct {
	w           *writer
	pendingAsms []sat.Lit
}

func NewIDRUPTracer(w io.Writer) *IDRUPTracer {
	return &IDRUPTracer{w: newWriter(w, FramingASCII)}
}

func litsToInt32(lits []sat.Lit) []int32 {
	out := make([]int32, len(lits))
	for i, l := range lits {
		out[i] = int32(l)
	}
	return out
}

func (t *IDRUPTracer) AddOriginalClause(id uint64, redundant bool, lits []sat.Lit, restored bool) {
	t.w.w.WriteString("i ")
	t.w.WriteASCIILits(litsToInt32(lits))
}
func (t *IDRUPTracer) AddDerivedClause(id uint64, redundant bool, lits []sat.Lit, antecedents []uint64) {
	t.w.WriteASCIILits(litsToInt32(lits))
}
func (t *IDRUPTracer) DeleteClause(id uint64, redundant bool, lits []sat.Lit) {
	t.w.w.WriteString("d ")
	t.w.WriteASCIILits(litsToInt32(lits))
}
func (t *IDRUPTracer) WeakenMinus(id uint64, lits []sat.Lit)    {}
func (t *IDRUPTracer) Strengthen(id uint64)                     {}
func (t *IDRUPTracer) FinalizeClause(id uint64, lits []sat.Lit) {}
func (t *IDRUPTracer) ReportStatus(status int)                  {}
func (t *IDRUPTracer) BeginProof(firstID uint64)                {}

func (t *IDRUPTracer) SolveQuery() {
	t.w.w.WriteString("q ")
	t.w.WriteASCIILits(litsToInt32(t.pendingAsms))
	t.pendingAsms = nil
}
func (t *IDRUPTracer) AddAssumption(lit sat.Lit) {
	t.pendingAsms = append(t.pendingAsms, lit)
}
func (t *IDRUPTracer) AddAssumptionClause(id uint64, lits []sat.Lit) {}
func (t *IDRUPTracer) AddConstraint(lits []sat.Lit) {
	t.w.w.WriteString("c ")
	t.w.WriteASCIILits(litsToInt32(lits))
}
func (t *IDRUPTracer) ResetAssumptions() { t.pendingAsms = nil }

func (t *IDRUPTracer) ConcludeSAT(model []sat.Lit) {
	t.w.w.WriteString("s SATISFIABLE\n")
	t.w.w.WriteString("m ")
	t.w.WriteASCIILits(litsToInt32(model))
}
func (t *IDRUPTracer) ConcludeUNSAT(core []sat.Lit) {
	t.w.w.WriteString("s UNSATISFIABLE\n")
	t.w.w.WriteString("u ")
	t.w.WriteASCIILits(litsToInt32(core))
}
func (t *IDRUPTracer) ConcludeUnknown() { t.w.w.WriteString("s UNKNOWN\n") }

func (t *IDRUPTracer) Close(underlying io.Writer) error { return t.w.Close(underlying) }
