package proof

import (
	"io"

	"github.com/xDarkicex/cadical-go/sat"
)

// FRATTracer emits a FRAT proof (spec §4.10): every clause carries an
// explicit ID, and derivations may carry their antecedent chain ('a <id>
// <lits> l <antecedent-ids> 0'), closing the audit gap plain DRAT leaves
// (no way to tell which original clauses a derived one came from).
type FRATTracer struct {
	w *writer
}

func NewFRATTracer(w io.Writer) *FRATTracer {
	return &FRATTracer{w: newWriter(w, FramingASCII)}
}

func (t *FRATTracer) writeRecord(tag byte, id uint64, lits []sat.Lit, antecedents []uint64) {
	t.w.w.WriteByte(tag)
	t.w.w.WriteByte(' ')
	t.w.w.WriteString(uitoa(id))
	t.w.w.WriteByte(' ')
	for _, l := range lits {
		t.w.w.WriteString(itoa(int32(l)))
		t.w.w.WriteByte(' ')
	}
	t.w.w.WriteString("0")
	if len(antecedents) > 0 {
		t.w.w.WriteString(" l ")
		for _, a := range antecedents {
			t.w.w.WriteString(uitoa(a))
			t.w.w.WriteByte(' ')
		}
		t.w.w.WriteString("0")
	}
	t.w.w.WriteString("\n")
}

func uitoa(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

func (t *FRATTracer) AddOriginalClause(id uint64, redundant bool, lits []sat.Lit, restored bool) {
	tag := byte('o')
	if restored {
		tag = 'r'
	}
	t.writeRecord(tag, id, lits, nil)
}
func (t *FRATTracer) AddDerivedClause(id uint64, redundant bool, lits []sat.Lit, antecedents []uint64) {
	t.writeRecord('a', id, lits, antecedents)
}
func (t *FRATTracer) DeleteClause(id uint64, redundant bool, lits []sat.Lit) {
	t.writeRecord('d', id, lits, nil)
}
func (t *FRATTracer) WeakenMinus(id uint64, lits []sat.Lit) { t.writeRecord('w', id, lits, nil) }
func (t *FRATTracer) Strengthen(id uint64) {
	t.w.w.WriteString("s " + uitoa(id) + " 0\n")
}
func (t *FRATTracer) FinalizeClause(id uint64, lits []sat.Lit) { t.writeRecord('f', id, lits, nil) }
func (t *FRATTracer) ReportStatus(status int)                  {}
func (t *FRATTracer) BeginProof(firstID uint64)                {}
func (t *FRATTracer) SolveQuery()                              {}
func (t *FRATTracer) AddAssumption(lit sat.Lit)                {}
func (t *FRATTracer) AddAssumptionClause(id uint64, lits []sat.Lit) { t.writeRecord('q', id, lits, nil) }
func (t *FRATTracer) AddConstraint(lits []sat.Lit)             {}
func (t *FRATTracer) ResetAssumptions()                        {}
func (t *FRATTracer) ConcludeSAT(model []sat.Lit)               {}
func (t *FRATTracer) ConcludeUNSAT(core []sat.Lit)              {}
func (t *FRATTracer) ConcludeUnknown()                          {}

func (t *FRATTracer) Close(underlying io.Writer) error { return t.w.Close(underlying) }
