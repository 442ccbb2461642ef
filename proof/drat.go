package proof

import (
	"io"

	"github.com/xDarkicex/cadical-go/sat"
)

// DRATTracer emits a DRAT proof (spec §4.10), one clause per line: additions
// untagged, weakenings/deletions prefixed "d ". In binary mode each record
// is instead an 'a' or 'd' tag byte followed by varint-framed literals.
// DRAT carries no antecedents and no clause IDs, so
// AddDerivedClause/FinalizeClause/WeakenMinus's extra arguments are ignored.
type DRATTracer struct {
	w   *writer
	bin bool
}

// NewDRATTracer opens a DRAT tracer writing to w, in binary or ASCII framing.
func NewDRATTracer(w io.Writer, binary bool) *DRATTracer {
	framing := FramingASCII
	if binary {
		framing = FramingBinary
	}
	return &DRATTracer{w: newWriter(w, framing), bin: binary}
}

func (t *DRATTracer) litsToInt32(lits []sat.Lit) []int32 {
	out := make([]int32, len(lits))
	for i, l := range lits {
		out[i] = int32(l)
	}
	return out
}

func (t *DRATTracer) emit(tag byte, lits []sat.Lit) {
	if t.bin {
		t.w.WriteByte(tag)
		for _, l := range lits {
			t.w.WriteVarint(int64(l))
		}
		t.w.WriteVarint(0)
		return
	}
	if tag == 'd' {
		t.w.w.WriteString("d ")
	}
	t.w.WriteASCIILits(t.litsToInt32(lits))
}

func (t *DRATTracer) AddOriginalClause(id uint64, redundant bool, lits []sat.Lit, restored bool) {
	// DRAT does not record original clauses; they are implicit from the
	// input formula.
}
func (t *DRATTracer) AddDerivedClause(id uint64, redundant bool, lits []sat.Lit, antecedents []uint64) {
	t.emit('a', lits)
}
func (t *DRATTracer) DeleteClause(id uint64, redundant bool, lits []sat.Lit) { t.emit('d', lits) }
func (t *DRATTracer) WeakenMinus(id uint64, lits []sat.Lit)                  { t.emit('d', lits) }
func (t *DRATTracer) Strengthen(id uint64)                                   {}
func (t *DRATTracer) FinalizeClause(id uint64, lits []sat.Lit)               {}
func (t *DRATTracer) ReportStatus(status int)                                {}
func (t *DRATTracer) BeginProof(firstID uint64)                              {}
func (t *DRATTracer) SolveQuery()                                            {}
func (t *DRATTracer) AddAssumption(lit sat.Lit)                              {}
func (t *DRATTracer) AddAssumptionClause(id uint64, lits []sat.Lit)          {}
func (t *DRATTracer) AddConstraint(lits []sat.Lit)                          {}
func (t *DRATTracer) ResetAssumptions()                                      {}
func (t *DRATTracer) ConcludeSAT(model []sat.Lit)                            {}
func (t *DRATTracer) ConcludeUNSAT(core []sat.Lit)                           { t.emit('a', nil) }
func (t *DRATTracer) ConcludeUnknown()                                       {}

// Close flushes the underlying writer.
func (t *DRATTracer) Close(underlying io.Writer) error { return t.w.Close(underlying) }
