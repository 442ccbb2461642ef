package proof

import (
	"io"

	"github.com/xDarkicex/cadical-go/sat"
)

// VeriPBTracer emits a VeriPB pseudo-Boolean proof (spec §4.10): clauses
// are written as pseudo-Boolean constraints (each literal with coefficient
// 1, right-hand side 1, '>=') and derivations use 'rup' (reverse unit
// propagation) steps, the pseudo-Boolean analogue of a DRAT addition.
// VeriPB is included to cover the one dialect that is not clause-native,
// exercising a different literal encoding path than the other four.
type VeriPBTracer struct {
	w      *writer
	nextID uint64
}

func NewVeriPBTracer(w io.Writer) *VeriPBTracer {
	t := &VeriPBTracer{w: newWriter(w, FramingASCII), nextID: 1}
	t.w.w.WriteString("pseudo-Boolean proof version 2.0\n")
	return t
}

func (t *VeriPBTracer) constraint(lits []sat.Lit) string {
	s := ""
	for _, l := range lits {
		if l < 0 {
			s += "1 ~x" + uitoa(uint64(-l)) + " "
		} else {
			s += "1 x" + uitoa(uint64(l)) + " "
		}
	}
	return s + ">= 1 ;"
}

func (t *VeriPBTracer) AddOriginalClause(id uint64, redundant bool, lits []sat.Lit, restored bool) {
	// Original constraints are loaded from the OPB input, not the proof.
}

func (t *VeriPBTracer) AddDerivedClause(id uint64, redundant bool, lits []sat.Lit, antecedents []uint64) {
	t.w.w.WriteString("rup " + t.constraint(lits) + "\n")
	t.nextID++
}

func (t *VeriPBTracer) DeleteClause(id uint64, redundant bool, lits []sat.Lit) {
	t.w.w.WriteString("del id " + uitoa(id) + "\n")
}
func (t *VeriPBTracer) WeakenMinus(id uint64, lits []sat.Lit) {}
func (t *VeriPBTracer) Strengthen(id uint64)                  {}
func (t *VeriPBTracer) FinalizeClause(id uint64, lits []sat.Lit) {}
func (t *VeriPBTracer) ReportStatus(status int)                  {}
func (t *VeriPBTracer) BeginProof(firstID uint64)                {}
func (t *VeriPBTracer) SolveQuery()                              {}
func (t *VeriPBTracer) AddAssumption(lit sat.Lit)                {}
func (t *VeriPBTracer) AddAssumptionClause(id uint64, lits []sat.Lit) {}
func (t *VeriPBTracer) AddConstraint(lits []sat.Lit) {}
func (t *VeriPBTracer) ResetAssumptions()            {}
func (t *VeriPBTracer) ConcludeSAT(model []sat.Lit)  {}
func (t *VeriPBTracer) ConcludeUNSAT(core []sat.Lit) {
	t.w.w.WriteString("conclusion UNSAT\nend pseudo-Boolean proof\n")
}
func (t *VeriPBTracer) ConcludeUnknown() {}

func (t *VeriPBTracer) Close(underlying io.Writer) error { return t.w.Close(underlying) }
