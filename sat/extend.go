package sat

// ExtensionRecord is one entry pushed onto the extension stack when a
// variable is eliminated or a clause is otherwise removed while leaving a
// witness for model reconstruction (spec §4.9). clause is the witness
// clause (the blocked/defining clause for pivot); pivot must end up true
// whenever every other literal in clause is false.
type ExtensionRecord struct {
	Pivot  Lit
	Clause []Lit
}

// ExtensionStack replays elimination witnesses, in reverse push order, to
// turn an assignment over the surviving (non-eliminated) variables into a
// full model (spec §4.9.1, grounded on CaDiCaL's extend.cpp reverse walk).
type ExtensionStack struct {
	records []ExtensionRecord
}

func NewExtensionStack() *ExtensionStack { return &ExtensionStack{} }

// Push records a witness for pivot: clause, with pivot as its first
// literal by convention, must be satisfied by setting pivot true whenever
// every other literal in it is currently false.
func (s *ExtensionStack) Push(pivot Lit, clause []Lit) {
	cp := make([]Lit, len(clause))
	copy(cp, clause)
	s.records = append(s.records, ExtensionRecord{Pivot: pivot, Clause: cp})
}

// Extend walks the stack from most-recently-pushed to oldest, assigning
// each pivot true unless some other literal in its witness clause is
// already true (in which case the pivot's value is free and defaults to
// false), so that every witness clause ends up satisfied.
func (s *ExtensionStack) Extend(value func(Lit) int8, assign func(Lit, bool)) {
	for i := len(s.records) - 1; i >= 0; i-- {
		rec := s.records[i]
		satisfied := false
		for _, l := range rec.Clause {
			if l == rec.Pivot {
				continue
			}
			if value(l) > 0 {
				satisfied = true
				break
			}
		}
		if satisfied {
			if value(rec.Pivot) == 0 {
				assign(rec.Pivot, false)
			}
			continue
		}
		assign(rec.Pivot, true)
	}
}

// Model reconstructs the full external model: internal decision values
// for surviving variables, extended by replaying the witness stack for
// eliminated/substituted ones (spec §4.9).
func (e *Engine) Model() []Lit {
	value := make([]int8, e.numVars+1)
	for v := int32(1); v <= e.numVars; v++ {
		vd := e.trail.Var(v)
		if vd.Assigned() {
			value[v] = vd.Value
		}
	}
	e.extension.Extend(
		func(l Lit) int8 {
			v := l.Var()
			if value[v] == 0 {
				return 0
			}
			if l.Sign() {
				return -value[v]
			}
			return value[v]
		},
		func(l Lit, makeTrue bool) {
			// l itself must end up true (makeTrue) or false; translate
			// that into the underlying variable's value.
			v := l.Var()
			wantTrue := makeTrue != l.Sign()
			if wantTrue {
				value[v] = 1
			} else {
				value[v] = -1
			}
		},
	)

	model := make([]Lit, 0, e.numVars)
	for v := int32(1); v <= e.numVars; v++ {
		if value[v] >= 0 {
			model = append(model, NewLit(v, false))
		} else {
			model = append(model, NewLit(v, true))
		}
	}
	return model
}
