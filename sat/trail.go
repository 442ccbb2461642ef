package sat

// ControlFrame is one frame of the control stack: the decision literal for
// this level (LitUndef for a pseudo-decision) and the trail offset at
// which the level began (spec §3, "Control stack").
type ControlFrame struct {
	Decision    Lit
	TrailOffset int32
}

// Trail is the assignment trail plus the control stack. Variable records
// live here rather than in a separate array so that assignment, level,
// trail position, and reason are all one allocation away from a literal.
type Trail struct {
	lits    []Lit // may contain LitUndef entries as pseudo-decision markers
	control []ControlFrame
	vars    []VarData // 1-indexed; vars[0] unused
	numVars int32

	qhead int // next trail position to propagate
}

func NewTrail(numVars int32) *Trail {
	t := &Trail{
		lits:    make([]Lit, 0, numVars),
		control: []ControlFrame{{Decision: LitUndef, TrailOffset: 0}},
		vars:    make([]VarData, numVars+1),
		numVars: numVars,
	}
	for i := range t.vars {
		t.vars[i] = newVarData()
	}
	return t
}

func (t *Trail) Grow(numVars int32) {
	for t.numVars < numVars {
		t.numVars++
		t.vars = append(t.vars, newVarData())
	}
}

func (t *Trail) Level() int32 { return int32(len(t.control) - 1) }

func (t *Trail) Var(v int32) *VarData { return &t.vars[v] }

func (t *Trail) VarOf(l Lit) *VarData { return &t.vars[l.Var()] }

// Value returns -1/0/+1 for l under the current assignment (sign-adjusted).
func (t *Trail) Value(l Lit) int8 {
	vd := t.VarOf(l)
	if vd.Value == 0 {
		return 0
	}
	if l.Sign() {
		return -vd.Value
	}
	return vd.Value
}

func (t *Trail) Satisfied(l Lit) bool   { return t.Value(l) > 0 }
func (t *Trail) Falsified(l Lit) bool   { return t.Value(l) < 0 }
func (t *Trail) IsAssigned(l Lit) bool  { return t.VarOf(l).Assigned() }

// NewDecisionLevel opens a control frame. decision is LitUndef for a
// pseudo-decision frame (spec §3).
func (t *Trail) NewDecisionLevel(decision Lit) {
	t.control = append(t.control, ControlFrame{Decision: decision, TrailOffset: int32(len(t.lits))})
}

// Assign records l as true at the current level with the given reason and
// appends it to the trail.
func (t *Trail) Assign(l Lit, reason ClauseRef) {
	vd := t.VarOf(l)
	if l.Sign() {
		vd.Value = -1
	} else {
		vd.Value = 1
	}
	vd.Level = t.Level()
	vd.Reason = reason
	vd.TrailPos = int32(len(t.lits))
	t.lits = append(t.lits, l)
}

// Fix assigns l permanently at level zero (spec invariant 3: once fixed,
// never unassigned).
func (t *Trail) Fix(l Lit) {
	save := t.Level()
	_ = save
	vd := t.VarOf(l)
	if l.Sign() {
		vd.Value = -1
	} else {
		vd.Value = 1
	}
	vd.Level = 0
	vd.Reason = CRefNone
	vd.TrailPos = int32(len(t.lits))
	vd.Status = StatusFixed
	t.lits = append(t.lits, l)
}

// Backtrack undoes every assignment made above level and returns the
// control stack to it, rewinding qhead so propagation resumes cleanly.
func (t *Trail) Backtrack(level int32) {
	if level >= t.Level() {
		return
	}
	cutoff := t.control[level+1].TrailOffset
	for i := int(cutoff); i < len(t.lits); i++ {
		l := t.lits[i]
		if l == LitUndef {
			continue
		}
		vd := t.VarOf(l)
		if vd.Status == StatusFixed {
			continue // invariant 3: fixed literals never unassign
		}
		vd.Value = 0
		vd.Reason = CRefNone
	}
	t.lits = t.lits[:cutoff]
	t.control = t.control[:level+1]
	if t.qhead > len(t.lits) {
		t.qhead = len(t.lits)
	}
}

// NextToPropagate returns the next unpropagated trail literal, if any.
func (t *Trail) NextToPropagate() (Lit, bool) {
	if t.qhead >= len(t.lits) {
		return LitUndef, false
	}
	l := t.lits[t.qhead]
	t.qhead++
	return l, true
}

func (t *Trail) ResetPropagationQueue() { t.qhead = 0 }

func (t *Trail) Size() int { return len(t.lits) }

// checkControlAlignment validates invariant 6: control offsets are non-decreasing and
// |control| == level+1.
func (t *Trail) checkControlAlignment() bool {
	for i := 1; i < len(t.control); i++ {
		if t.control[i-1].TrailOffset > t.control[i].TrailOffset {
			return false
		}
	}
	return int32(len(t.control)) == t.Level()+1
}
