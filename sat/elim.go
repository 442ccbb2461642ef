package sat

// Eliminate runs bounded variable elimination (spec §4.11): for each
// candidate variable whose positive/negative occurrence lists are small
// enough, resolve every pair of clauses across the two lists; if the
// resolvent count does not exceed the original occurrence count (the
// classic BVE growth bound), replace the occurrence
// clauses with the resolvents and push an extension-stack witness so the
// eliminated variable's value can be reconstructed later.
func (e *Engine) Eliminate(budget int64) int {
	eliminated := 0
	spent := int64(0)
	for v := int32(1); v <= e.numVars && spent < budget; v++ {
		vd := e.trail.Var(v)
		if vd.Status != StatusActive || vd.Assigned() || e.externalMap.IsFrozen(v) {
			continue
		}
		pos, neg := e.occurrences(v)
		spent += int64(len(pos) + len(neg))
		if len(pos) == 0 || len(neg) == 0 {
			continue // pure literal: handled by sweep/decide defaults
		}
		if gate := e.recognizeGate(v, pos, neg); gate != nil {
			if e.eliminateGate(v, gate) {
				eliminated++
				e.stats.VariablesEliminated++
			}
			continue
		}
		if e.eliminateByResolution(v, pos, neg) {
			eliminated++
			e.stats.VariablesEliminated++
		}
	}
	return eliminated
}

// occurrences returns the clause refs in which v occurs positively and
// negatively, skipping garbage clauses.
func (e *Engine) occurrences(v int32) (pos, neg []ClauseRef) {
	e.arena.All(func(ref ClauseRef, c *Clause) {
		for _, l := range c.Lits {
			if l.Var() != v {
				continue
			}
			if l.Sign() {
				neg = append(neg, ref)
			} else {
				pos = append(pos, ref)
			}
			break
		}
	})
	return
}

// gate describes a recognized definitional gate for v (spec §4.11's
// "gate recognition"): v <-> f(inputs), which lets elimination substitute
// the gate's defining clauses directly instead of resolving the full
// occurrence lists pairwise.
type gate struct {
	kind   string // "and" or "or"
	inputs []Lit
}

// recognizeGate looks for the clause-pattern signature of an AND/OR gate:
// v's negative occurrences are exactly {(-v, a), (-v, b), ...} and one
// positive occurrence is the closing clause (v, -a, -b, ...), or the
// symmetric OR pattern. XOR and ITE gates are not recognized.
func (e *Engine) recognizeGate(v int32, pos, neg []ClauseRef) *gate {
	if len(neg) >= 1 && len(pos) == 1 {
		closing := e.arena.Clause(pos[0])
		var inputs []Lit
		ok := true
		for _, ref := range neg {
			c := e.arena.Clause(ref)
			if c.Size() != 2 {
				ok = false
				break
			}
			other := otherLit(c, NewLit(v, true))
			inputs = append(inputs, other)
		}
		if ok && closesGate(closing, NewLit(v, false), inputs) {
			return &gate{kind: "and", inputs: inputs}
		}
	}
	if len(pos) >= 1 && len(neg) == 1 {
		closing := e.arena.Clause(neg[0])
		var inputs []Lit
		ok := true
		for _, ref := range pos {
			c := e.arena.Clause(ref)
			if c.Size() != 2 {
				ok = false
				break
			}
			other := otherLit(c, NewLit(v, false))
			inputs = append(inputs, other)
		}
		if ok && closesGate(closing, NewLit(v, true), inputs) {
			return &gate{kind: "or", inputs: inputs}
		}
	}
	return nil
}

func otherLit(c *Clause, skip Lit) Lit {
	for _, l := range c.Lits {
		if l != skip {
			return l
		}
	}
	return LitUndef
}

// closesGate reports whether c is exactly the gate's closing clause:
// pivot together with the negation of every input.
func closesGate(c *Clause, pivot Lit, inputs []Lit) bool {
	if c.Size() != len(inputs)+1 {
		return false
	}
	want := map[Lit]bool{pivot: true}
	for _, in := range inputs {
		want[in.Negate()] = true
	}
	for _, l := range c.Lits {
		if !want[l] {
			return false
		}
	}
	return true
}

// eliminateGate removes v using its recognized gate definition: the
// witness for model extension is just the gate's closing clause, since
// that alone determines v's value from its inputs.
func (e *Engine) eliminateGate(v int32, g *gate) bool {
	pos, neg := e.occurrences(v)
	var witness []Lit
	switch g.kind {
	case "and":
		witness = append([]Lit{NewLit(v, false)}, negateAll(g.inputs)...)
	case "or":
		witness = append([]Lit{NewLit(v, true)}, negateAll(g.inputs)...)
	}
	e.extension.Push(witness[0], witness)
	e.dropOccurrences(append(pos, neg...))
	e.trail.Var(v).Status = StatusEliminated
	return true
}

func negateAll(lits []Lit) []Lit {
	out := make([]Lit, len(lits))
	for i, l := range lits {
		out[i] = l.Negate()
	}
	return out
}

// eliminateByResolution is the general BVE case: resolve every clause
// containing +v against every clause containing -v, keep only
// non-tautological resolvents, and accept the elimination only if that
// does not grow the clause count.
func (e *Engine) eliminateByResolution(v int32, pos, neg []ClauseRef) bool {
	var resolvents [][]Lit
	for _, pr := range pos {
		pc := e.arena.Clause(pr)
		for _, nr := range neg {
			nc := e.arena.Clause(nr)
			res, ok := resolve(pc, nc, v)
			if !ok {
				continue // tautological resolvent, dropped
			}
			resolvents = append(resolvents, res)
		}
	}
	if len(resolvents) > len(pos)+len(neg) {
		return false // growth bound exceeded, keep v
	}

	// witness: the disjunction of all positive occurrences with v itself,
	// i.e. v is true unless every positive clause is already satisfied by
	// its other literals, standard BVE extension per spec §4.9.
	for _, pr := range pos {
		pc := e.arena.Clause(pr)
		e.extension.Push(NewLit(v, false), pc.Lits)
	}

	e.dropOccurrences(append(append([]ClauseRef{}, pos...), neg...))
	for _, lits := range resolvents {
		e.AddOriginalClause(lits, false)
	}
	e.trail.Var(v).Status = StatusEliminated
	return true
}

// resolve produces the resolvent of a and b on variable v, or ok=false if
// it is a tautology (some other variable appears with both polarities).
func resolve(a, b *Clause, v int32) ([]Lit, bool) {
	out := make([]Lit, 0, a.Size()+b.Size()-2)
	seen := make(map[Lit]bool)
	for _, l := range a.Lits {
		if l.Var() == v {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	for _, l := range b.Lits {
		if l.Var() == v {
			continue
		}
		if seen[l.Negate()] {
			return nil, false
		}
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out, true
}

func (e *Engine) dropOccurrences(refs []ClauseRef) {
	for _, ref := range refs {
		e.MarkGarbage(ref)
	}
}
