package sat

// Vivify strengthens irredundant clauses by trial propagation (spec
// §4.11, "vivification"): assume the negation of each literal in turn
// under a fresh decision level; if propagation falsifies a later literal
// of the same clause before all negations are assumed, the clause can be
// shrunk to the literals actually needed, since the rest were implied
// rather than essential.
func (e *Engine) Vivify(budget int64) int {
	shrunk := 0
	spent := int64(0)
	candidates := append([]ClauseRef{}, e.original...)
	for _, ref := range candidates {
		if spent >= budget {
			break
		}
		c := e.arena.Clause(ref)
		if c == nil || c.Garbage || c.Size() < 3 {
			continue
		}
		spent += int64(c.Size())
		if newLits, ok := e.vivifyClause(c); ok {
			e.replaceClause(ref, c, newLits)
			shrunk++
			e.stats.Vivified++
		}
	}
	return shrunk
}

// vivifyClause assumes the negation of each literal in c in turn; if a
// conflict or an implied satisfaction of c appears before exhausting the
// literals, the literals assumed so far (negated back), plus the implied
// literal in the second case, form a sufficient sub-clause. Literals
// already implied false are skipped.
func (e *Engine) vivifyClause(c *Clause) ([]Lit, bool) {
	base := e.DecisionLevel()
	var assumed []Lit
	shrink := false

	for _, l := range c.Lits {
		neg := l.Negate()
		if e.trail.Satisfied(neg) {
			continue // l already implied false: it can be dropped
		}
		if e.trail.Falsified(neg) {
			assumed = append(assumed, l) // l already implied true
			shrink = true
			break
		}
		e.trail.NewDecisionLevel(neg)
		e.trail.Assign(neg, CRefNone)
		assumed = append(assumed, l)
		conflict := e.Propagate()
		if conflict != CRefNone {
			shrink = true
			break
		}
	}

	e.backjump(base)
	if !shrink || len(assumed) >= c.Size() {
		return nil, false
	}
	return assumed, true
}

// replaceClause installs newLits in place of c's literals, reporting the
// strengthening to the proof tracer and re-adding watches.
func (e *Engine) replaceClause(ref ClauseRef, c *Clause, newLits []Lit) {
	e.watches.UnwatchClause(ref, c)
	e.tracer.WeakenMinus(c.ID, c.Lits)
	c.Lits = newLits
	e.tracer.Strengthen(c.ID)
	e.stats.Strengthened++
	if len(newLits) == 1 {
		e.trail.Fix(newLits[0])
		e.MarkGarbage(ref)
		return
	}
	e.arena.ShrinkClause(ref, newLits)
	e.watches.WatchClause(ref, c)
}
