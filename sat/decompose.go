package sat

// Decompose finds strongly connected components in the binary-implication
// graph and substitutes each non-trivial component to a single
// representative literal (spec §4.11, "equivalent-literal substitution"),
// using Tarjan's algorithm the way CaDiCaL's decompose.cpp does.
//
// The implication graph has an edge lit -> other for every binary clause
// (lit_neg other): assigning lit true forces other. A cycle lit -> ... ->
// lit means every literal on it is equivalent; the literal with the
// smallest variable index survives as representative and every other
// literal is replaced by it throughout the clause database.
func (e *Engine) Decompose() int {
	n := e.numVars
	graph := e.buildImplicationGraph(n)

	index := make(map[Lit]int)
	lowlink := make(map[Lit]int)
	onStack := make(map[Lit]bool)
	var stack []Lit
	counter := 0
	substituted := 0

	var strongconnect func(v Lit)
	strongconnect = func(v Lit) {
		index[v] = counter
		lowlink[v] = counter
		counter++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range graph[v] {
			if _, seen := index[w]; !seen {
				strongconnect(w)
				if lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			} else if onStack[w] {
				if index[w] < lowlink[v] {
					lowlink[v] = index[w]
				}
			}
		}

		if lowlink[v] == index[v] {
			var component []Lit
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				component = append(component, w)
				if w == v {
					break
				}
			}
			if len(component) > 1 {
				substituted += e.substituteComponent(component)
			}
		}
	}

	for va := int32(1); va <= n; va++ {
		for _, l := range [2]Lit{NewLit(va, false), NewLit(va, true)} {
			if _, seen := index[l]; !seen && e.trail.Var(l.Var()).Status == StatusActive {
				strongconnect(l)
			}
		}
	}
	return substituted
}

// buildImplicationGraph returns, for every literal, the set of literals
// implied directly by a binary clause containing its negation.
func (e *Engine) buildImplicationGraph(n int32) map[Lit][]Lit {
	graph := make(map[Lit][]Lit)
	e.arena.All(func(ref ClauseRef, c *Clause) {
		if !c.IsBinary() || c.Redundant {
			return
		}
		a, b := c.Lits[0], c.Lits[1]
		graph[a.Negate()] = append(graph[a.Negate()], b)
		graph[b.Negate()] = append(graph[b.Negate()], a)
	})
	return graph
}

// substituteComponent picks the literal with the smallest variable index in
// an equivalence class as representative and rewrites every clause
// mentioning another member. The mirrored component (the members'
// negations) picks the mirrored representative, and its members, already
// substituted, are not counted again. A component that also contains a
// literal's negation means the formula forces both a literal and its
// complement true, i.e. UNSAT.
func (e *Engine) substituteComponent(component []Lit) int {
	rep := component[0]
	for _, l := range component[1:] {
		if l.Var() < rep.Var() {
			rep = l
		}
	}
	members := make(map[Lit]bool, len(component))
	for _, l := range component {
		members[l] = true
		if members[l.Negate()] {
			e.unsatAtZero = true
			return 0
		}
	}

	count := 0
	for _, l := range component {
		if l == rep || e.trail.Var(l.Var()).Status == StatusSubstituted {
			continue
		}
		e.trail.Var(l.Var()).Status = StatusSubstituted
		count++
	}
	e.rewriteLiteral(component, rep)
	return count
}

// rewriteLiteral replaces every occurrence of a substituted member of
// component (or its negation) across the live clause set with rep (or
// rep's negation), dropping clauses that become tautological or
// duplicate-satisfied.
func (e *Engine) rewriteLiteral(component []Lit, rep Lit) {
	subst := make(map[Lit]Lit, len(component)*2)
	for _, l := range component {
		subst[l] = rep
		subst[l.Negate()] = rep.Negate()
	}

	rewriteRefs := func(refs []ClauseRef) {
		for _, ref := range refs {
			c := e.arena.Clause(ref)
			if c == nil || c.Garbage {
				continue
			}
			changed := false
			newLits := make([]Lit, 0, len(c.Lits))
			for _, l := range c.Lits {
				if r, ok := subst[l]; ok {
					l = r
					changed = true
				}
				newLits = append(newLits, l)
			}
			if !changed {
				continue
			}
			if isTautology(newLits) {
				e.MarkGarbage(ref)
				continue
			}
			e.watches.UnwatchClause(ref, c)
			c.Lits = dedupSortedCopy(newLits)
			if len(c.Lits) < 2 {
				continue
			}
			e.watches.WatchClause(ref, c)
		}
	}
	rewriteRefs(e.original)
	rewriteRefs(e.learned)
}
