package sat

// TransitiveReduction removes binary clauses whose edge in the
// implication graph is already implied by a longer path through other
// binary clauses (spec §4.11, "transitive reduction"): if lit -> a -> b
// and lit -> b both hold, the direct edge lit -> b is redundant.
//
// Run as a DFS from each literal over the binary-implication graph,
// bounded by budget edges explored, marking any directly-watched binary
// target reachable via a path of length >= 2 as removable.
func (e *Engine) TransitiveReduction(budget int64) int {
	graph := e.buildImplicationGraph(e.numVars)
	removed := 0
	spent := int64(0)

	for lit, direct := range graph {
		if spent >= budget {
			break
		}
		directSet := make(map[Lit]ClauseRef, len(direct))
		for _, ref := range e.binaryClausesFrom(lit) {
			c := e.arena.Clause(ref)
			other := otherBinaryLit(c, lit)
			directSet[other] = ref
		}
		reachable := make(map[Lit]bool)
		var dfs func(from Lit, depth int)
		dfs = func(from Lit, depth int) {
			if depth > 0 {
				if _, isDirect := directSet[from]; isDirect && depth >= 2 {
					reachable[from] = true
				}
			}
			if depth > 6 {
				return // bound the search depth, this is best-effort
			}
			for _, next := range graph[from] {
				spent++
				dfs(next, depth+1)
			}
		}
		for _, next := range direct {
			dfs(next, 1)
		}
		for target := range reachable {
			if ref, ok := directSet[target]; ok {
				e.MarkGarbage(ref)
				removed++
				e.stats.TransredRemoved++
			}
		}
	}
	return removed
}

func (e *Engine) binaryClausesFrom(lit Lit) []ClauseRef {
	// A clause (not-lit, other) encodes the edge lit -> other and is
	// registered, per WatchClause, under key (not-lit).Negate() == lit.
	var refs []ClauseRef
	for _, w := range e.watches.List(lit) {
		if w.Binary {
			refs = append(refs, w.Ref)
		}
	}
	return refs
}

func otherBinaryLit(c *Clause, lit Lit) Lit {
	if c.Lits[0] == lit.Negate() {
		return c.Lits[1]
	}
	return c.Lits[0]
}
