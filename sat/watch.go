package sat

// Watch is one entry in a literal's watch list: the clause it watches,
// plus a blocking literal cached to short-circuit propagation without
// touching the clause itself (spec §3, "Watch entry").
type Watch struct {
	Blocker Lit
	Ref     ClauseRef
	Binary  bool
}

// Watches holds, for every literal, the clauses watching it. Binary
// clauses are mixed into the same list but marked Binary so the
// propagator can take the cheap path for them (spec §4.2).
type Watches struct {
	lists map[Lit][]Watch
}

func NewWatches() *Watches {
	return &Watches{lists: make(map[Lit][]Watch)}
}

func (w *Watches) Add(l Lit, wa Watch) {
	w.lists[l] = append(w.lists[l], wa)
}

func (w *Watches) List(l Lit) []Watch { return w.lists[l] }

func (w *Watches) SetList(l Lit, list []Watch) {
	if len(list) == 0 {
		delete(w.lists, l)
		return
	}
	w.lists[l] = list
}

// Remove drops the first watch on l referencing ref. Used when a clause
// becomes garbage or a long clause's watch is relocated.
func (w *Watches) Remove(l Lit, ref ClauseRef) {
	list := w.lists[l]
	for i, wa := range list {
		if wa.Ref == ref {
			list[i] = list[len(list)-1]
			w.lists[l] = list[:len(list)-1]
			return
		}
	}
}

// WatchClause installs watches for a newly created clause. Binary clauses
// watch both literals directly on each other (the fast path); longer
// clauses watch their first two literals with each other as the blocker.
func (w *Watches) WatchClause(ref ClauseRef, c *Clause) {
	if len(c.Lits) < 2 {
		return
	}
	l0, l1 := c.Lits[0], c.Lits[1]
	binary := c.IsBinary()
	w.Add(l0.Negate(), Watch{Blocker: l1, Ref: ref, Binary: binary})
	w.Add(l1.Negate(), Watch{Blocker: l0, Ref: ref, Binary: binary})
}

func (w *Watches) UnwatchClause(ref ClauseRef, c *Clause) {
	if len(c.Lits) < 2 {
		return
	}
	w.Remove(c.Lits[0].Negate(), ref)
	w.Remove(c.Lits[1].Negate(), ref)
}
