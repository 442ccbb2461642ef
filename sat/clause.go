package sat

// ClauseRef is an arena index. It is the only way the rest of the engine
// refers to a clause: watches, occurrence lists, and trail reasons all
// store a ClauseRef rather than a pointer, so that garbage_collection can
// rewrite every reference in one pass (see spec §9, "Arena + indices vs.
// pointer graph").
type ClauseRef int32

const (
	// CRefNone means "no reason" (a decision, or a fixed level-zero unit
	// with no stored antecedent).
	CRefNone ClauseRef = -1
	// CRefExternal is the tagged sentinel for "the external propagator
	// will supply this reason on demand" (spec §4.2, §9).
	CRefExternal ClauseRef = -2
)

// Clause is a packed clause object: an inline literal array plus the
// bookkeeping fields spec §3 calls out.
type Clause struct {
	ID         uint64
	Lits       []Lit
	Glue       int32 // LBD
	Redundant  bool
	Garbage    bool
	Hyper      bool // derived via hyper-binary/ternary resolution
	Used       uint8 // small saturating counter, reset each reduction
	Pos        int32 // rotating watch-search cursor for long clauses
	Swept      bool
	Transred   bool
	Flushed    bool
	Restored   bool // re-added from the extension stack
}

func (c *Clause) Size() int { return len(c.Lits) }

func (c *Clause) IsBinary() bool { return len(c.Lits) == 2 }

func (c *Clause) IsUnit() bool { return len(c.Lits) == 1 }

func (c *Clause) bumpUsed() {
	if c.Used < 255 {
		c.Used++
	}
}

// Tier buckets a redundant clause by glue for reduce/flush scheduling
// (spec §4.6). Irredundant clauses have no tier.
func (c *Clause) Tier() int {
	switch {
	case c.Glue <= 2:
		return 0
	case c.Glue <= 6:
		return 1
	default:
		return 2
	}
}
