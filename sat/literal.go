package sat

import (
	"fmt"
	"math"
)

// Lit is a DIMACS-style signed literal: the sign carries polarity and the
// absolute value is the variable index (1-based). Two sentinel values are
// rejected everywhere a Lit is constructed from user input: zero (used
// internally only as a clause terminator / pseudo-decision marker on the
// trail) and math.MinInt32 (its negation would overflow).
type Lit int32

// LitUndef is the invalid literal, returned by lookups that found nothing.
const LitUndef Lit = 0

// NewLit builds a literal for the given 1-based variable index and sign.
// negated selects the negative literal.
func NewLit(v int32, negated bool) Lit {
	if negated {
		return Lit(-v)
	}
	return Lit(v)
}

// Var returns the 1-based variable index this literal refers to.
func (l Lit) Var() int32 {
	if l < 0 {
		return int32(-l)
	}
	return int32(l)
}

// Negate returns the complementary literal.
func (l Lit) Negate() Lit { return -l }

// Sign reports whether l is a negative literal.
func (l Lit) Sign() bool { return l < 0 }

// Valid reports whether l is neither the zero sentinel nor the unnegatable
// minimum value (spec §3, "Literal").
func (l Lit) Valid() bool {
	return l != 0 && l != math.MinInt32
}

func (l Lit) String() string {
	return fmt.Sprintf("%d", int32(l))
}

// litIndex maps a literal to a dense non-negative array index, used to key
// watch-list and occurrence-list arrays sized by (2*maxVar)+2.
func litIndex(l Lit) int {
	v := int(l.Var())
	if l.Sign() {
		return 2*v + 1
	}
	return 2 * v
}
