package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolverSimpleSAT(t *testing.T) {
	s := New()
	s.AddClause(1, 2)
	s.AddClause(-1, 2)
	s.AddClause(-1, -2)

	status := s.Solve()
	require.Equal(t, StatusSatisfiable, status)
	assert.Equal(t, int32(-1), s.Val(1))
	assert.Equal(t, int32(2), s.Val(2))
}

func TestSolverSimpleUNSAT(t *testing.T) {
	s := New()
	s.AddClause(1)
	s.AddClause(-1)

	status := s.Solve()
	assert.Equal(t, StatusUnsatisfiable, status)
}

// TestSolverPigeonhole encodes the classic 3-pigeons-2-holes instance,
// which is unsatisfiable and a standard CDCL stress case for clause
// learning depth.
func TestSolverPigeonhole(t *testing.T) {
	s := New()
	// variable (p-1)*2+h+1 means pigeon p is in hole h, p in {1,2,3}, h in {1,2}
	v := func(p, h int32) int32 { return (p-1)*2 + h }

	for p := int32(1); p <= 3; p++ {
		s.AddClause(v(p, 1), v(p, 2))
	}
	for h := int32(1); h <= 2; h++ {
		for p1 := int32(1); p1 <= 3; p1++ {
			for p2 := p1 + 1; p2 <= 3; p2++ {
				s.AddClause(-v(p1, h), -v(p2, h))
			}
		}
	}

	status := s.Solve()
	assert.Equal(t, StatusUnsatisfiable, status)
}

func TestSolverAssumptionsAndFailedCore(t *testing.T) {
	s := New()
	s.AddClause(1, 2)
	s.AddClause(-1, -2)

	s.Assume(-1)
	s.Assume(-2)
	status := s.Solve()
	assert.Equal(t, StatusUnsatisfiable, status)
	assert.True(t, s.Failed(-1) || s.Failed(-2))
}

func TestSolverIncrementalReuse(t *testing.T) {
	s := New()
	s.AddClause(1, 2)
	status := s.Solve()
	require.Equal(t, StatusSatisfiable, status)

	s.AddClause(-1)
	s.AddClause(-2)
	status = s.Solve()
	assert.Equal(t, StatusUnsatisfiable, status)
}

func TestSolverFreezeMelt(t *testing.T) {
	s := New()
	s.Freeze(1)
	s.AddClause(1, 2)
	s.AddClause(-1, 2)
	status := s.Solve()
	require.Equal(t, StatusSatisfiable, status)
	s.Melt(1)
}
