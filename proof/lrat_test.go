package proof

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xDarkicex/cadical-go/sat"
)

func TestLRATOriginalClauseHasNoAntecedents(t *testing.T) {
	var buf bytes.Buffer
	tr := NewLRATTracer(&buf)
	tr.AddOriginalClause(1, false, []sat.Lit{1, 2}, false)
	require.NoError(t, tr.Close(&buf))
	assert.Equal(t, "1 1 2 0 0\n", buf.String())
}

func TestLRATDerivedClauseListsAntecedentIDs(t *testing.T) {
	var buf bytes.Buffer
	tr := NewLRATTracer(&buf)
	tr.AddDerivedClause(3, true, []sat.Lit{-1}, []uint64{1, 2})
	require.NoError(t, tr.Close(&buf))
	assert.Equal(t, "3 -1 0 1 2 0\n", buf.String())
}

func TestLRATDeletionsAreBatchedOnOneLine(t *testing.T) {
	var buf bytes.Buffer
	tr := NewLRATTracer(&buf)
	tr.DeleteClause(1, true, nil)
	tr.DeleteClause(2, true, nil)
	tr.AddDerivedClause(3, true, []sat.Lit{1}, nil)
	require.NoError(t, tr.Close(&buf))
	assert.Equal(t, "d 1 2 0\n3 1 0 0\n", buf.String())
}
