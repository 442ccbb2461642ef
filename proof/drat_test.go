package proof

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xDarkicex/cadical-go/sat"
)

func TestDRATAsciiAdditionAndDeletion(t *testing.T) {
	var buf bytes.Buffer
	tr := NewDRATTracer(&buf, false)
	tr.AddDerivedClause(1, true, []sat.Lit{1, -2}, nil)
	tr.DeleteClause(1, true, []sat.Lit{1, -2})
	require.NoError(t, tr.Close(&buf))

	assert.Equal(t, "1 -2 0\nd 1 -2 0\n", buf.String())
}

func TestDRATBinaryFraming(t *testing.T) {
	var buf bytes.Buffer
	tr := NewDRATTracer(&buf, true)
	tr.AddDerivedClause(1, true, []sat.Lit{1, -2}, nil)
	require.NoError(t, tr.Close(&buf))

	out := buf.Bytes()
	require.NotEmpty(t, out)
	assert.Equal(t, byte('a'), out[0])
}

func TestDRATConcludeUNSATEmitsEmptyClause(t *testing.T) {
	var buf bytes.Buffer
	tr := NewDRATTracer(&buf, false)
	tr.ConcludeUNSAT(nil)
	require.NoError(t, tr.Close(&buf))
	assert.Equal(t, "0\n", buf.String())
}
