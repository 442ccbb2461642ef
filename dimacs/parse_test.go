package dimacs

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasicCNF(t *testing.T) {
	src := "c a comment\np cnf 3 2\n1 -2 0\n2 3 0\n"
	p, err := Parse(strings.NewReader(src), "test.cnf", ModeRelaxed)
	require.NoError(t, err)

	want := &Problem{
		NumVars:    3,
		NumClauses: 2,
		Clauses:    [][]int32{{1, -2}, {2, 3}},
		Options:    map[string]string{},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Fatalf("parsed problem mismatch (-want +got):\n%s", diff)
	}
}

func TestParseOptionComments(t *testing.T) {
	src := "c --walk=true\nc --seed=42\np cnf 1 1\n1 0\n"
	p, err := Parse(strings.NewReader(src), "test.cnf", ModeRelaxed)
	require.NoError(t, err)
	assert.Equal(t, "true", p.Options["walk"])
	assert.Equal(t, "42", p.Options["seed"])
}

func TestParseIncrementalCubes(t *testing.T) {
	src := "p inccnf 2 1\n1 2 0\na 1 0\na -1 0\n"
	p, err := Parse(strings.NewReader(src), "test.icnf", ModeRelaxed)
	require.NoError(t, err)
	assert.True(t, p.Incremental)
	require.Len(t, p.Cubes, 2)
	assert.Equal(t, []int32{1}, p.Cubes[0])
	assert.Equal(t, []int32{-1}, p.Cubes[1])
}

func TestParseStrictRejectsOutOfRangeLiteral(t *testing.T) {
	src := "p cnf 1 1\n1 2 0\n"
	_, err := Parse(strings.NewReader(src), "test.cnf", ModeStrict)
	assert.Error(t, err)
}

func TestParseForcedRejectsClauseCountMismatch(t *testing.T) {
	src := "p cnf 2 2\n1 2 0\n"
	_, err := Parse(strings.NewReader(src), "test.cnf", ModeForced)
	assert.Error(t, err)
}

func TestParseRelaxedToleratesClauseBeforeHeader(t *testing.T) {
	src := "1 2 0\np cnf 2 1\n"
	p, err := Parse(strings.NewReader(src), "test.cnf", ModeRelaxed)
	require.NoError(t, err)
	assert.Len(t, p.Clauses, 1)
}

func TestParseStrictRejectsClauseBeforeHeader(t *testing.T) {
	src := "1 2 0\np cnf 2 1\n"
	_, err := Parse(strings.NewReader(src), "test.cnf", ModeStrict)
	assert.Error(t, err)
}

func TestParseDuplicateHeaderIsError(t *testing.T) {
	src := "p cnf 1 1\np cnf 1 1\n1 0\n"
	_, err := Parse(strings.NewReader(src), "test.cnf", ModeRelaxed)
	assert.Error(t, err)
}

func TestParseMissingHeaderIsError(t *testing.T) {
	src := "1 2 0\n"
	_, err := Parse(strings.NewReader(src), "test.cnf", ModeForced)
	assert.Error(t, err)
}
