package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xDarkicex/cadical-go/dimacs"
	"github.com/xDarkicex/cadical-go/sat"
)

func TestVerifyModelAcceptsSatisfyingAssignment(t *testing.T) {
	p := &dimacs.Problem{
		NumVars: 2,
		Clauses: [][]int32{{1, 2}, {-1, 2}},
	}
	assert.True(t, verifyModel(p, []int32{-1, 2}))
}

func TestVerifyModelRejectsUnsatisfiedClause(t *testing.T) {
	p := &dimacs.Problem{
		NumVars: 2,
		Clauses: [][]int32{{1, 2}},
	}
	assert.False(t, verifyModel(p, []int32{-1, -2}))
}

func TestExtractModelReturnsOneEntryPerVariable(t *testing.T) {
	s := sat.New()
	s.Reserve(2)
	s.AddClause(1, 2)
	s.Solve()
	model := extractModel(s, 2)
	assert.Len(t, model, 2)
}

func TestNewRootCommandRegistersExpectedFlags(t *testing.T) {
	cmd := newRootCommand()
	for _, name := range []string{"quiet", "verbose", "stats", "configure", "drat", "frat", "lrat", "veripb", "idrup"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %q", name)
	}
}
