package dimacs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasicCNF(t *testing.T) {
	input := "c a trivial example\np cnf 3 2\n1 -2 0\n2 3 0\n"
	nbVars, g, clauses, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, nbVars)
	assert.Equal(t, 2, g.NumClauses())
	assert.Equal(t, 3, g.NumVariables())
	assert.Len(t, clauses, 2)
}

func TestParseClauseSpanningMultipleLines(t *testing.T) {
	input := "p cnf 3 1\n1 -2\n3 0\n"
	_, g, _, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, g.NumClauses())
}

func TestParseRejectsMissingHeader(t *testing.T) {
	input := "1 2 0\n"
	_, _, _, err := Parse(strings.NewReader(input))
	assert.Error(t, err)
}

func TestParseRejectsUnterminatedClause(t *testing.T) {
	input := "p cnf 2 1\n1 2"
	_, _, _, err := Parse(strings.NewReader(input))
	assert.Error(t, err)
}

func TestParseDropsTautologicalClause(t *testing.T) {
	input := "p cnf 2 1\n1 -1 2 0\n"
	_, g, clauses, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 0, g.NumClauses(), "tautological clause should be dropped from the graph")
	assert.Len(t, clauses, 1, "but still echoed back for verify's benefit")
}

func TestParseIgnoresComments(t *testing.T) {
	input := "c comment one\nc comment two\np cnf 1 1\n1 0\n"
	_, g, _, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, g.NumClauses())
}

func TestParseRejectsGarbageLiteral(t *testing.T) {
	input := "p cnf 1 1\nx 0\n"
	_, _, _, err := Parse(strings.NewReader(input))
	assert.Error(t, err)
}
