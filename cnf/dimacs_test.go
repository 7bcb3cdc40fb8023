package cnf_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crux/cnf"
	"github.com/katalvlaran/crux/expr"
)

func fromExpr(t *testing.T, e expr.Expr) *cnf.Formula {
	t.Helper()
	f, err := cnf.FromExpr(e)
	require.NoError(t, err)

	return f
}

func TestDimacsFixtures(t *testing.T) {
	require := require.New(t)

	a, b := expr.Var("a"), expr.Var("b")

	require.Equal("p cnf 2 2\n1 0\n2 0", cnf.Dimacs(fromExpr(t, expr.And(a, b))))
	require.Equal("p cnf 2 1\n1 2 0", cnf.Dimacs(fromExpr(t, expr.Or(a, b))))
	require.Equal("p cnf 1 1\n-1 0", cnf.Dimacs(fromExpr(t, expr.Not(a))))
}

func TestDimacsConstants(t *testing.T) {
	require := require.New(t)

	require.Equal("p cnf 0 0\n", cnf.Dimacs(cnf.Tautology()))

	// The placeholder counts its synthetic variable.
	require.Equal("p cnf 1 2\n1 0\n-1 0", cnf.Dimacs(cnf.Contradiction()))
}

func TestDimacsWellFormed(t *testing.T) {
	require := require.New(t)

	e := expr.Or(
		expr.And(expr.Var("a"), expr.Not(expr.Var("b"))),
		expr.And(expr.Not(expr.Var("c")), expr.Var("d")),
	)
	f := fromExpr(t, e)
	out := cnf.Dimacs(f)

	lines := strings.Split(out, "\n")
	require.Equal("p cnf 4 4", lines[0])
	require.Len(lines, 1+len(f.Clauses))
	for _, line := range lines[1:] {
		require.True(strings.HasSuffix(line, " 0"), "clause line %q must end in \" 0\"", line)
	}
	require.False(strings.HasSuffix(out, "\n"))
}
