package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crux/cnf"
	"github.com/katalvlaran/crux/expr"
	"github.com/katalvlaran/crux/solver"
)

func TestSimpleSatRawClauses(t *testing.T) {
	require := require.New(t)

	var s solver.SimpleSat

	// Unit propagation chains: 2 is a unit, which reduces the first clause
	// to the unit 1.
	res := s.Solve([][]int{{1, -2}, {2}}, 2)
	require.Equal(solver.Sat, res.Status)
	require.Equal([]int{1, 2}, res.Model)

	// Direct contradiction.
	res = s.Solve([][]int{{1}, {-1}}, 1)
	require.Equal(solver.Unsat, res.Status)

	// Backtracking: 1 must be false, then 2 true.
	res = s.Solve([][]int{{-1, 2}, {-1, -2}, {1, 2}}, 2)
	require.Equal(solver.Sat, res.Status)
	require.Equal([]int{-1, 2}, res.Model)
}

func TestSimpleSatIsDeterministic(t *testing.T) {
	require := require.New(t)

	f, err := cnf.FromExpr(expr.Or(expr.Var("a"), expr.Var("b")))
	require.NoError(err)

	// Enumeration order is fixed: pure-literal picks a first, then b, then
	// the branch finds the joint model.
	models, err := solver.ModelsWith(solver.SimpleSat{}, f)
	require.NoError(err)
	require.Equal([]solver.Model{
		{"a": true, "b": false},
		{"a": false, "b": true},
		{"a": true, "b": true},
	}, models)

	again, err := solver.ModelsWith(solver.SimpleSat{}, f)
	require.NoError(err)
	require.Equal(models, again)
}

func TestSimpleSatDefaultsUnassignedFalse(t *testing.T) {
	require := require.New(t)

	// Variable 2 never appears in a clause.
	res := solver.SimpleSat{}.Solve([][]int{{1}}, 2)
	require.Equal(solver.Sat, res.Status)
	require.Equal([]int{1, -2}, res.Model)
}
