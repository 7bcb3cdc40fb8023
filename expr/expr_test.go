package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crux/expr"
)

func TestBuildersFoldLeft(t *testing.T) {
	require := require.New(t)

	a, b, c := expr.Var("a"), expr.Var("b"), expr.Var("c")

	// And/Or fold n-ary input into left-leaning binary trees.
	require.Equal("and(and(a, b), c)", expr.And(a, b, c).String())
	require.Equal("or(or(a, b), c)", expr.Or(a, b, c).String())

	// Single argument is returned as-is; zero arguments yield the identity.
	require.True(expr.Equal(a, expr.And(a)))
	require.True(expr.Equal(a, expr.Or(a)))
	require.True(expr.Equal(expr.True, expr.And()))
	require.True(expr.Equal(expr.False, expr.Or()))
}

func TestBuildersDoNotSimplify(t *testing.T) {
	require := require.New(t)

	a := expr.Var("a")
	// Purely constructive: no normalization happens at build time.
	require.Equal("and(a, a)", expr.And(a, a).String())
	require.Equal("not(not(a))", expr.Not(expr.Not(a)).String())
	require.Equal("or(a, true)", expr.Or(a, expr.True).String())
}

func TestAtMostOne(t *testing.T) {
	require := require.New(t)

	// Fewer than two names: vacuous.
	require.True(expr.Equal(expr.True, expr.AtMostOne()))
	require.True(expr.Equal(expr.True, expr.AtMostOne("a")))

	// Pairs i<j in positional order, left-folded.
	got := expr.AtMostOne("a", "b", "c")
	want := "and(and(or(not(a), not(b)), or(not(a), not(c))), or(not(b), not(c)))"
	require.Equal(want, got.String())
}

func TestRunTruthTable(t *testing.T) {
	a, b := expr.Var("a"), expr.Var("b")
	e := expr.Or(expr.And(a, expr.Not(b)), expr.Not(a))

	cases := []struct {
		va, vb bool
		want   bool
	}{
		{false, false, true},
		{false, true, true},
		{true, false, true},
		{true, true, false},
	}
	for _, tc := range cases {
		got, err := expr.Run(e, expr.MapOracle(map[string]bool{"a": tc.va, "b": tc.vb}))
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "a=%t b=%t", tc.va, tc.vb)
	}
}

func TestRunConstants(t *testing.T) {
	require := require.New(t)

	noVars := expr.MapOracle(nil)
	got, err := expr.Run(expr.True, noVars)
	require.NoError(err)
	require.True(got)

	got, err = expr.Run(expr.Not(expr.True), noVars)
	require.NoError(err)
	require.False(got)
}

func TestRunIsStrict(t *testing.T) {
	require := require.New(t)

	// Both operands are evaluated even when one already decides the
	// result, so the unknown variable surfaces.
	e := expr.Or(expr.True, expr.Var("missing"))
	_, err := expr.Run(e, expr.MapOracle(map[string]bool{}))
	require.ErrorIs(err, expr.ErrUnknownVar)

	e = expr.And(expr.False, expr.Var("missing"))
	_, err = expr.Run(e, expr.MapOracle(map[string]bool{}))
	require.ErrorIs(err, expr.ErrUnknownVar)
}

func TestRunNil(t *testing.T) {
	_, err := expr.Run(nil, expr.MapOracle(nil))
	require.ErrorIs(t, err, expr.ErrNilExpr)
}

func TestVars(t *testing.T) {
	e := expr.Or(expr.And(expr.Var("c"), expr.Var("a")), expr.Not(expr.Var("b")))
	require.Equal(t, []string{"a", "b", "c"}, expr.Vars(e))
	require.Empty(t, expr.Vars(expr.True))
}

func TestEqualIsStructural(t *testing.T) {
	require := require.New(t)

	a, b := expr.Var("a"), expr.Var("b")
	require.True(expr.Equal(expr.And(a, b), expr.And(a, b)))
	// Commuted operands are semantically equal but structurally distinct.
	require.False(expr.Equal(expr.And(a, b), expr.And(b, a)))
	require.False(expr.Equal(a, expr.Not(expr.Not(a))))
}
