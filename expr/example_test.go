package expr_test

import (
	"fmt"

	"github.com/katalvlaran/crux/expr"
)

// ExampleExpand demonstrates fixpoint simplification: absorption and the
// complement law collapse the expression without distribution.
func ExampleExpand() {
	a, b := expr.Var("a"), expr.Var("b")

	e := expr.And(
		expr.And(a, expr.Or(a, b)), // absorption: a
		expr.Or(b, expr.Not(b)),    // complement: ⊤
	)
	fmt.Println(expr.Expand(e, expr.DefaultOptions()))
	// Output:
	// a
}

// ExampleRun evaluates an expression against a plain assignment map.
func ExampleRun() {
	e := expr.Or(
		expr.And(expr.Var("a"), expr.Not(expr.Var("b"))),
		expr.Var("c"),
	)
	v, err := expr.Run(e, expr.MapOracle(map[string]bool{
		"a": true, "b": false, "c": false,
	}))
	fmt.Println(v, err)
	// Output:
	// true <nil>
}

// ExampleAtMostOne builds the pairwise-exclusion constraint.
func ExampleAtMostOne() {
	fmt.Println(expr.AtMostOne("x", "y"))
	// Output:
	// or(not(x), not(y))
}
