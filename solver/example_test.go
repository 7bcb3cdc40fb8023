package solver_test

import (
	"fmt"

	"github.com/katalvlaran/crux/cnf"
	"github.com/katalvlaran/crux/expr"
	"github.com/katalvlaran/crux/solver"
)

// ExampleSolveWith solves a formula with the deterministic reference
// backend and decodes the model back to variable names.
func ExampleSolveWith() {
	f, _ := cnf.FromExpr(expr.And(expr.Var("a"), expr.Not(expr.Var("b"))))
	model, err := solver.SolveWith(solver.SimpleSat{}, f)
	fmt.Println(model, err)
	// Output:
	// map[a:true b:false] <nil>
}

// ExampleSatisfiable checks satisfiability without needing the model.
func ExampleSatisfiable() {
	a := expr.Var("a")

	sat, _ := cnf.FromExpr(expr.Or(a, expr.Var("b")))
	unsat, _ := cnf.FromExpr(expr.And(a, expr.Not(a)))

	fmt.Println(solver.Satisfiable(sat), solver.Satisfiable(unsat))
	// Output:
	// true false
}
