package dtree_test

import (
	"fmt"

	"github.com/katalvlaran/crux/cnf"
	"github.com/katalvlaran/crux/dtree"
	"github.com/katalvlaran/crux/expr"
)

// ExampleBuild renders the decision tree of a ∨ b: once a is true the
// outcome is settled, so only the false-branch tests b.
func ExampleBuild() {
	f, _ := cnf.FromExpr(expr.Or(expr.Var("a"), expr.Var("b")))
	t, _ := dtree.Build(f, dtree.DefaultOptions())
	fmt.Println(t)
	// Output:
	// node(a, node(b, ⊥, ⊤), ⊤)
}

// ExampleBuild_sorter chooses the branching order explicitly.
func ExampleBuild_sorter() {
	f, _ := cnf.FromExpr(expr.Or(expr.Var("a"), expr.Var("b")))

	opts := dtree.DefaultOptions()
	opts.Sorter = func(x, y string) bool { return x > y }

	t, _ := dtree.Build(f, opts)
	fmt.Println(t)
	// Output:
	// node(b, node(a, ⊥, ⊤), ⊤)
}
