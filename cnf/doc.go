// Package cnf converts between algebraic expressions and conjunctive normal
// form, and emits the DIMACS interchange format consumed by SAT solvers.
//
// 🚀 What is crux/cnf?
//
//	The clausal middle of the crux pipeline. A Formula is a conjunction of
//	clauses (disjunctions of signed integer literals) plus a two-way binding
//	table between variable indices and the original variable names.
//
// ✨ Key features:
//   - FromExpr — distribution-based conversion with stable first-seen
//     variable numbering
//   - ToExpr   — the inverse conversion, rebuilding balanced (min-depth)
//     And/Or trees
//   - Dimacs   — canonical "p cnf" text output
//
// Constant encodings are fixed:
//
//	⊤ → no clauses, no bindings
//	⊥ → the placeholder clauses [[1], [-1]] with no bindings; index 1 is
//	    synthetic and never bound to a variable
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/crux/cnf"
//	  "github.com/katalvlaran/crux/expr"
//	)
//
//	f, err := cnf.FromExpr(expr.Or(expr.Var("a"), expr.Var("b")))
//	// f.Clauses == [][]int{{1, 2}}
//	fmt.Println(cnf.Dimacs(f)) // "p cnf 2 1\n1 2 0"
//
// Distribution can grow a formula exponentially; conversions producing more
// than 100 clauses log a warning through the package logger (see SetLogger).
//
// Performance: FromExpr is linear in the size of the aggressively expanded
// expression, which itself may be exponential in the input.
package cnf
