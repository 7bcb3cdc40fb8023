// Package scenario reduces the models of a formula to minimal satisfying
// scenarios and validates candidate assignments against a caller-supplied
// implication/conflict theory.
//
// 🚀 What is crux/scenario?
//
//	The layer between raw SAT models and user-facing answers. A Scenario is
//	a partial assignment listing only the variables that must be true;
//	everything unmentioned defaults to false.
//
// ✨ Key features:
//   - Scenarios — enumerate all models (blocking-clause iteration), prune
//     models violating the Conflicts relation, drop variables implied by
//     other true variables, and keep only subset-minimal results
//   - ValidateAssignments — screen an explicit assignment sequence under
//     the same theory without touching a SAT backend
//
// The theory hooks mirror each other across both operations:
//
//	Implies(u, v)   — "if u is true then v is true"; asymmetric, no closure
//	Conflicts(u, v) — "u and v cannot both be true"; symmetric
//	Sorter(a, b)    — iteration order wherever the algorithm walks variables
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/crux/cnf"
//	  "github.com/katalvlaran/crux/expr"
//	  "github.com/katalvlaran/crux/scenario"
//	)
//
//	f, _ := cnf.FromExpr(expr.Or(expr.Var("a"), expr.Var("b")))
//	out, _ := scenario.Scenarios(f, scenario.DefaultOptions())
//	// out == []scenario.Scenario{{"a": true}, {"b": true}}
//
// Performance: Scenarios performs up to 2^n SAT calls for n variables —
// acceptable for the small specification-style formulas crux targets.
// ValidateAssignments is O(n²) hook calls for n pairs.
package scenario
