// Package solver answers satisfiability questions about CNF formulas
// through a pluggable backend.
//
// 🚀 What is crux/solver?
//
//	The SAT facade of crux. Two backends ship with the library:
//
//	  • Gini      — the default, backed by the CDCL solver
//	                github.com/go-air/gini
//	  • SimpleSat — a deterministic DPLL used as the reference backend in
//	                tests and for reproducible runs
//
// ✨ Key features:
//   - Solve / Satisfiable — decode a backend model into variable names
//   - Models — all-solutions enumeration via blocking clauses
//   - process-scoped backend selection (Use / Current), plus explicit
//     per-call override with SolveWith
//
// Constant formulas never reach a backend: ⊤ solves to the empty model and
// the ⊥ placeholder reports ErrUnsat directly.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/crux/cnf"
//	  "github.com/katalvlaran/crux/expr"
//	  "github.com/katalvlaran/crux/solver"
//	)
//
//	f, _ := cnf.FromExpr(expr.And(expr.Var("a"), expr.Not(expr.Var("b"))))
//	model, err := solver.Solve(f)
//	// model == solver.Model{"a": true, "b": false}, err == nil
//
// Concurrency: backends keep no state across calls; the process-scoped
// backend slot is guarded by a mutex. Individual Solve calls are
// deterministic up to backend nondeterminism (SimpleSat is fully
// deterministic).
package solver
