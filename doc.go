// Package crux is a small Boolean reasoning toolkit for Go.
//
// 🚀 What is crux?
//
//	Given a propositional expression over named variables, crux answers
//	four questions: is it satisfiable, what is a model, what are the
//	minimal satisfying scenarios, and what decision tree enumerates its
//	truth. A validator screens explicit assignments against a
//	caller-supplied implication/conflict theory without touching SAT.
//
// ✨ Why choose crux?
//
//   - Small surface        — five packages, each one concern
//   - Deterministic        — stable variable numbering, reproducible output
//   - Pluggable solving    — CDCL (go-air/gini) or a deterministic DPLL
//   - Pure values          — expressions, formulas and trees are immutable
//
// Everything is organized under five subpackages:
//
//	expr/     — expression AST, builders, evaluation, simplification
//	cnf/      — conjunctive normal form, Expr ↔ Formula, DIMACS output
//	solver/   — SAT facade, backends, model enumeration
//	scenario/ — scenario minimization and assignment validation
//	dtree/    — decision-tree synthesis
//
// Quick pipeline example:
//
//	e := expr.Or(expr.Var("a"), expr.Var("b"))
//	f, _ := cnf.FromExpr(e)            // p cnf 2 1 / 1 2 0
//	model, _ := solver.Solve(f)        // e.g. {a:true, b:false}
//	ss, _ := scenario.Scenarios(f, scenario.DefaultOptions())
//	// [{a:true}, {b:true}]
//
// Dive into each package's doc.go for contracts, edge cases and complexity
// notes.
//
//	go get github.com/katalvlaran/crux
package crux
