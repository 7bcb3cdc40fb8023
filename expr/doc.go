// Package expr builds, evaluates and simplifies propositional Boolean
// expressions over string-named variables.
//
// 🚀 What is crux/expr?
//
//	The entry point of the crux pipeline. An Expr is an immutable AST with
//	exactly five node kinds:
//
//	  • ConstExpr — the constants ⊤ and ⊥
//	  • VarExpr   — a named variable
//	  • NotExpr   — negation
//	  • AndExpr   — binary conjunction
//	  • OrExpr    — binary disjunction
//
// ✨ Key features:
//   - purely constructive builders: And/Or fold n-ary input into
//     left-leaning binary trees, never simplifying
//   - AtMostOne — pairwise-exclusion helper for cardinality-style modeling
//   - Run — total, strict evaluation against a caller-supplied oracle
//   - Expand — fixpoint algebraic simplification (De Morgan, absorption,
//     complement, identity, domination, idempotence, double negation),
//     with an aggressive mode that distributes toward clausal form
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/crux/expr"
//
//	e := expr.Or(
//	  expr.And(expr.Var("a"), expr.Not(expr.Var("b"))),
//	  expr.Var("c"),
//	)
//	simplified := expr.Expand(e, expr.DefaultOptions())
//
// Simplification never changes the meaning of an expression: for every
// oracle, Run(e, oracle) == Run(Expand(e, opts), oracle).
//
// Performance:
//
//   - Run:    O(n) over the node count
//   - Expand: fixpoint rewriting with per-subtree memoization; aggressive
//     mode can grow the result exponentially (inherent to distribution)
//
// See cnf for the clausal counterpart of an Expr.
package expr
