// Package dtree synthesizes binary decision trees whose root-to-leaf paths
// enumerate the truth of a CNF formula.
//
// 🚀 What is crux/dtree?
//
//	The explanatory end of the crux pipeline. Each internal node tests one
//	variable (Lo = variable false, Hi = variable true); leaves are the
//	constants ⊤ and ⊥. No variable repeats along a path, and a variable
//	that cannot change the outcome never appears at all.
//
// ✨ Key features:
//   - residual construction: the clause set is folded under the partial
//     assignment of the path, so each branch sees only what is left to
//     decide
//   - conflict pruning: a branch that would set two conflicting variables
//     true (per Options.Conflicts) becomes a ⊥ leaf without recursion
//   - identical-subtree collapse: when both branches agree the variable is
//     irrelevant and the shared subtree replaces the node
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/crux/cnf"
//	  "github.com/katalvlaran/crux/dtree"
//	  "github.com/katalvlaran/crux/expr"
//	)
//
//	f, _ := cnf.FromExpr(expr.And(expr.Var("a"), expr.Var("b")))
//	t, _ := dtree.Build(f, dtree.DefaultOptions())
//	// t == Node(a, ⊥, Node(b, ⊥, ⊤))
//
// The tree can be degenerate: a constant formula yields a bare leaf.
//
// Performance: O(2^n) nodes in the worst case for n variables; collapse
// keeps trees small for formulas with few relevant variables.
package dtree
