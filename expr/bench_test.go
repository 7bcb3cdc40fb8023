package expr_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/crux/expr"
)

// chainExpr builds ¬¬(v0 ∧ ⊤) ∨ … over n variables, giving the rewriter
// plenty of double negations and identities to fold.
func chainExpr(n int) expr.Expr {
	parts := make([]expr.Expr, 0, n)
	for i := 0; i < n; i++ {
		v := expr.Var(fmt.Sprintf("v%d", i))
		parts = append(parts, expr.Not(expr.Not(expr.And(v, expr.True))))
	}

	return expr.Or(parts...)
}

// benchmarkExpand runs Expand on a chain of n variables with the given
// options.
func benchmarkExpand(b *testing.B, n int, opts expr.Options) {
	e := chainExpr(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		expr.Expand(e, opts)
	}
}

// BenchmarkExpand_Small simplifies a 10-variable chain.
func BenchmarkExpand_Small(b *testing.B) {
	benchmarkExpand(b, 10, expr.DefaultOptions())
}

// BenchmarkExpand_Medium simplifies a 100-variable chain.
func BenchmarkExpand_Medium(b *testing.B) {
	benchmarkExpand(b, 100, expr.DefaultOptions())
}

// BenchmarkExpand_Aggressive simplifies a 10-variable chain with the
// distribution law enabled (the chain has no conjunction left to distribute).
func BenchmarkExpand_Aggressive(b *testing.B) {
	benchmarkExpand(b, 10, expr.Options{Aggressive: true})
}

// BenchmarkRun evaluates a 100-variable chain.
func BenchmarkRun(b *testing.B) {
	e := chainExpr(100)
	asn := make(map[string]bool, 100)
	for i := 0; i < 100; i++ {
		asn[fmt.Sprintf("v%d", i)] = i%2 == 0
	}
	oracle := expr.MapOracle(asn)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := expr.Run(e, oracle); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}
