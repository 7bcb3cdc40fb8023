package solver

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// Gini solves through the CDCL solver github.com/go-air/gini. It is the
// default backend.
type Gini struct{}

// Solve feeds the clauses to a fresh gini instance and maps its outcome
// (1, -1, 0) to Sat, Unsat and Unknown.
func (Gini) Solve(clauses [][]int, nvars int) Result {
	g := gini.New()
	seen := 0
	for _, clause := range clauses {
		for _, lit := range clause {
			if v := abs(lit); v > seen {
				seen = v
			}
			g.Add(z.Dimacs2Lit(lit))
		}
		g.Add(z.LitNull)
	}

	switch g.Solve() {
	case 1:
		// Indices the clauses never mention (possible when a tautological
		// clause was dropped during conversion) default to false.
		model := make([]int, 0, nvars)
		for i := 1; i <= nvars; i++ {
			if i <= seen && g.Value(z.Dimacs2Lit(i)) {
				model = append(model, i)
			} else {
				model = append(model, -i)
			}
		}

		return Result{Status: Sat, Model: model}
	case -1:
		return Result{Status: Unsat}
	default:
		return Result{Status: Unknown}
	}
}
