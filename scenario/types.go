// Package scenario defines the theory options shared by scenario
// minimization and assignment validation.
package scenario

import (
	"sort"

	"github.com/katalvlaran/crux/solver"
)

// Scenario is a partial satisfying assignment. Only variables that must be
// true are listed; unmentioned variables are false.
type Scenario map[string]bool

// Assignment is one variable/value pair of a candidate assignment.
type Assignment struct {
	Var   string
	Value bool
}

// Options configures Scenarios and ValidateAssignments.
//
// Fields:
//
//	Implies   - reports that the truth of the first variable forces the
//	            truth of the second. Asymmetric; no transitive closure is
//	            computed. nil means no implications.
//	Conflicts - reports that two variables cannot both be true. Treated as
//	            symmetric: both argument orders are consulted. nil means no
//	            conflicts.
//	Sorter    - strict "less" ordering used wherever variables are iterated.
//	            nil keeps the natural order (variable-name order for
//	            Scenarios, input order for ValidateAssignments).
//	Backend   - SAT backend for model enumeration. nil uses the
//	            process-scoped backend (solver.Current). Ignored by
//	            ValidateAssignments, which never solves.
type Options struct {
	Implies   func(u, v string) bool
	Conflicts func(u, v string) bool
	Sorter    func(a, b string) bool
	Backend   solver.Backend
}

// DefaultOptions returns an Options with no theory hooks and the
// process-scoped backend.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) backend() solver.Backend {
	if o.Backend != nil {
		return o.Backend
	}

	return solver.Current()
}

func (o Options) implies(u, v string) bool {
	return o.Implies != nil && o.Implies(u, v)
}

// conflicts consults the hook in both argument orders, honoring symmetry.
func (o Options) conflicts(u, v string) bool {
	return o.Conflicts != nil && (o.Conflicts(u, v) || o.Conflicts(v, u))
}

// sortVars orders names by Sorter when supplied, breaking ties stably by
// the natural (input) order.
func (o Options) sortVars(names []string) {
	if o.Sorter == nil {
		return
	}
	sort.SliceStable(names, func(i, j int) bool {
		return o.Sorter(names[i], names[j])
	})
}
