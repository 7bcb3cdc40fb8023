package scenario

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/crux/cnf"
	"github.com/katalvlaran/crux/solver"
)

// Scenarios enumerates the models of f and reduces them to the minimal
// scenarios sufficient to cover every model:
//
//  1. All models are enumerated by repeated SAT calls with blocking
//     clauses. Models assigning true to a conflicting pair (per
//     opts.Conflicts) are blocked and skipped.
//  2. Each surviving model keeps its true variables only; of those, any
//     variable implied by another true variable (per opts.Implies) is
//     dropped. The filter makes a single pass against the model — no
//     transitive closure.
//  3. Duplicates collapse to their first occurrence and any scenario that
//     strictly contains another surviving scenario is discarded.
//
// The empty formula ⊤ yields a single empty scenario; an unsatisfiable
// formula yields none. Result order is first-discovery order.
//
// Complexity: up to 2^NumVars SAT calls; reduction is O(k²) hook calls per
// model with k true variables.
func Scenarios(f *cnf.Formula, opts Options) ([]Scenario, error) {
	if f == nil {
		return nil, cnf.ErrNilFormula
	}
	if f.IsTautology() {
		return []Scenario{{}}, nil
	}
	if f.IsContradiction() {
		return []Scenario{}, nil
	}

	backend := opts.backend()
	nvars := f.NumVars()
	bound := 1 << uint(min(nvars, 62))
	clauses := append([][]int(nil), f.Clauses...)

	var reduced []Scenario
	for i := 0; i < bound; i++ {
		res := backend.Solve(clauses, nvars)
		if res.Status == solver.Unsat {
			break
		}
		if res.Status == solver.Unknown {
			return nil, solver.ErrUnknown
		}
		clauses = append(clauses, blockingClause(res.Model))

		model := solver.Decode(f, res.Model)
		if violatesConflicts(model, opts) {
			continue
		}
		reduced = append(reduced, reduceModel(model, opts))
	}

	return minimalCover(reduced), nil
}

func blockingClause(model []int) []int {
	block := make([]int, len(model))
	for i, lit := range model {
		block[i] = -lit
	}

	return block
}

// violatesConflicts reports whether the model sets two conflicting
// variables true.
func violatesConflicts(model solver.Model, opts Options) bool {
	if opts.Conflicts == nil {
		return false
	}
	names := trueVars(model, opts)
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if opts.conflicts(names[i], names[j]) {
				return true
			}
		}
	}

	return false
}

// trueVars lists the model's true variables sorted naturally, then by
// opts.Sorter when supplied.
func trueVars(model solver.Model, opts Options) []string {
	names := make([]string, 0, len(model))
	for name, val := range model {
		if val {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	opts.sortVars(names)

	return names
}

// reduceModel shrinks a model to its scenario: false variables are omitted
// (they are the default) and a true variable is dropped when another
// variable true in the model implies it. The check runs against the
// original model, so implication chains shed every implied member in the
// same pass.
func reduceModel(model solver.Model, opts Options) Scenario {
	names := trueVars(model, opts)
	out := make(Scenario, len(names))
	for _, v := range names {
		implied := false
		for _, u := range names {
			if u != v && opts.implies(u, v) {
				implied = true
				break
			}
		}
		if !implied {
			out[v] = true
		}
	}

	return out
}

// minimalCover deduplicates scenarios (first occurrence wins) and removes
// any scenario that strictly contains another, leaving a minimal set that
// still covers every model.
func minimalCover(scenarios []Scenario) []Scenario {
	var unique []Scenario
	for _, s := range scenarios {
		dup := false
		for _, kept := range unique {
			if equalScenario(kept, s) {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, s)
		}
	}

	out := make([]Scenario, 0, len(unique))
	for _, s := range unique {
		covered := false
		for _, other := range unique {
			if !equalScenario(s, other) && subset(other, s) {
				covered = true
				break
			}
		}
		if !covered {
			out = append(out, s)
		}
	}

	return out
}

func equalScenario(a, b Scenario) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}

	return true
}

// subset reports whether every entry of inner appears in outer.
func subset(inner, outer Scenario) bool {
	if len(inner) > len(outer) {
		return false
	}
	for k, v := range inner {
		if ov, ok := outer[k]; !ok || ov != v {
			return false
		}
	}

	return true
}

// String renders a scenario deterministically for diagnostics.
func (s Scenario) String() string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	out := "{"
	for i, name := range names {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s:%t", name, s[name])
	}

	return out + "}"
}
