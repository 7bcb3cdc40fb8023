package scenario

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/crux/solver"
)

// ValidateAssignments screens a candidate assignment under the theory in
// opts, without any SAT solving. Pairs are processed in opts.Sorter order
// (input order by default) into an accumulator:
//
//   - a true variable already implied by an accepted true variable is
//     redundant and dropped from the result;
//   - a false variable implied true by an accepted true variable
//     contradicts the theory — the whole assignment is unsatisfiable;
//   - a true variable conflicting with an accepted true variable (either
//     argument order) is likewise unsatisfiable;
//   - anything else is appended.
//
// False-valued variables never introduce conflicts. The returned sequence
// preserves processing order. Unsatisfiable inputs yield an error wrapping
// solver.ErrUnsat.
//
// Complexity: O(n²) hook calls for n pairs.
func ValidateAssignments(assigns []Assignment, opts Options) ([]Assignment, error) {
	ordered := append([]Assignment(nil), assigns...)
	if opts.Sorter != nil {
		sort.SliceStable(ordered, func(i, j int) bool {
			return opts.Sorter(ordered[i].Var, ordered[j].Var)
		})
	}

	accepted := make([]Assignment, 0, len(ordered))
	for _, a := range ordered {
		if a.Value {
			// Forward filter first: an implied true variable is dropped
			// before any conflict is considered.
			if impliedBy(accepted, a.Var, opts) != "" {
				continue
			}
			if u := conflictWith(accepted, a.Var, opts); u != "" {
				return nil, fmt.Errorf("scenario: %q conflicts with %q: %w",
					a.Var, u, solver.ErrUnsat)
			}
			accepted = append(accepted, a)
			continue
		}
		if u := impliedBy(accepted, a.Var, opts); u != "" {
			return nil, fmt.Errorf("scenario: %q is forced true by %q: %w",
				a.Var, u, solver.ErrUnsat)
		}
		accepted = append(accepted, a)
	}

	return accepted, nil
}

// impliedBy returns the first accepted true variable implying v, or "".
func impliedBy(accepted []Assignment, v string, opts Options) string {
	for _, prev := range accepted {
		if prev.Value && opts.implies(prev.Var, v) {
			return prev.Var
		}
	}

	return ""
}

// conflictWith returns the first accepted true variable conflicting with v,
// or "".
func conflictWith(accepted []Assignment, v string, opts Options) string {
	for _, prev := range accepted {
		if prev.Value && opts.conflicts(prev.Var, v) {
			return prev.Var
		}
	}

	return ""
}

// ValidateMap is ValidateAssignments over a plain map. Entries are ordered
// by variable name before opts.Sorter applies, keeping the result
// deterministic.
func ValidateMap(m map[string]bool, opts Options) ([]Assignment, error) {
	assigns := make([]Assignment, 0, len(m))
	for name, val := range m {
		assigns = append(assigns, Assignment{Var: name, Value: val})
	}
	sort.Slice(assigns, func(i, j int) bool {
		return assigns[i].Var < assigns[j].Var
	})

	return ValidateAssignments(assigns, opts)
}
