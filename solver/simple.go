package solver

// SimpleSat is a deterministic DPLL backend: unit propagation, pure-literal
// elimination, then branching on the lowest-indexed unassigned variable with
// true tried first. Intended for small formulas and reproducible test runs;
// worst case is exponential.
type SimpleSat struct{}

// Solve decides the clause set by depth-first search.
func (SimpleSat) Solve(clauses [][]int, nvars int) Result {
	asn, ok := dpll(clauses, make(map[int]bool), nvars)
	if !ok {
		return Result{Status: Unsat}
	}

	// Variables the search never had to assign default to false.
	model := make([]int, 0, nvars)
	for i := 1; i <= nvars; i++ {
		if asn[i] {
			model = append(model, i)
		} else {
			model = append(model, -i)
		}
	}

	return Result{Status: Sat, Model: model}
}

// dpll searches for an extension of asn satisfying the clauses. It returns
// the completed assignment and whether one exists.
func dpll(clauses [][]int, asn map[int]bool, nvars int) (map[int]bool, bool) {
	for {
		reduced, ok := reduce(clauses, asn)
		if !ok {
			return nil, false
		}
		if len(reduced) == 0 {
			return asn, true
		}
		clauses = reduced

		// Unit propagation.
		if unit := findUnit(reduced); unit != 0 {
			asn[abs(unit)] = unit > 0
			continue
		}

		// Pure-literal elimination, lowest variable first.
		if pure := findPure(reduced, nvars); pure != 0 {
			asn[abs(pure)] = pure > 0
			continue
		}

		// Branch on the lowest-indexed unassigned variable, true first.
		v := branchVar(reduced)
		for _, val := range [2]bool{true, false} {
			trial := cloneAssignment(asn)
			trial[v] = val
			if complete, ok := dpll(reduced, trial, nvars); ok {
				return complete, true
			}
		}

		return nil, false
	}
}

// reduce simplifies the clause set under asn: satisfied clauses are removed
// and false literals dropped. ok is false when a clause becomes empty.
func reduce(clauses [][]int, asn map[int]bool) (out [][]int, ok bool) {
	out = make([][]int, 0, len(clauses))
	for _, clause := range clauses {
		live := make([]int, 0, len(clause))
		satisfied := false
		for _, lit := range clause {
			val, bound := asn[abs(lit)]
			if !bound {
				live = append(live, lit)
				continue
			}
			if (lit > 0) == val {
				satisfied = true
				break
			}
		}
		if satisfied {
			continue
		}
		if len(live) == 0 {
			return nil, false
		}
		out = append(out, live)
	}

	return out, true
}

// findUnit returns the first single-literal clause, or 0.
func findUnit(clauses [][]int) int {
	for _, clause := range clauses {
		if len(clause) == 1 {
			return clause[0]
		}
	}

	return 0
}

// findPure returns the lowest-indexed variable occurring with a single
// polarity, signed by that polarity, or 0.
func findPure(clauses [][]int, nvars int) int {
	pos := make(map[int]bool)
	neg := make(map[int]bool)
	for _, clause := range clauses {
		for _, lit := range clause {
			if lit > 0 {
				pos[lit] = true
			} else {
				neg[-lit] = true
			}
		}
	}
	for v := 1; v <= nvars; v++ {
		if pos[v] && !neg[v] {
			return v
		}
		if neg[v] && !pos[v] {
			return -v
		}
	}

	return 0
}

// branchVar returns the lowest-indexed variable appearing in the clauses.
func branchVar(clauses [][]int) int {
	best := 0
	for _, clause := range clauses {
		for _, lit := range clause {
			if v := abs(lit); best == 0 || v < best {
				best = v
			}
		}
	}

	return best
}

func cloneAssignment(asn map[int]bool) map[int]bool {
	out := make(map[int]bool, len(asn)+1)
	for k, v := range asn {
		out[k] = v
	}

	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
