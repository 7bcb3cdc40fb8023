package dtree

import (
	"sort"

	"github.com/katalvlaran/crux/cnf"
)

// Build synthesizes the decision tree of f. Along every root-to-leaf path
// each variable appears at most once, and the leaf equals the formula's
// truth value under the path's partial assignment however the remaining
// variables are set.
//
// Construction recurses on the residual clause set:
//
//  1. Clauses are folded under the partial assignment; an empty clause is
//     the ⊥ leaf, an empty set the ⊤ leaf.
//  2. The next variable is the least (per opts.Sorter, default binding
//     order) still appearing in the residual.
//  3. The true-branch is pruned to ⊥ without recursion when setting the
//     variable would conflict with a variable already true on the path.
//  4. Structurally identical branches collapse to a single subtree, so
//     irrelevant variables never surface.
//
// A constant formula yields a bare leaf.
func Build(f *cnf.Formula, opts Options) (*Tree, error) {
	if f == nil {
		return nil, cnf.ErrNilFormula
	}
	if f.IsContradiction() {
		return Leaf(false), nil
	}

	b := &builder{f: f, opts: opts}

	return b.build(f.Clauses, nil), nil
}

type builder struct {
	f    *cnf.Formula
	opts Options
}

// build constructs the subtree for the residual clauses; pathTrue lists the
// variables set true on the path so far.
func (b *builder) build(clauses [][]int, pathTrue []string) *Tree {
	if len(clauses) == 0 {
		return Leaf(true)
	}
	for _, clause := range clauses {
		if len(clause) == 0 {
			return Leaf(false)
		}
	}

	v := b.nextVar(clauses)
	name, _ := b.f.VarOf(v)

	lo := b.build(assign(clauses, v, false), pathTrue)

	var hi *Tree
	if b.conflictsPath(name, pathTrue) {
		hi = Leaf(false)
	} else {
		hi = b.build(assign(clauses, v, true), append(pathTrue, name))
	}

	if lo.Equal(hi) {
		return lo
	}

	return &Tree{Var: name, Lo: lo, Hi: hi}
}

// nextVar picks the index of the least variable still appearing in the
// clauses, ordered by opts.Sorter over names with binding order as the
// stable tie-break.
func (b *builder) nextVar(clauses [][]int) int {
	seen := make(map[int]struct{})
	var indices []int
	for _, clause := range clauses {
		for _, lit := range clause {
			v := abs(lit)
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				indices = append(indices, v)
			}
		}
	}
	sort.Ints(indices)
	if b.opts.Sorter != nil {
		sort.SliceStable(indices, func(i, j int) bool {
			ni, _ := b.f.VarOf(indices[i])
			nj, _ := b.f.VarOf(indices[j])

			return b.opts.Sorter(ni, nj)
		})
	}

	return indices[0]
}

// conflictsPath reports whether setting name true conflicts with a variable
// already true on the path.
func (b *builder) conflictsPath(name string, pathTrue []string) bool {
	for _, u := range pathTrue {
		if b.opts.conflicts(u, name) {
			return true
		}
	}

	return false
}

// assign folds v=val into the clause set: satisfied clauses disappear and
// falsified literals are dropped, which may leave an empty clause.
func assign(clauses [][]int, v int, val bool) [][]int {
	out := make([][]int, 0, len(clauses))
	for _, clause := range clauses {
		satisfied := false
		live := make([]int, 0, len(clause))
		for _, lit := range clause {
			if abs(lit) != v {
				live = append(live, lit)
				continue
			}
			if (lit > 0) == val {
				satisfied = true
				break
			}
		}
		if !satisfied {
			out = append(out, live)
		}
	}

	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
