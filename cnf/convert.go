package cnf

import (
	"fmt"

	"github.com/katalvlaran/crux/expr"
)

// FromExpr converts e to conjunctive normal form.
//
// Conversion proceeds in three stages:
//
//  1. e is expanded aggressively, so the result is either a constant or a
//     conjunction of disjunctions of literals.
//  2. Variables are numbered 1, 2, … in first-seen order of a left-to-right,
//     leaves-first walk of the normalized expression.
//  3. Each disjunction becomes one clause. Duplicate literals keep their
//     first occurrence; tautological clauses (x ∨ ¬x ∨ …) are dropped.
//
// The constants use the fixed encodings of Tautology and Contradiction.
//
// Complexity: linear in the expanded expression, which distribution may have
// grown exponentially relative to e.
func FromExpr(e expr.Expr) (*Formula, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: nil expression", ErrMalformed)
	}
	n := expr.Expand(e, expr.Options{Aggressive: true})
	if c, ok := n.(*expr.ConstExpr); ok {
		if c.Value {
			return Tautology(), nil
		}

		return Contradiction(), nil
	}

	f := &Formula{index: make(map[string]int)}
	for _, disj := range flattenAnd(n) {
		lits, err := clauseLiterals(disj)
		if err != nil {
			return nil, err
		}
		clause := f.number(lits)
		if clause != nil {
			f.Clauses = append(f.Clauses, clause)
		}
	}

	if len(f.Clauses) > explosionThreshold {
		log.WithField("clauses", len(f.Clauses)).
			Warn("cnf: conversion produced a large formula")
	}

	return f, nil
}

// literal is one leaf of a normalized expression: a variable or its
// negation.
type literal struct {
	name    string
	negated bool
}

// flattenAnd lists the conjuncts of a (possibly nested) binary And tree in
// left-to-right order. A non-And node is a single conjunct.
func flattenAnd(e expr.Expr) []expr.Expr {
	if a, ok := e.(*expr.AndExpr); ok {
		return append(flattenAnd(a.L), flattenAnd(a.R)...)
	}

	return []expr.Expr{e}
}

// clauseLiterals lists the literals of a (possibly nested) binary Or tree in
// left-to-right order. Any leaf that is not a variable or a negated variable
// means the expansion failed to reach clausal form.
func clauseLiterals(e expr.Expr) ([]literal, error) {
	switch x := e.(type) {
	case *expr.OrExpr:
		left, err := clauseLiterals(x.L)
		if err != nil {
			return nil, err
		}
		right, err := clauseLiterals(x.R)
		if err != nil {
			return nil, err
		}

		return append(left, right...), nil
	case *expr.VarExpr:
		return []literal{{name: x.Name}}, nil
	case *expr.NotExpr:
		v, ok := x.X.(*expr.VarExpr)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotClausal, e)
		}

		return []literal{{name: v.Name, negated: true}}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotClausal, e)
	}
}

// number assigns indices to the clause's variables in first-seen order and
// emits the signed clause, deduplicating literals (first occurrence wins).
// A tautological clause returns nil: every variable still receives its
// binding, but the clause itself is omitted from the conjunction.
func (f *Formula) number(lits []literal) []int {
	clause := make([]int, 0, len(lits))
	seen := make(map[int]bool, len(lits))
	tautological := false
	for _, l := range lits {
		idx, ok := f.index[l.name]
		if !ok {
			f.names = append(f.names, l.name)
			idx = len(f.names)
			f.index[l.name] = idx
		}
		signed := idx
		if l.negated {
			signed = -idx
		}
		if seen[-signed] {
			tautological = true
		}
		if seen[signed] {
			continue
		}
		seen[signed] = true
		clause = append(clause, signed)
	}
	if tautological {
		return nil
	}

	return clause
}

// ToExpr reconstructs a balanced expression from f.
//
// The ⊥ placeholder becomes the constant false and the empty conjunction
// becomes the constant true. Otherwise every clause becomes a min-depth Or
// tree over its literals (clause order preserved) and the conjunction a
// min-depth And tree over the clauses. Formulas that violate the Formula
// invariants are rejected with ErrMalformed.
//
// Complexity: O(total literals).
func ToExpr(f *Formula) (expr.Expr, error) {
	if f == nil {
		return nil, ErrNilFormula
	}
	if f.IsContradiction() {
		return expr.False, nil
	}
	if f.IsTautology() {
		return expr.True, nil
	}

	clauses := make([]expr.Expr, len(f.Clauses))
	for i, clause := range f.Clauses {
		if len(clause) == 0 {
			return nil, fmt.Errorf("%w: empty clause", ErrMalformed)
		}
		lits := make([]expr.Expr, len(clause))
		for j, signed := range clause {
			if signed == 0 {
				return nil, fmt.Errorf("%w: zero literal", ErrMalformed)
			}
			name, ok := f.VarOf(abs(signed))
			if !ok {
				return nil, fmt.Errorf("%w: unbound index %d", ErrMalformed, abs(signed))
			}
			if signed > 0 {
				lits[j] = expr.Var(name)
			} else {
				lits[j] = expr.Not(expr.Var(name))
			}
		}
		clauses[i] = balanced(lits, asOr)
	}

	return balanced(clauses, asAnd), nil
}

func asOr(l, r expr.Expr) expr.Expr  { return &expr.OrExpr{L: l, R: r} }
func asAnd(l, r expr.Expr) expr.Expr { return &expr.AndExpr{L: l, R: r} }

// balanced joins the sequence into a min-depth binary tree by splitting at
// the midpoint recursively; the left half takes the extra element when the
// length is odd.
func balanced(es []expr.Expr, join func(l, r expr.Expr) expr.Expr) expr.Expr {
	if len(es) == 1 {
		return es[0]
	}
	mid := (len(es) + 1) / 2

	return join(balanced(es[:mid], join), balanced(es[mid:], join))
}
