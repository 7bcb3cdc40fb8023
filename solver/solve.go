package solver

import (
	"github.com/katalvlaran/crux/cnf"
)

// Model maps variable names to their truth values in a satisfying
// assignment.
type Model map[string]bool

// Solve decides f with the process-scoped backend and returns a model on
// success. Unsatisfiable formulas yield ErrUnsat; an indecisive backend
// yields ErrUnknown.
//
// Constant formulas are handled without invoking the backend: ⊤ solves to
// the empty model, the ⊥ placeholder to ErrUnsat.
func Solve(f *cnf.Formula) (Model, error) {
	return SolveWith(Current(), f)
}

// SolveWith is Solve with an explicit backend.
func SolveWith(b Backend, f *cnf.Formula) (Model, error) {
	if f == nil {
		return nil, cnf.ErrNilFormula
	}
	if f.IsTautology() {
		return Model{}, nil
	}
	if f.IsContradiction() {
		return nil, ErrUnsat
	}

	res := b.Solve(f.Clauses, f.NumVars())
	switch res.Status {
	case Sat:
		return Decode(f, res.Model), nil
	case Unsat:
		return nil, ErrUnsat
	default:
		return nil, ErrUnknown
	}
}

// Satisfiable reports whether f has at least one model under the
// process-scoped backend.
func Satisfiable(f *cnf.Formula) bool {
	_, err := Solve(f)

	return err == nil
}

// Decode translates a backend model (signed literals over indices) into a
// variable-name model using f's bindings. Synthetic indices without a
// binding are discarded.
func Decode(f *cnf.Formula, lits []int) Model {
	m := make(Model, len(lits))
	for _, lit := range lits {
		name, ok := f.VarOf(abs(lit))
		if !ok {
			continue
		}
		m[name] = lit > 0
	}

	return m
}

// Models enumerates every model of f with the process-scoped backend using
// blocking clauses: each model found is negated and added as a new clause
// until the formula becomes unsatisfiable. Models are returned in discovery
// order.
//
// The loop is bounded by 2^NumVars iterations, the number of distinct
// assignments; each blocking clause has at most NumVars literals.
func Models(f *cnf.Formula) ([]Model, error) {
	return ModelsWith(Current(), f)
}

// ModelsWith is Models with an explicit backend.
func ModelsWith(b Backend, f *cnf.Formula) ([]Model, error) {
	if f == nil {
		return nil, cnf.ErrNilFormula
	}
	if f.IsTautology() {
		return []Model{{}}, nil
	}
	if f.IsContradiction() {
		return nil, nil
	}

	nvars := f.NumVars()
	bound := 1 << uint(min(nvars, 62))
	clauses := append([][]int(nil), f.Clauses...)
	var out []Model
	for i := 0; i < bound; i++ {
		res := b.Solve(clauses, nvars)
		switch res.Status {
		case Unsat:
			return out, nil
		case Unknown:
			return nil, ErrUnknown
		}
		out = append(out, Decode(f, res.Model))
		clauses = append(clauses, blockingClause(res.Model))
	}

	return out, nil
}

// blockingClause negates a model so the next solve must differ in at least
// one variable.
func blockingClause(model []int) []int {
	block := make([]int, len(model))
	for i, lit := range model {
		block[i] = -lit
	}

	return block
}
