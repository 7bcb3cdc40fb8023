// Package cnf defines the Formula type, its sentinel errors and the
// package logger.
package cnf

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for formula construction and conversion.
var (
	// ErrNilFormula is returned when a nil *Formula is passed in.
	ErrNilFormula = errors.New("cnf: formula is nil")

	// ErrMalformed indicates an empty clause, a zero literal, or a literal
	// referencing an index without a binding (outside the ⊥ placeholder).
	ErrMalformed = errors.New("cnf: malformed formula")

	// ErrNotClausal indicates that an expression did not normalize to a
	// conjunction of disjunctions of literals. It signals a bug in the
	// simplification rules rather than bad caller input.
	ErrNotClausal = errors.New("cnf: expression did not normalize to clausal form")
)

// explosionThreshold is the clause count above which FromExpr warns that
// distribution has blown up the formula.
const explosionThreshold = 100

var log logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the logger used for the clause-explosion warning.
// Passing nil keeps the current logger.
func SetLogger(l logrus.FieldLogger) {
	if l != nil {
		log = l
	}
}

// Formula is an immutable CNF formula: a conjunction of clauses, each a
// non-empty disjunction of non-zero signed literals, plus the one-to-one
// mapping between variable indices (from 1) and variable names.
//
// The zero-clause Formula means ⊤. The canonical ⊥ is the placeholder
// produced by Contradiction: clauses [[1], [-1]] with no bindings.
type Formula struct {
	// Clauses holds the conjunction, in conversion order. Callers must not
	// mutate it.
	Clauses [][]int

	names []string       // names[i] is the variable bound to index i+1
	index map[string]int // inverse of names
}

// Tautology returns the canonical ⊤ formula: no clauses, no bindings.
func Tautology() *Formula {
	return &Formula{index: make(map[string]int)}
}

// Contradiction returns the canonical ⊥ formula: the trivially
// unsatisfiable placeholder [[1], [-1]] over a synthetic, unbound index.
func Contradiction() *Formula {
	return &Formula{
		Clauses: [][]int{{1}, {-1}},
		index:   make(map[string]int),
	}
}

// New builds a Formula from explicit clauses and the variable names bound to
// indices 1..len(vars). It rejects empty clauses, zero literals, literals
// outside the bindings and duplicate names with ErrMalformed.
//
// Complexity: O(total literals).
func New(clauses [][]int, vars []string) (*Formula, error) {
	f := &Formula{
		Clauses: clauses,
		names:   append([]string(nil), vars...),
		index:   make(map[string]int, len(vars)),
	}
	for i, name := range f.names {
		if _, dup := f.index[name]; dup {
			return nil, ErrMalformed
		}
		f.index[name] = i + 1
	}
	for _, clause := range clauses {
		if len(clause) == 0 {
			return nil, ErrMalformed
		}
		for _, lit := range clause {
			if lit == 0 || abs(lit) > len(f.names) {
				return nil, ErrMalformed
			}
		}
	}

	return f, nil
}

// IsTautology reports whether f is the empty conjunction ⊤.
func (f *Formula) IsTautology() bool {
	return len(f.Clauses) == 0
}

// IsContradiction reports whether f is the canonical ⊥ placeholder.
func (f *Formula) IsContradiction() bool {
	return len(f.names) == 0 &&
		len(f.Clauses) == 2 &&
		len(f.Clauses[0]) == 1 && f.Clauses[0][0] == 1 &&
		len(f.Clauses[1]) == 1 && f.Clauses[1][0] == -1
}

// NumVars returns the number of bound variables.
func (f *Formula) NumVars() int { return len(f.names) }

// VarOf returns the variable name bound to index i.
func (f *Formula) VarOf(i int) (string, bool) {
	if i < 1 || i > len(f.names) {
		return "", false
	}

	return f.names[i-1], true
}

// IndexOf returns the index bound to the variable name.
func (f *Formula) IndexOf(name string) (int, bool) {
	i, ok := f.index[name]

	return i, ok
}

// Vars returns the variable names in binding order (index 1 first).
func (f *Formula) Vars() []string {
	return append([]string(nil), f.names...)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
