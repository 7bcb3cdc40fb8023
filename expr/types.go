// Package expr defines configuration options and sentinel errors
// for expression evaluation and simplification.
package expr

import "errors"

// Sentinel errors for evaluation.
var (
	// ErrNilExpr is returned when a nil expression is evaluated.
	ErrNilExpr = errors.New("expr: nil expression")

	// ErrUnknownVar may be returned by oracles passed to Run when asked
	// for a variable they do not bind. Run propagates it unchanged.
	ErrUnknownVar = errors.New("expr: unknown variable")
)

// Options configures Expand.
//
// Fields:
//
//	Aggressive - when true, distribution (a ∨ (b ∧ c) → (a∨c) ∧ (a∨b)) is
//	             applied alongside the size-reducing laws, driving the
//	             expression toward conjunctive normal form. Distribution can
//	             grow the result exponentially, so it is off by default and
//	             enabled only by the CNF conversion.
type Options struct {
	Aggressive bool
}

// DefaultOptions returns an Options with safe defaults:
//
//	Aggressive: false  // size-reducing laws only
func DefaultOptions() Options {
	return Options{Aggressive: false}
}
