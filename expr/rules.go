package expr

// The algebraic laws, one rule each. Every pattern is matched structurally
// (via Equal) in both operand orders; commutativity is never applied on its
// own. The driver reapplies the whole sequence until the node stops
// changing, so constants folded by one law are seen by the others on the
// next pass.
var simplifyRules = []rule{
	constNegation,
	doubleNegation,
	deMorgan,
	domination,
	identity,
	complement,
	idempotent,
	absorption,
}

// aggressiveRules additionally distributes disjunctions over conjunctions,
// used by the CNF conversion.
var aggressiveRules = append(append([]rule{}, simplifyRules...), distribute)

func isConst(e Expr, v bool) bool {
	c, ok := e.(*ConstExpr)
	return ok && c.Value == v
}

// constNegation: ¬⊤ → ⊥, ¬⊥ → ⊤.
func constNegation(e Expr) Expr {
	n, ok := e.(*NotExpr)
	if !ok {
		return e
	}
	if c, ok := n.X.(*ConstExpr); ok {
		if c.Value {
			return False
		}

		return True
	}

	return e
}

// doubleNegation: ¬¬a → a.
func doubleNegation(e Expr) Expr {
	n, ok := e.(*NotExpr)
	if !ok {
		return e
	}
	if inner, ok := n.X.(*NotExpr); ok {
		return inner.X
	}

	return e
}

// deMorgan: ¬(a ∧ b) → ¬a ∨ ¬b and ¬(a ∨ b) → ¬a ∧ ¬b.
func deMorgan(e Expr) Expr {
	n, ok := e.(*NotExpr)
	if !ok {
		return e
	}
	switch x := n.X.(type) {
	case *AndExpr:
		return &OrExpr{L: &NotExpr{X: x.L}, R: &NotExpr{X: x.R}}
	case *OrExpr:
		return &AndExpr{L: &NotExpr{X: x.L}, R: &NotExpr{X: x.R}}
	}

	return e
}

// domination: a ∧ ⊥ → ⊥ and a ∨ ⊤ → ⊤, either operand order.
func domination(e Expr) Expr {
	switch x := e.(type) {
	case *AndExpr:
		if isConst(x.L, false) || isConst(x.R, false) {
			return False
		}
	case *OrExpr:
		if isConst(x.L, true) || isConst(x.R, true) {
			return True
		}
	}

	return e
}

// identity: a ∧ ⊤ → a and a ∨ ⊥ → a, either operand order.
func identity(e Expr) Expr {
	switch x := e.(type) {
	case *AndExpr:
		if isConst(x.L, true) {
			return x.R
		}
		if isConst(x.R, true) {
			return x.L
		}
	case *OrExpr:
		if isConst(x.L, false) {
			return x.R
		}
		if isConst(x.R, false) {
			return x.L
		}
	}

	return e
}

// complement: a ∧ ¬a → ⊥ and a ∨ ¬a → ⊤, either operand order.
func complement(e Expr) Expr {
	switch x := e.(type) {
	case *AndExpr:
		if complementary(x.L, x.R) {
			return False
		}
	case *OrExpr:
		if complementary(x.L, x.R) {
			return True
		}
	}

	return e
}

func complementary(a, b Expr) bool {
	if n, ok := b.(*NotExpr); ok && Equal(a, n.X) {
		return true
	}
	if n, ok := a.(*NotExpr); ok && Equal(n.X, b) {
		return true
	}

	return false
}

// idempotent: a ∧ a → a and a ∨ a → a.
func idempotent(e Expr) Expr {
	switch x := e.(type) {
	case *AndExpr:
		if Equal(x.L, x.R) {
			return x.L
		}
	case *OrExpr:
		if Equal(x.L, x.R) {
			return x.L
		}
	}

	return e
}

// absorption: a ∧ (a ∨ b) → a and a ∨ (a ∧ b) → a, matching every operand
// order of both the outer and the inner connective.
func absorption(e Expr) Expr {
	switch x := e.(type) {
	case *AndExpr:
		if o, ok := x.R.(*OrExpr); ok && (Equal(x.L, o.L) || Equal(x.L, o.R)) {
			return x.L
		}
		if o, ok := x.L.(*OrExpr); ok && (Equal(x.R, o.L) || Equal(x.R, o.R)) {
			return x.R
		}
	case *OrExpr:
		if a, ok := x.R.(*AndExpr); ok && (Equal(x.L, a.L) || Equal(x.L, a.R)) {
			return x.L
		}
		if a, ok := x.L.(*AndExpr); ok && (Equal(x.R, a.L) || Equal(x.R, a.R)) {
			return x.R
		}
	}

	return e
}

// distribute rewrites a disjunction with a conjunctive operand into a
// conjunction of smaller disjunctions. A conjunctive right operand is split
// first, higher child leading; a conjunctive left operand is split in place:
//
//	a ∨ (b ∧ c) → (a ∨ c) ∧ (a ∨ b)
//	(a ∧ b) ∨ c → (a ∨ c) ∧ (b ∨ c)
//
// Applied to a fixpoint together with De Morgan and double negation this
// yields a conjunction of disjunctions of literals.
func distribute(e Expr) Expr {
	o, ok := e.(*OrExpr)
	if !ok {
		return e
	}
	if a, ok := o.R.(*AndExpr); ok {
		return &AndExpr{
			L: &OrExpr{L: o.L, R: a.R},
			R: &OrExpr{L: o.L, R: a.L},
		}
	}
	if a, ok := o.L.(*AndExpr); ok {
		return &AndExpr{
			L: &OrExpr{L: a.L, R: o.R},
			R: &OrExpr{L: a.R, R: o.R},
		}
	}

	return e
}
