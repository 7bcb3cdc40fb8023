package expr

import "strconv"

// rule is a single rewrite law: it returns a rewritten expression when the
// argument matches its pattern and the argument itself otherwise. Rules are
// pure and only inspect structure, never semantics.
type rule func(Expr) Expr

// rewriter drives bottom-up fixpoint rewriting over a fixed rule sequence.
// Results are memoized per subtree, keyed by an injective structural
// rendering, so repeated subexpressions are rewritten once.
type rewriter struct {
	rules []rule
	memo  map[string]Expr
}

// structuralKey renders e injectively: variable names are quoted so they can
// never collide with the fixed connective markers.
func structuralKey(e Expr) string {
	switch x := e.(type) {
	case *ConstExpr:
		if x.Value {
			return "1"
		}

		return "0"
	case *VarExpr:
		return "v" + strconv.Quote(x.Name)
	case *NotExpr:
		return "!(" + structuralKey(x.X) + ")"
	case *AndExpr:
		return "&(" + structuralKey(x.L) + "," + structuralKey(x.R) + ")"
	case *OrExpr:
		return "|(" + structuralKey(x.L) + "," + structuralKey(x.R) + ")"
	}

	return ""
}

func newRewriter(rules []rule) *rewriter {
	return &rewriter{rules: rules, memo: make(map[string]Expr)}
}

// rewrite normalizes e:
//
//  1. children are rewritten first (post-order),
//  2. the rule sequence is applied to the rebuilt node until it no longer
//     changes,
//  3. if step 2 changed anything, the node is re-entered so the new shape
//     exposes further matches in its children.
//
// Every law except distribution strictly reduces a well-founded measure
// (size combined with negation depth), and distribution only fires while an
// or-over-and pattern remains, so the recursion terminates.
func (rw *rewriter) rewrite(e Expr) Expr {
	key := structuralKey(e)
	if cached, ok := rw.memo[key]; ok {
		return cached
	}

	out := rw.step(e)
	rw.memo[key] = out

	return out
}

func (rw *rewriter) step(e Expr) Expr {
	rebuilt := rw.rewriteChildren(e)

	cur := rebuilt
	for {
		next := cur
		for _, r := range rw.rules {
			next = r(next)
		}
		if Equal(next, cur) {
			break
		}
		cur = next
	}

	if !Equal(cur, rebuilt) {
		return rw.rewrite(cur)
	}

	return cur
}

// rewriteChildren rebuilds e with each child normalized. Leaves are returned
// unchanged; composite nodes are reallocated only when a child changed.
func (rw *rewriter) rewriteChildren(e Expr) Expr {
	switch x := e.(type) {
	case *NotExpr:
		sub := rw.rewrite(x.X)
		if sub == x.X {
			return x
		}

		return &NotExpr{X: sub}
	case *AndExpr:
		l, r := rw.rewrite(x.L), rw.rewrite(x.R)
		if l == x.L && r == x.R {
			return x
		}

		return &AndExpr{L: l, R: r}
	case *OrExpr:
		l, r := rw.rewrite(x.L), rw.rewrite(x.R)
		if l == x.L && r == x.R {
			return x
		}

		return &OrExpr{L: l, R: r}
	default:
		return e
	}
}

// Expand applies the simplification laws to e until a fixpoint is reached
// and returns the normalized expression. With opts.Aggressive the
// distribution law joins the sequence, so the result is either a constant or
// a conjunction of disjunctions of literals (the shape consumed by
// cnf.FromExpr); without it the output stays roughly the size of the input.
//
// Expand never changes the meaning of e: Run(e, o) == Run(Expand(e, opts), o)
// for every oracle o.
func Expand(e Expr, opts Options) Expr {
	if e == nil {
		return nil
	}
	rules := simplifyRules
	if opts.Aggressive {
		rules = aggressiveRules
	}

	return newRewriter(rules).rewrite(e)
}
