// Package dtree defines the decision-tree type and build options.
package dtree

import "strings"

// Tree is a binary decision tree. A node is either a leaf carrying a
// constant truth value (Var == "", Lo == Hi == nil) or an internal node
// testing Var, with Lo taken when Var is false and Hi when Var is true.
type Tree struct {
	// Var is the tested variable; empty at a leaf.
	Var string

	// Value is the leaf's truth value; meaningful only when Var is empty.
	Value bool

	// Lo and Hi are the false- and true-branches of an internal node.
	Lo, Hi *Tree
}

// Leaf returns a constant leaf.
func Leaf(value bool) *Tree {
	return &Tree{Value: value}
}

// IsLeaf reports whether t is a constant leaf.
func (t *Tree) IsLeaf() bool { return t.Var == "" }

// Equal reports structural equality of two trees.
func (t *Tree) Equal(other *Tree) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.IsLeaf() != other.IsLeaf() {
		return false
	}
	if t.IsLeaf() {
		return t.Value == other.Value
	}

	return t.Var == other.Var && t.Lo.Equal(other.Lo) && t.Hi.Equal(other.Hi)
}

// String renders the tree in node(var, lo, hi) notation with ⊤/⊥ leaves.
func (t *Tree) String() string {
	var b strings.Builder
	t.render(&b)

	return b.String()
}

func (t *Tree) render(b *strings.Builder) {
	if t.IsLeaf() {
		if t.Value {
			b.WriteString("⊤")
		} else {
			b.WriteString("⊥")
		}

		return
	}
	b.WriteString("node(")
	b.WriteString(t.Var)
	b.WriteString(", ")
	t.Lo.render(b)
	b.WriteString(", ")
	t.Hi.render(b)
	b.WriteString(")")
}

// Options configures Build.
//
// Fields:
//
//	Conflicts - reports that two variables cannot both be true; symmetric
//	            (both argument orders are consulted). A true-branch that
//	            would violate it becomes a ⊥ leaf. nil means no conflicts.
//	Sorter    - strict "less" ordering choosing the next variable to test.
//	            nil uses binding order (first appearance in the formula).
type Options struct {
	Conflicts func(u, v string) bool
	Sorter    func(a, b string) bool
}

// DefaultOptions returns an Options with no conflicts and binding-order
// variable selection.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) conflicts(u, v string) bool {
	return o.Conflicts != nil && (o.Conflicts(u, v) || o.Conflicts(v, u))
}
