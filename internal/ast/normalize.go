package ast

import (
	"sort"
	"strings"
)

// Normalize returns the canonical form of n: every associative-
// commutative operator (And, Or, the biconditional, equality) is
// flattened into an n-ary node and its children are sorted by a
// deterministic structural key. Two formulas are semantically
// equivalent up to reordering/re-association iff their canonical forms
// are Equal.
func Normalize(n *Node) *Node {
	n = unfold(n)
	n = sortChildren(n)
	return n
}

// Denormalize folds n-ary foldable nodes back into right-associated
// binary chains, for tree walks (the CNF pipeline) that need to see
// strictly binary shape. Normalize undoes it: Normalize(Denormalize(n))
// equals n for a canonical n. The other direction holds only where the
// input's children are already in sorted order.
func Denormalize(n *Node) *Node {
	return fold(n)
}

// unfold flattens nodes of the same foldable kind+head into their
// parent, bottom-up: (a & b) & c and a & (b & c) both become And(a,b,c).
func unfold(n *Node) *Node {
	children := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		children = append(children, unfold(c))
	}

	if n.isFoldable() {
		flattened := make([]*Node, 0, len(children))
		for _, c := range children {
			if c.Kind == n.Kind && c.Quant == nil && c.Head == n.Head {
				flattened = append(flattened, c.Children...)
			} else {
				flattened = append(flattened, c)
			}
		}
		children = flattened
	}

	return n.withChildren(children)
}

// fold is the inverse of unfold: it re-nests a flattened n-ary foldable
// node into a right-associated binary chain.
func fold(n *Node) *Node {
	children := make([]*Node, len(n.Children))
	for i, c := range n.Children {
		children[i] = fold(c)
	}

	if n.isFoldable() && len(children) > 1 {
		inner := children[len(children)-1]
		for i := len(children) - 2; i >= 0; i-- {
			inner = n.withChildren([]*Node{children[i], inner})
		}
		return inner
	}

	return n.withChildren(children)
}

// sortChildren sorts the children of every sortable node, bottom-up, by
// the deterministic key in compareForSort.
func sortChildren(n *Node) *Node {
	children := make([]*Node, len(n.Children))
	for i, c := range n.Children {
		children[i] = sortChildren(c)
	}

	if n.isSortable() {
		sort.SliceStable(children, func(i, j int) bool {
			return compareForSort(children[i], children[j]) < 0
		})
	}

	return n.withChildren(children)
}

// compareForSort orders two nodes for the purpose of canonical sorting
// only. Not(x) sorts by the key of x (unwrapped, possibly repeatedly)
// so that "a & !b" and "!b & a" agree on b's position regardless of
// which side carries the negation.
func compareForSort(a, b *Node) int {
	a = unwrapNegationForSort(a)
	b = unwrapNegationForSort(b)

	if a.Kind != b.Kind {
		if a.Kind < b.Kind {
			return -1
		}
		return 1
	}

	if (a.Quant == nil) != (b.Quant == nil) {
		// Both are Formulas: an operator formula sorts before a
		// quantified one.
		if a.Quant == nil {
			return -1
		}
		return 1
	}

	if a.Quant != nil {
		// Both are quantified formulas: order by quantifier, then by
		// body below.
		if c := compareForSort(a.Quant, b.Quant); c != 0 {
			return c
		}
	}

	if a.Head != b.Head {
		if a.Head < b.Head {
			return -1
		}
		return 1
	}

	n := len(a.Children)
	if len(b.Children) < n {
		n = len(b.Children)
	}
	for i := 0; i < n; i++ {
		if c := compareForSort(a.Children[i], b.Children[i]); c != 0 {
			return c
		}
	}
	return len(a.Children) - len(b.Children)
}

func unwrapNegationForSort(n *Node) *Node {
	for n.IsNegation() {
		n = n.Children[0]
	}
	return n
}

// Equal reports whether a and b are syntactically identical trees.
// Compare canonical (Normalize'd) forms to test semantic equivalence.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind || a.Head != b.Head {
		return false
	}
	if (a.Quant == nil) != (b.Quant == nil) {
		return false
	}
	if a.Quant != nil && !Equal(a.Quant, b.Quant) {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// Key returns a canonical string encoding of n suitable for use as a
// map key (clause/literal hashing, "already seen" memoization). Callers
// that need canonical equality semantics should Key the Normalize'd
// form; Key itself does not normalize.
func (n *Node) Key() string {
	var b strings.Builder
	n.writeKey(&b)
	return b.String()
}

func (n *Node) writeKey(b *strings.Builder) {
	b.WriteByte('0' + byte(n.Kind))
	b.WriteByte(':')
	if n.Quant != nil {
		b.WriteByte('Q')
		n.Quant.writeKey(b)
	} else {
		b.WriteString(n.Head)
	}
	b.WriteByte('(')
	for i, c := range n.Children {
		if i > 0 {
			b.WriteByte(',')
		}
		c.writeKey(b)
	}
	b.WriteByte(')')
}
