package ast

// Substitution maps variable names to the term that replaces them. It
// is the term-level building block the subst and unify packages
// operate on; it lives here (rather than in a separate package) so
// Node.Apply can take one directly, the way Node.apply does in the
// source this was distilled from.
type Substitution map[string]*Node

// Apply returns n with every variable occurrence among its children
// replaced according to s. It does not track quantifier scope, so bound
// occurrences inside a quantified body are replaced too, while the
// Quant node itself is left unchanged. The replacement itself is not recursively substituted again — s is
// assumed already fully resolved by composition (see the subst
// package's Compose).
func (n *Node) Apply(s Substitution) *Node {
	if len(s) == 0 {
		return n
	}
	if n.IsVariable() {
		if repl, ok := s[n.Head]; ok {
			return repl
		}
		return n
	}
	if len(n.Children) == 0 && n.Quant == nil {
		return n
	}
	children := n.Children
	if len(children) > 0 {
		children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			children[i] = c.Apply(s)
		}
	}
	return n.withChildren(children)
}

// OccursIn reports whether variable n occurs as a subterm anywhere
// inside node (directly as a function/predicate argument, or nested
// further down). It panics if n is not a variable, mirroring the
// source's occurs_in precondition.
func (n *Node) OccursIn(node *Node) bool {
	if !n.IsVariable() {
		panic("ast: OccursIn receiver must be a variable")
	}
	if node.IsFunction() || node.IsPredicate() {
		for _, c := range node.Children {
			if c.IsVariable() && c.Head == n.Head {
				return true
			}
		}
	}
	for _, c := range node.Children {
		if n.OccursIn(c) {
			return true
		}
	}
	return false
}
