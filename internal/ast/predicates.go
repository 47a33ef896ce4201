package ast

// IsConstant reports whether n is a constant symbol.
func (n *Node) IsConstant() bool { return n.Kind == KindConstant }

// IsVariable reports whether n is a variable symbol.
func (n *Node) IsVariable() bool { return n.Kind == KindVariable }

// IsFunction reports whether n is a function term.
func (n *Node) IsFunction() bool { return n.Kind == KindFunction }

// IsPredicate reports whether n is a predicate atom.
func (n *Node) IsPredicate() bool { return n.Kind == KindPredicate }

// IsFormula reports whether n is a formula (operator or quantified).
func (n *Node) IsFormula() bool { return n.Kind == KindFormula }

// IsQuantifierNode reports whether n is a bare Quantifier node (only
// ever found embedded in a Formula's Quant field).
func (n *Node) IsQuantifierNode() bool { return n.Kind == KindQuantifier }

// IsTerm reports whether n is a constant, variable, or function term.
func (n *Node) IsTerm() bool {
	return n.IsConstant() || n.IsVariable() || n.IsFunction()
}

// IsEquality reports whether n is the equality atom "a = b".
func (n *Node) IsEquality() bool {
	return n.IsFunction() && n.Head == EqualityHead
}

// IsAtom reports whether n is a predicate atom (including equality,
// which is represented as a reserved Function but is semantically an
// atom: "a predicate applied to terms").
func (n *Node) IsAtom() bool {
	return n.IsPredicate() || n.IsEquality()
}

// IsLiteral reports whether n is an atom or a negated atom.
func (n *Node) IsLiteral() bool {
	if n.IsAtom() {
		return true
	}
	return n.IsNegation() && n.Children[0].IsAtom()
}

// IsNegation reports whether n is an (operator) negation.
func (n *Node) IsNegation() bool {
	return n.IsFormula() && n.Quant == nil && n.Head == Not
}

// IsConjunction reports whether n is an (operator) conjunction.
func (n *Node) IsConjunction() bool {
	return n.IsFormula() && n.Quant == nil && n.Head == And
}

// IsDisjunction reports whether n is an (operator) disjunction.
func (n *Node) IsDisjunction() bool {
	return n.IsFormula() && n.Quant == nil && n.Head == Or
}

// IsImplication reports whether n is an (operator) implication.
func (n *Node) IsImplication() bool {
	return n.IsFormula() && n.Quant == nil && n.Head == Implies
}

// IsEquivalence reports whether n is an (operator) biconditional.
func (n *Node) IsEquivalence() bool {
	return n.IsFormula() && n.Quant == nil && n.Head == Equals
}

// IsQuantified reports whether n is a quantified formula.
func (n *Node) IsQuantified() bool {
	return n.IsFormula() && n.Quant != nil
}

// QuantifierType returns ForAll or Exists for a quantified formula or a
// bare Quantifier node; it panics on any other Kind, since callers are
// expected to check IsQuantified/IsQuantifierNode first.
func (n *Node) QuantifierType() string {
	switch {
	case n.IsQuantified():
		return n.Quant.Head
	case n.IsQuantifierNode():
		return n.Head
	default:
		panic("ast: node is not a quantifier, neither a quantified formula")
	}
}

// QuantifiedVariable returns the bound variable of a quantified formula
// or a bare Quantifier node; it panics on any other Kind.
func (n *Node) QuantifiedVariable() *Node {
	switch {
	case n.IsQuantified():
		return n.Quant.Children[0]
	case n.IsQuantifierNode():
		return n.Children[0]
	default:
		panic("ast: node is not a quantifier, neither a quantified formula")
	}
}

// isFoldable reports whether n's children are flattened in canonical
// form: And, Or, Implies, the biconditional Equals, and equality all
// fold. Implies is not actually associative: unfold splices a nested
// implication in either operand position, and fold always rebuilds a
// right-nested chain, so a right-nested chain round-trips while a
// left-nested one such as (a => b) => c comes back as a => (b => c).
func (n *Node) isFoldable() bool {
	return n.IsConjunction() || n.IsDisjunction() || n.IsImplication() ||
		n.IsEquivalence() || n.IsEquality()
}

// isSortable reports whether n's children are sorted in canonical form:
// the commutative heads And, Or, Equals and equality. Implies is
// foldable but not sortable: its operands do not commute.
func (n *Node) isSortable() bool {
	return n.IsConjunction() || n.IsDisjunction() || n.IsEquivalence() || n.IsEquality()
}

// IsCNF reports whether n is in conjunctive normal form: a conjunction
// of clauses, a single clause, or a single literal.
func (n *Node) IsCNF() bool {
	return n.isCNFConjunction() || n.isCNFDisjunction() || n.IsLiteral()
}

func (n *Node) isCNFConjunction() bool {
	if !n.IsConjunction() {
		return false
	}
	for _, c := range n.Children {
		if !(c.isCNFDisjunction() || c.IsLiteral()) {
			return false
		}
	}
	return true
}

func (n *Node) isCNFDisjunction() bool {
	if !n.IsDisjunction() {
		return false
	}
	for _, c := range n.Children {
		if !c.IsLiteral() {
			return false
		}
	}
	return true
}
