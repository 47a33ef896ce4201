package ast

import "strings"

// opRank ranks the six operator tags that participate in
// parenthesization decisions, tightest-binding first: Not, And, Or,
// equality, implication, the biconditional. A node with none of these
// tags (a term, a predicate, a quantified formula) has no rank.
func opRank(n *Node) (int, bool) {
	switch {
	case n.IsNegation():
		return 0, true
	case n.IsConjunction():
		return 1, true
	case n.IsDisjunction():
		return 2, true
	case n.IsEquality():
		return 3, true
	case n.IsImplication():
		return 4, true
	case n.IsEquivalence():
		return 5, true
	default:
		return 0, false
	}
}

// shouldEnclose reports whether child needs parenthesizing when
// printed under self. When both carry a rank, the looser-binding
// operator (higher rank) is parenthesized, and so is an implication in
// any but the last operand position of an implication, since the
// concrete syntax reads an unparenthesized chain right-nested.
// Otherwise (self or child is a term, a predicate, a quantified
// formula, or a bare quantifier) child is parenthesized unless it is
// "obviously atomic": a term, a predicate atom, or a quantified formula
// nested under another quantified formula.
func shouldEnclose(self, child *Node) bool {
	sr, sok := opRank(self)
	cr, cok := opRank(child)
	if sok && cok {
		if self.IsImplication() && child.IsImplication() && child != self.Children[len(self.Children)-1] {
			return true
		}
		return sr < cr
	}
	return !((self.IsQuantified() && child.IsQuantified()) ||
		child.IsConstant() || child.IsVariable() ||
		child.IsFunction() || child.IsPredicate())
}

func enclose(self, child *Node) string {
	if shouldEnclose(self, child) {
		return "(" + child.String() + ")"
	}
	return child.String()
}

func infixStr(self *Node, op string) string {
	parts := make([]string, len(self.Children))
	for i, c := range self.Children {
		parts[i] = enclose(self, c)
	}
	return strings.Join(parts, op)
}

func operatorStr(head string) string {
	switch head {
	case And:
		return "&"
	case Or:
		return "|"
	case Implies:
		return "=>"
	case Equals:
		return "<=>"
	default:
		return head
	}
}

func quantifierStr(tag string) string {
	if tag == ForAll {
		return "*"
	}
	return "?"
}

// String renders n in the concrete surface syntax, parenthesizing a
// child by the rules of shouldEnclose. opRank ranks equality looser
// than Not, And and Or, so an equality under one of those is
// parenthesized even though the parser would read it the same way
// without.
func (n *Node) String() string {
	switch {
	case n.IsConstant(), n.IsVariable():
		return n.Head
	case n.IsEquality():
		return infixStr(n, " = ")
	case n.IsFunction(), n.IsPredicate():
		return n.Head + "(" + infixStr(n, ", ") + ")"
	case n.IsNegation():
		return "!" + enclose(n, n.Children[0])
	case n.IsQuantifierNode():
		return quantifierStr(n.Head) + enclose(n, n.Children[0])
	case n.IsQuantified():
		return quantifierStr(n.QuantifierType()) + n.QuantifiedVariable().Head +
			": " + enclose(n, n.Children[0])
	default: // And, Or, Implies, Equals (biconditional)
		return infixStr(n, " "+operatorStr(n.Head)+" ")
	}
}
