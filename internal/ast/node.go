// Package ast implements the immutable first-order-logic syntax tree:
// terms, atoms, formulas and quantifiers, plus the structural
// normalization that gives semantically-equivalent formulas a shared
// canonical form.
package ast

import "fmt"

// Kind discriminates the shape of a Node. It is the tagged-union
// discriminant: every Node carries exactly one Kind, and the legal
// values of Head, Quant and Children depend on it.
type Kind uint8

const (
	KindConstant Kind = iota
	KindVariable
	KindFunction
	KindPredicate
	KindFormula
	KindQuantifier
)

func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "Constant"
	case KindVariable:
		return "Variable"
	case KindFunction:
		return "Function"
	case KindPredicate:
		return "Predicate"
	case KindFormula:
		return "Formula"
	case KindQuantifier:
		return "Quantifier"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Formula operator tags, held in Node.Head when Kind == KindFormula and
// the formula is not quantified (Quant == nil).
const (
	Not     = "Not"
	And     = "And"
	Or      = "Or"
	Implies = "Implies"
	Equals  = "Equals" // biconditional
)

// Quantifier tags, held in Node.Head when Kind == KindQuantifier.
const (
	ForAll = "ForAll"
	Exists = "Exists"
)

// EqualityHead is the reserved Function head representing first-order
// equality: Equality(a, b) prints as "a = b". It lives in the reserved
// namespace (see ReservedPrefix) so user input can never construct it
// directly; only EqAtom and parsed "=" syntax produce it.
const EqualityHead = ReservedPrefix + "Eq"

// ReservedPrefix marks symbol names generated by the prover (fresh
// variables, Skolem constants/functions, and the equality marker). The
// concrete-syntax parser rejects this prefix from user input so the two
// namespaces never collide.
const ReservedPrefix = "_"

// Node is an immutable first-order-logic syntax tree node.
//
// Legal shapes:
//
//	Kind          Head                          Children
//	Constant      symbol (uppercase/digit led)  none
//	Variable      symbol (lowercase led)         none
//	Function      symbol, or EqualityHead        >=1 terms
//	Predicate     symbol (lowercase led)         >=1 terms
//	Quantifier    ForAll or Exists               exactly 1 Variable
//	Formula       Not/And/Or/Implies/Equals,     Not/quantified: 1 child
//	              or "" when Quant != nil        others: >=2 children
//
// A Formula whose Quant field is set is a quantified formula; it binds
// exactly the variable carried by Quant, and its single child (the
// body) lives in Children[0]. This is the Go rendering of the tagged
// union called for by the specification: Quant being non-nil is itself
// the discriminant, so no runtime type assertion is needed to tell a
// quantified formula apart from an operator formula.
type Node struct {
	Kind     Kind
	Head     string
	Quant    *Node
	Children []*Node
}

// Const builds a constant symbol.
func Const(name string) *Node {
	return &Node{Kind: KindConstant, Head: name}
}

// Var builds a variable symbol.
func Var(name string) *Node {
	return &Node{Kind: KindVariable, Head: name}
}

// Fn builds a function term.
func Fn(name string, args ...*Node) *Node {
	return &Node{Kind: KindFunction, Head: name, Children: args}
}

// Pred builds a predicate atom.
func Pred(name string, args ...*Node) *Node {
	return &Node{Kind: KindPredicate, Head: name, Children: args}
}

// EqAtom builds the equality atom "a = b".
func EqAtom(a, b *Node) *Node {
	return Fn(EqualityHead, a, b)
}

// NotNode builds a negation.
func NotNode(child *Node) *Node {
	return &Node{Kind: KindFormula, Head: Not, Children: []*Node{child}}
}

// AndNode builds a (possibly n-ary) conjunction.
func AndNode(children ...*Node) *Node {
	return &Node{Kind: KindFormula, Head: And, Children: children}
}

// OrNode builds a (possibly n-ary) disjunction.
func OrNode(children ...*Node) *Node {
	return &Node{Kind: KindFormula, Head: Or, Children: children}
}

// ImpliesNode builds an implication a => b.
func ImpliesNode(a, b *Node) *Node {
	return &Node{Kind: KindFormula, Head: Implies, Children: []*Node{a, b}}
}

// IffNode builds a biconditional a <=> b.
func IffNode(a, b *Node) *Node {
	return &Node{Kind: KindFormula, Head: Equals, Children: []*Node{a, b}}
}

// quantifier builds the embedded Quantifier node carried by Node.Quant.
func quantifier(tag, varName string) *Node {
	return &Node{Kind: KindQuantifier, Head: tag, Children: []*Node{Var(varName)}}
}

// NewQuantifier builds a bare Quantifier node over varName. Exported
// for rewrite passes (the CNF pipeline's variable-standardization and
// Skolemization stages) that must swap in a freshly renamed quantifier
// while leaving everything else about the enclosing formula alone.
func NewQuantifier(tag, varName string) *Node {
	return quantifier(tag, varName)
}

// FormulaWithQuant builds a quantified formula directly from an
// already-built Quantifier node and a body, for the same rewrite-pass
// use case as NewQuantifier.
func FormulaWithQuant(quant *Node, body *Node) *Node {
	return &Node{Kind: KindFormula, Quant: quant, Children: []*Node{body}}
}

// ForAllNode builds a universally quantified formula "*varName: body".
func ForAllNode(varName string, body *Node) *Node {
	return &Node{Kind: KindFormula, Quant: quantifier(ForAll, varName), Children: []*Node{body}}
}

// ExistsNode builds an existentially quantified formula "?varName: body".
func ExistsNode(varName string, body *Node) *Node {
	return &Node{Kind: KindFormula, Quant: quantifier(Exists, varName), Children: []*Node{body}}
}

// Negate returns the logical negation of n: if n is already a negation
// it strips the Not, otherwise it wraps n in one.
func (n *Node) Negate() *Node {
	if n.IsNegation() {
		return n.Children[0]
	}
	return NotNode(n)
}

// withChildren returns a shallow copy of n with Children replaced.
// Used by rewrite passes that reconstruct a node around transformed
// children without mutating the original (Nodes are never mutated in
// place).
func (n *Node) withChildren(children []*Node) *Node {
	return &Node{Kind: n.Kind, Head: n.Head, Quant: n.Quant, Children: children}
}

// withQuant returns a shallow copy of n with Quant replaced.
func (n *Node) withQuant(q *Node) *Node {
	return &Node{Kind: n.Kind, Head: n.Head, Quant: q, Children: n.Children}
}
