package parser

import (
	"strings"
	"unicode"

	"knowledgebase/internal/ast"
	kberrors "knowledgebase/internal/errors"
)

// scope tracks the variable names currently bound by an enclosing
// quantifier, innermost last, so a repeated name under nested
// quantifiers is rejected rather than silently shadowed.
type scope struct {
	bound []string
}

func (s *scope) push(name string) error {
	for _, b := range s.bound {
		if b == name {
			return kberrors.New(kberrors.SyntaxError, "variable \""+name+"\" shadows an enclosing quantifier")
		}
	}
	s.bound = append(s.bound, name)
	return nil
}

func (s *scope) pop() {
	s.bound = s.bound[:len(s.bound)-1]
}

func checkSymbol(name string) error {
	if strings.HasPrefix(name, ast.ReservedPrefix) {
		return kberrors.New(kberrors.SyntaxError, "symbol \""+name+"\" uses the reserved \"_\" prefix")
	}
	return nil
}

func isUpperLike(name string) bool {
	r := []rune(name)[0]
	return unicode.IsUpper(r) || unicode.IsDigit(r)
}

func buildFormula(f *Formula, sc *scope) (*ast.Node, error) {
	return buildIff(f.Iff, sc)
}

func buildIff(n *IffExpr, sc *scope) (*ast.Node, error) {
	left, err := buildImplies(n.Left, sc)
	if err != nil {
		return nil, err
	}
	if n.Right == nil {
		return left, nil
	}
	right, err := buildImplies(n.Right, sc)
	if err != nil {
		return nil, err
	}
	return ast.IffNode(left, right), nil
}

func buildImplies(n *ImpliesExpr, sc *scope) (*ast.Node, error) {
	left, err := buildOr(n.Left, sc)
	if err != nil {
		return nil, err
	}
	if n.Right == nil {
		return left, nil
	}
	right, err := buildImplies(n.Right, sc)
	if err != nil {
		return nil, err
	}
	return ast.ImpliesNode(left, right), nil
}

func buildOr(n *OrExpr, sc *scope) (*ast.Node, error) {
	left, err := buildAnd(n.Left, sc)
	if err != nil {
		return nil, err
	}
	if len(n.Right) == 0 {
		return left, nil
	}
	children := []*ast.Node{left}
	for _, r := range n.Right {
		c, err := buildAnd(r, sc)
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	return ast.OrNode(children...), nil
}

func buildAnd(n *AndExpr, sc *scope) (*ast.Node, error) {
	left, err := buildNot(n.Left, sc)
	if err != nil {
		return nil, err
	}
	if len(n.Right) == 0 {
		return left, nil
	}
	children := []*ast.Node{left}
	for _, r := range n.Right {
		c, err := buildNot(r, sc)
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	return ast.AndNode(children...), nil
}

func buildNot(n *NotExpr, sc *scope) (*ast.Node, error) {
	if n.Negation != nil {
		child, err := buildNot(n.Negation, sc)
		if err != nil {
			return nil, err
		}
		return child.Negate(), nil
	}
	return buildEquality(n.Atom, sc)
}

func buildEquality(n *EqualityExpr, sc *scope) (*ast.Node, error) {
	if n.Op == nil {
		return buildFormulaPrimary(n.Left, sc)
	}
	left, err := buildTermPrimary(n.Left, sc)
	if err != nil {
		return nil, err
	}
	right, err := buildTermPrimary(n.Right, sc)
	if err != nil {
		return nil, err
	}
	eq := ast.EqAtom(left, right)
	if *n.Op == "!=" {
		return eq.Negate(), nil
	}
	return eq, nil
}

// buildFormulaPrimary builds p as a formula: a predicate application,
// a parenthesized formula, or a quantified formula. A bare constant or
// variable, or a function application, is not a formula here.
func buildFormulaPrimary(p *Primary, sc *scope) (*ast.Node, error) {
	switch {
	case p.Quantified != nil:
		return buildQuantified(p.Quantified, sc)
	case p.Paren != nil:
		return buildFormula(p.Paren, sc)
	default:
		return buildPredicate(p.Term, sc)
	}
}

// buildTermPrimary builds p as a term: an equality operand, so neither
// a quantified formula nor a parenthesized formula make sense here.
func buildTermPrimary(p *Primary, sc *scope) (*ast.Node, error) {
	if p.Term == nil {
		return nil, kberrors.New(kberrors.IllFormedFormula, "a formula cannot appear as an equality operand")
	}
	return buildTerm(p.Term, sc)
}

func buildQuantified(q *QuantifiedFormula, sc *scope) (*ast.Node, error) {
	for _, item := range q.Quantifiers {
		if err := checkSymbol(item.Var); err != nil {
			return nil, err
		}
		if err := sc.push(item.Var); err != nil {
			return nil, err
		}
	}
	defer func() {
		for range q.Quantifiers {
			sc.pop()
		}
	}()

	body, err := buildFormula(q.Body, sc)
	if err != nil {
		return nil, err
	}

	for i := len(q.Quantifiers) - 1; i >= 0; i-- {
		item := q.Quantifiers[i]
		if item.Kind == "*" {
			body = ast.ForAllNode(item.Var, body)
		} else {
			body = ast.ExistsNode(item.Var, body)
		}
	}
	return body, nil
}

// buildPredicate builds t as a formula-position atom: it must carry an
// explicit (possibly empty) argument list and a lowercase head.
func buildPredicate(t *Term, sc *scope) (*ast.Node, error) {
	if err := checkSymbol(t.Head); err != nil {
		return nil, err
	}
	if t.Args == nil {
		return nil, kberrors.New(kberrors.IllFormedFormula, "bare symbol \""+t.Head+"\" cannot stand alone as a formula")
	}
	if isUpperLike(t.Head) {
		return nil, kberrors.New(kberrors.IllFormedFormula, "\""+t.Head+"\" is capitalized like a function, not a predicate")
	}
	args, err := buildArgs(t.Args, sc)
	if err != nil {
		return nil, err
	}
	return ast.Pred(t.Head, args...), nil
}

// buildTerm builds t as a term: a constant, a variable, or a function
// application (never a predicate application).
func buildTerm(t *Term, sc *scope) (*ast.Node, error) {
	if err := checkSymbol(t.Head); err != nil {
		return nil, err
	}
	if t.Args == nil {
		if isUpperLike(t.Head) {
			return ast.Const(t.Head), nil
		}
		return ast.Var(t.Head), nil
	}
	if !isUpperLike(t.Head) {
		return nil, kberrors.New(kberrors.IllFormedFormula, "\""+t.Head+"\" is lowercase like a predicate, not a function")
	}
	args, err := buildArgs(t.Args, sc)
	if err != nil {
		return nil, err
	}
	return ast.Fn(t.Head, args...), nil
}

func buildArgs(list *ArgList, sc *scope) ([]*ast.Node, error) {
	args := make([]*ast.Node, len(list.Items))
	for i, item := range list.Items {
		arg, err := buildTerm(item, sc)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}
	return args, nil
}
