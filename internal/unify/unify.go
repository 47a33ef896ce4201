// Package unify implements Robinson's unification algorithm over the
// first-order-logic syntax tree.
package unify

import (
	"errors"
	"fmt"

	"knowledgebase/internal/ast"
	"knowledgebase/internal/subst"
)

// ErrNotUnifiable is returned (wrapped with the conflicting terms) when
// p and q have no unifier.
var ErrNotUnifiable = errors.New("not unifiable")

// Unify computes the most general unifier of p and q, or
// ErrNotUnifiable if none exists.
func Unify(p, q *ast.Node) (ast.Substitution, error) {
	switch {
	case p.IsConstant() && q.IsConstant():
		if p.Head != q.Head {
			return nil, notUnifiable(p, q)
		}
		return ast.Substitution{}, nil

	case p.IsVariable():
		if p.OccursIn(q) {
			return nil, notUnifiable(p, q)
		}
		return ast.Substitution{p.Head: q}, nil

	case q.IsVariable():
		if q.OccursIn(p) {
			return nil, notUnifiable(p, q)
		}
		return ast.Substitution{q.Head: p}, nil

	default:
		if p.Kind != q.Kind || p.Head != q.Head || len(p.Children) != len(q.Children) {
			return nil, notUnifiable(p, q)
		}
		rv := ast.Substitution{}
		for i := range p.Children {
			x := p.Children[i].Apply(rv)
			y := q.Children[i].Apply(rv)
			s, err := Unify(x, y)
			if err != nil {
				return nil, err
			}
			rv = subst.Compose(rv, s)
		}
		return rv, nil
	}
}

func notUnifiable(p, q *ast.Node) error {
	return fmt.Errorf("%w: %s and %s", ErrNotUnifiable, p, q)
}
