// Package prover saturates a clause set by binary resolution,
// reflexivity resolution and paramodulation until it derives the empty
// clause (a contradiction, meaning the negated goal cannot hold
// alongside the premises, so the goal is entailed) or runs out of new
// clauses to derive (the goal is not entailed).
package prover

import (
	"context"
	"errors"
	"fmt"

	"knowledgebase/internal/ast"
	"knowledgebase/internal/clause"
	"knowledgebase/internal/cnf"
	"knowledgebase/internal/subst"
	"knowledgebase/internal/unify"
)

// ErrNotEntailed is returned once every resolution, reflexivity and
// paramodulation combination has been tried and none produced a new
// clause: the goal does not follow from the premises.
var ErrNotEntailed = errors.New("prover: goal is not entailed by the premises")

// Infer attempts to prove goal from premises by refutation: it adds the
// negated goal to the premises' clauses and saturates, looking for a
// contradiction. On success it returns a substitution binding the
// goal's own free variables (by their original names) to the terms the
// proof found for them — the witness of an existentially-flavored
// query. With no premises it returns an empty substitution at once,
// without checking goal; otherwise it panics if a premise or the goal
// is not a well-formed formula.
func Infer(ctx context.Context, premises []*ast.Node, goal *ast.Node) (ast.Substitution, error) {
	if len(premises) == 0 {
		return ast.Substitution{}, nil
	}
	for _, p := range premises {
		if !p.IsFormula() && !p.IsLiteral() {
			panic("prover: premise is not a well-formed formula")
		}
	}
	if !goal.IsFormula() && !goal.IsLiteral() {
		panic("prover: goal is not a well-formed formula")
	}

	formulas := append(append([]*ast.Node{}, premises...), goal.Negate())
	converted, substs := cnf.ConvertBatch(formulas)
	goalSubst := substs[len(substs)-1]

	var clauses []clause.Clause
	present := map[string]bool{}
	for _, f := range converted {
		for _, c := range clause.FromFormula(f) {
			k := c.Key()
			if !present[k] {
				present[k] = true
				clauses = append(clauses, c)
			}
		}
	}

	answer := ast.Substitution{}
	inputSubst := ast.Substitution{}
	seenResolve := map[string]bool{}
	seenReflex := map[string]bool{}
	seenParamod := map[string]bool{}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		res := attemptRound(&clauses, present, seenResolve, &inputSubst, &answer, 2,
			func(args []clause.Clause) (ast.Substitution, clause.Clause, bool) {
				return resolve(args[0], args[1])
			})
		if res == roundNone {
			res = attemptRound(&clauses, present, seenReflex, &inputSubst, &answer, 1,
				func(args []clause.Clause) (ast.Substitution, clause.Clause, bool) {
					return resolveReflexivity(args[0])
				})
		}
		if res == roundNone {
			res = attemptRound(&clauses, present, seenParamod, &inputSubst, &answer, 2,
				func(args []clause.Clause) (ast.Substitution, clause.Clause, bool) {
					return paramodulate(args[0], args[1])
				})
		}

		switch res {
		case roundRefuted:
			return translateWitness(goalSubst, answer), nil
		case roundRestart:
			continue
		default:
			return nil, ErrNotEntailed
		}
	}
}

// translateWitness maps a substitution keyed by the fresh internal
// names the goal's CNF conversion introduced back to the goal's own
// variable names, so a caller sees "x -> A", never "_v3 -> A".
func translateWitness(goalSubst, answer ast.Substitution) ast.Substitution {
	rv := ast.Substitution{}
	for fresh, original := range goalSubst {
		if !original.IsVariable() {
			panic(fmt.Sprintf("prover: cnf renamed %q to a non-variable", fresh))
		}
		if bound, ok := answer[fresh]; ok {
			rv[original.Head] = bound
		}
	}
	return rv
}

type roundResult int

const (
	roundNone roundResult = iota
	roundRestart
	roundRefuted
)

// attemptRound tries one inference rule (arity 1 for reflexivity, 2 for
// resolution/paramodulation) against every not-yet-tried combination of
// the current clauses. It mutates clauses/present/answer/inputSubst in
// place as it goes, exactly as the original accumulates state across
// attempts within a single pass, whether or not that attempt ultimately
// contributes a new clause.
//
// Unlike the source this is grounded on, "seen" is tracked separately
// per inference rule rather than shared across all of them — sharing
// would let a resolution attempt on a clause pair silently block a
// later paramodulation attempt on that same pair, losing that inference
// when the pair has both a complementary literal and an equality to
// paramodulate with.
func attemptRound(
	clausesPtr *[]clause.Clause,
	present map[string]bool,
	seen map[string]bool,
	inputSubst, answer *ast.Substitution,
	arity int,
	try func(args []clause.Clause) (ast.Substitution, clause.Clause, bool),
) roundResult {
	attempt := func(args []clause.Clause, key string) roundResult {
		if seen[key] {
			return roundNone
		}
		seen[key] = true

		s, inferred, ok := try(args)
		if !ok {
			return roundNone
		}

		*inputSubst = subst.Compose(*inputSubst, s)
		*answer = subst.Compose(*answer, s)

		if inferred.IsEmpty() {
			return roundRefuted
		}
		if present[inferred.Key()] {
			return roundNone // already known; keep scanning other combinations
		}
		present[inferred.Key()] = true
		*clausesPtr = append(*clausesPtr, inferred)
		return roundRestart
	}

	cs := *clausesPtr
	n := len(cs)

	if arity == 1 {
		for i := 0; i < n; i++ {
			if res := attempt([]clause.Clause{cs[i]}, cs[i].Key()); res != roundNone {
				return res
			}
		}
		return roundNone
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			key := cs[i].Key() + "~" + cs[j].Key()
			if res := attempt([]clause.Clause{cs[i], cs[j]}, key); res != roundNone {
				return res
			}
		}
	}
	return roundNone
}

// resolve tries binary resolution between p and q: for some literal x
// in p and y in q that are complementary (one the negation of the
// other), unify their atoms and return the rest of p and q under that
// unifier.
func resolve(p, q clause.Clause) (ast.Substitution, clause.Clause, bool) {
	for _, x := range p.Literals() {
		for _, y := range q.Literals() {
			s, ok := unifyComplementary(x, y)
			if !ok {
				continue
			}
			rv := p.Remove(x.Key()).Union(q.Remove(y.Key()))
			return s, rv.Apply(s), true
		}
	}
	return nil, nil, false
}

func unifyComplementary(x, y *ast.Node) (ast.Substitution, bool) {
	xNeg, yNeg := x.IsNegation(), y.IsNegation()
	if xNeg == yNeg {
		return nil, false
	}
	if xNeg {
		x = x.Children[0]
	} else {
		y = y.Children[0]
	}
	if x.IsEquality() || y.IsEquality() {
		return nil, false
	}
	s, err := unify.Unify(x, y)
	if err != nil {
		return nil, false
	}
	return s, true
}

// resolveReflexivity simplifies a clause carrying a negated equality
// "s != t" by unifying s with t and dropping that literal: whenever s
// and t can be made equal, the disjunction holds vacuously under that
// unifier as far as this literal is concerned.
func resolveReflexivity(c clause.Clause) (ast.Substitution, clause.Clause, bool) {
	for _, lit := range c.Literals() {
		if !lit.IsNegation() {
			continue
		}
		child := lit.Children[0]
		if !child.IsEquality() {
			continue
		}
		s, err := unify.Unify(child.Children[0], child.Children[1])
		if err != nil {
			continue
		}
		return s, c.Remove(lit.Key()).Apply(s), true
	}
	return nil, nil, false
}

// paramodulate rewrites using an equality literal "s = t" found in one
// clause: if some subterm of a literal in the other clause unifies with
// s (or t), that subterm is replaced by t (or s) under the unifier, and
// the rewritten literal is returned together with the other literals of
// both clauses (the equality literal itself is dropped).
func paramodulate(p, q clause.Clause) (ast.Substitution, clause.Clause, bool) {
	for _, dir := range [2][2]clause.Clause{{p, q}, {q, p}} {
		c1, c2 := dir[0], dir[1]

		var eq *ast.Node
		for _, x1 := range c1.Literals() {
			if x1.IsEquality() {
				eq = x1
				break
			}
		}
		if eq == nil {
			continue
		}
		s0, t0 := eq.Children[0], eq.Children[1]

		for _, x2 := range c2.Literals() {
			for _, st := range [2][2]*ast.Node{{s0, t0}, {t0, s0}} {
				s, t := st[0], st[1]
				sub, rewritten, ok := unifyRecursively(s, x2, t)
				if !ok {
					continue
				}
				rv := c1.Remove(eq.Key()).Union(c2.Remove(x2.Key())).Add(rewritten)
				return sub, rv.Apply(sub), true
			}
		}
	}
	return nil, nil, false
}

// unifyRecursively searches target (a literal, so possibly a negated
// atom) for a subterm that unifies with s, trying the atom's arguments
// left to right and, within each argument, its own subterms before the
// argument itself (the atom as a whole is never matched), and returns the unifier together with a copy of
// target with that one occurrence rewritten to replacement.
func unifyRecursively(s, target, replacement *ast.Node) (ast.Substitution, *ast.Node, bool) {
	body := target
	negated := target.IsNegation()
	if negated {
		body = target.Children[0]
	}

	rewritten, sub, ok := rewriteDeepestMatch(s, body, replacement)
	if !ok {
		return nil, nil, false
	}
	if negated {
		rewritten = rewritten.Negate()
	}
	return sub, rewritten, true
}

func rewriteDeepestMatch(s, node, replacement *ast.Node) (*ast.Node, ast.Substitution, bool) {
	for i, child := range node.Children {
		if rewrittenChild, sub, ok := rewriteDeepestMatch(s, child, replacement); ok {
			return withChildAt(node, i, rewrittenChild), sub, true
		}
		if sub, err := unify.Unify(s, child); err == nil {
			return withChildAt(node, i, replacement), sub, true
		}
	}
	return nil, nil, false
}

func withChildAt(n *ast.Node, i int, c *ast.Node) *ast.Node {
	children := make([]*ast.Node, len(n.Children))
	copy(children, n.Children)
	children[i] = c
	return &ast.Node{Kind: n.Kind, Head: n.Head, Quant: n.Quant, Children: children}
}
