// Package cnf converts a well-formed first-order formula into
// conjunctive normal form: eliminate the biconditional and the
// implication, push negations down to the literals, give every
// quantified and free variable a unique name, Skolemize and drop the
// quantifiers, then distribute conjunction over disjunction.
package cnf

import (
	"strings"

	"knowledgebase/internal/ast"
	"knowledgebase/internal/subst"
)

// Convert rewrites f into CNF. It also returns the substitution
// recording every symbol the pipeline introduced (renamed bound and
// free variables, Skolem constants and functions) mapped back to the
// original variable it stands in for, useful for explaining a proof in
// terms of the user's own symbols.
func Convert(f *ast.Node) (*ast.Node, ast.Substitution) {
	return convertWithGen(f, &nameGenerator{})
}

// ConvertBatch converts every formula in formulas, sharing a single
// name generator across all of them so that fresh variable, constant
// and Skolem-function names stay unique across the whole batch, not
// just within each formula. Callers reasoning over several formulas
// together (a set of premises and a query, say) need this: converting
// each independently would risk two unrelated formulas reusing the
// same fresh name for two different original variables.
func ConvertBatch(formulas []*ast.Node) ([]*ast.Node, []ast.Substitution) {
	gen := &nameGenerator{}
	outs := make([]*ast.Node, len(formulas))
	substs := make([]ast.Substitution, len(formulas))
	for i, f := range formulas {
		outs[i], substs[i] = convertWithGen(f, gen)
	}
	return outs, substs
}

func convertWithGen(f *ast.Node, gen *nameGenerator) (*ast.Node, ast.Substitution) {
	// A bare literal (a ground or variable-carrying fact, with no
	// connective) is accepted too: it is already in CNF, a one-literal
	// clause, so every pass below is a no-op on it. Rejecting it here
	// would force callers to wrap every simple fact ("man(Socrates)")
	// in a trivial connective before it could become an axiom.
	if !f.IsFormula() && !f.IsLiteral() {
		panic("cnf: Convert requires a formula or a literal")
	}

	node := ast.Denormalize(f)
	rv := ast.Substitution{}

	passes := []ast.WalkFunc{
		eliminateBiconditional,
		eliminateImplication,
		propagateNegation,
		standardizeQuantifiedVariables(gen),
		standardizeFreeVariables(gen),
		skolemize(gen),
		distributeConjunction,
	}

	for _, pass := range passes {
		ctx := ast.NewWalkContext()
		node = ast.Walk(node, pass, ctx)

		replaced, _ := ctx.Global["replaced"].(ast.Substitution)
		for k := range replaced {
			if _, clash := rv[k]; clash {
				panic("cnf: fresh name collided across passes: " + k)
			}
		}
		rv = subst.Compose(replaced, rv)
	}

	node = ast.Normalize(node)
	if !node.IsCNF() {
		panic("cnf: pipeline did not converge to a CNF formula")
	}
	return node, rv
}

// eliminateBiconditional rewrites "a <=> b" into "(a => b) & (b => a)".
func eliminateBiconditional(n *ast.Node, _ *ast.WalkContext) *ast.Node {
	if !n.IsEquivalence() {
		return n
	}
	a, b := n.Children[0], n.Children[1]
	return ast.AndNode(ast.ImpliesNode(a, b), ast.ImpliesNode(b, a))
}

// eliminateImplication rewrites "a => b" into "!a | b".
func eliminateImplication(n *ast.Node, _ *ast.WalkContext) *ast.Node {
	if !n.IsImplication() {
		return n
	}
	a, b := n.Children[0], n.Children[1]
	return ast.OrNode(a.Negate(), b)
}

// propagateNegation pushes a negation down one level: cancels a double
// negation, applies De Morgan to And/Or, and flips a quantifier
// (negated ForAll becomes a negated-body Exists and vice versa).
func propagateNegation(n *ast.Node, _ *ast.WalkContext) *ast.Node {
	if !n.IsNegation() {
		return n
	}
	child := n.Children[0]

	switch {
	case child.IsNegation():
		return child.Children[0]

	case child.IsConjunction():
		return ast.OrNode(negateAll(child.Children)...)

	case child.IsDisjunction():
		return ast.AndNode(negateAll(child.Children)...)

	case child.IsQuantified():
		flipped := ast.Exists
		if child.QuantifierType() == ast.Exists {
			flipped = ast.ForAll
		}
		quant := ast.NewQuantifier(flipped, child.QuantifiedVariable().Head)
		return ast.FormulaWithQuant(quant, child.Children[0].Negate())

	default:
		return n
	}
}

func negateAll(children []*ast.Node) []*ast.Node {
	out := make([]*ast.Node, len(children))
	for i, c := range children {
		out[i] = c.Negate()
	}
	return out
}

// renamePair records that the bound or free variable named old is, for
// the remainder of the enclosing scope, printed/read as new.
type renamePair struct {
	old, new string
}

// standardizeQuantifiedVariables renames every quantified variable to a
// fresh name unique across the whole formula, so that no two
// quantifiers anywhere bind the same symbol. Shadowing is resolved by
// always renaming to the innermost (most recently pushed) binding.
func standardizeQuantifiedVariables(gen *nameGenerator) ast.WalkFunc {
	return func(n *ast.Node, ctx *ast.WalkContext) *ast.Node {
		seen := seenSet(ctx)
		replaced := replacedSubst(ctx)

		if seen[n.Key()] {
			return n
		}

		switch {
		case n.IsQuantified():
			old := n.QuantifiedVariable().Head
			if strings.HasPrefix(old, ast.ReservedPrefix) {
				return n // already standardized
			}

			newName := gen.variable()
			quant := ast.NewQuantifier(n.QuantifierType(), newName)
			rv := ast.FormulaWithQuant(quant, n.Children[0])

			replaced[newName] = n.QuantifiedVariable()
			ctx.Scope = append(ctx.Scope, renamePair{old: old, new: newName})
			seen[rv.Key()] = true
			return rv

		case n.IsVariable():
			for i := len(ctx.Scope) - 1; i >= 0; i-- {
				if p, ok := ctx.Scope[i].(renamePair); ok && p.old == n.Head {
					rv := ast.Var(p.new)
					seen[rv.Key()] = true
					return rv
				}
			}
			return n

		default:
			return n
		}
	}
}

// standardizeFreeVariables renames every remaining (necessarily free,
// since standardizeQuantifiedVariables already handled every bound
// one) variable to a fresh name, the same fresh name for every
// occurrence of the same original symbol anywhere in the formula.
func standardizeFreeVariables(gen *nameGenerator) ast.WalkFunc {
	return func(n *ast.Node, ctx *ast.WalkContext) *ast.Node {
		seen := seenSet(ctx)
		replaced := replacedSubst(ctx)

		if seen[n.Key()] || !n.IsVariable() {
			return n
		}

		old := n.Head
		if strings.HasPrefix(old, ast.ReservedPrefix) {
			return n
		}

		newName := ""
		for k, v := range replaced {
			if v.Head == old {
				newName = k
				break
			}
		}
		if newName == "" {
			newName = gen.variable()
			replaced[newName] = n
		}

		rv := ast.Var(newName)
		seen[rv.Key()] = true
		return rv
	}
}

// universalPush marks that a universally quantified variable is now in
// enclosing scope, for any existential further down to Skolemize over.
type universalPush string

// replacementPush records a Skolem substitution for the rest of its
// quantifier's scope.
type replacementPush struct {
	old string
	new *ast.Node
}

// skolemize replaces each existentially quantified variable with a
// Skolem constant (if no universal encloses it) or a Skolem function of
// every enclosing universal variable (if some do), then drops every
// quantifier — universal variables are left free, to be implicitly
// universally quantified from here on.
func skolemize(gen *nameGenerator) ast.WalkFunc {
	return func(n *ast.Node, ctx *ast.WalkContext) *ast.Node {
		replaced := replacedSubst(ctx)

		switch {
		case n.IsQuantified():
			qv := n.QuantifiedVariable()

			if n.QuantifierType() == ast.ForAll {
				ctx.Scope = append(ctx.Scope, universalPush(qv.Head))
			} else {
				universal := enclosingUniversals(ctx.Scope)
				var term *ast.Node
				var name string
				if len(universal) > 0 {
					name = gen.function()
					args := make([]*ast.Node, len(universal))
					for i, u := range universal {
						args[i] = ast.Var(u)
					}
					term = ast.Fn(name, args...)
				} else {
					name = gen.constant()
					term = ast.Const(name)
				}
				replaced[name] = qv
				ctx.Scope = append(ctx.Scope, replacementPush{old: qv.Head, new: term})
			}
			return n.Children[0]

		case n.IsVariable():
			for i := len(ctx.Scope) - 1; i >= 0; i-- {
				if r, ok := ctx.Scope[i].(replacementPush); ok && r.old == n.Head {
					return r.new
				}
			}
			return n

		default:
			return n
		}
	}
}

func enclosingUniversals(scope []any) []string {
	var out []string
	for _, e := range scope {
		if u, ok := e.(universalPush); ok {
			out = append(out, string(u))
		}
	}
	return out
}

// distributeConjunction rewrites "(a & b) | c" into "(a | c) & (b | c)".
// Repeated application (driven by Walk's per-node fixpoint loop, and
// its descent into the rewritten children) distributes arbitrarily
// nested conjunctions out to the top.
func distributeConjunction(n *ast.Node, _ *ast.WalkContext) *ast.Node {
	if !n.IsDisjunction() {
		return n
	}
	for i, child := range n.Children {
		if !child.IsConjunction() {
			continue
		}
		other := otherChild(n.Children, i)
		a, b := child.Children[0], child.Children[1]
		return ast.AndNode(ast.OrNode(a, other), ast.OrNode(b, other))
	}
	return n
}

func otherChild(children []*ast.Node, idx int) *ast.Node {
	for i, c := range children {
		if i != idx {
			return c
		}
	}
	panic("cnf: disjunction has fewer than 2 children")
}

func seenSet(ctx *ast.WalkContext) map[string]bool {
	s, ok := ctx.Global["seen"].(map[string]bool)
	if !ok {
		s = map[string]bool{}
		ctx.Global["seen"] = s
	}
	return s
}

func replacedSubst(ctx *ast.WalkContext) ast.Substitution {
	r, ok := ctx.Global["replaced"].(ast.Substitution)
	if !ok {
		r = ast.Substitution{}
		ctx.Global["replaced"] = r
	}
	return r
}
