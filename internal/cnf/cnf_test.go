package cnf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knowledgebase/internal/ast"
	"knowledgebase/internal/cnf"
)

func TestConvertProducesCNF(t *testing.T) {
	x, y, z := ast.Var("x"), ast.Var("y"), ast.Var("z")
	a := ast.Pred("a")
	b := ast.Pred("b")
	pX := ast.Pred("p", x)

	formulas := []*ast.Node{
		ast.ImpliesNode(pX, ast.Pred("q", y)),
		ast.IffNode(pX, ast.Pred("q", y)),
		ast.ImpliesNode(ast.OrNode(a, b), ast.ImpliesNode(pX, ast.Pred("q", y))),

		ast.ForAllNode("x", ast.AndNode(ast.Pred("p", x),
			ast.ForAllNode("y", ast.OrNode(ast.Pred("p", x), ast.Pred("p", y))))),
		ast.ForAllNode("x", ast.AndNode(ast.Pred("p", x),
			ast.ExistsNode("y", ast.OrNode(ast.Pred("p", x), ast.Pred("p", y))))),
		ast.ExistsNode("x", ast.AndNode(ast.Pred("p", x),
			ast.ForAllNode("y", ast.OrNode(ast.Pred("p", x), ast.Pred("p", y))))),

		pX.Negate(),
		ast.AndNode(ast.Pred("p", x), ast.Pred("q", y), ast.Pred("r", z).Negate()),
		ast.OrNode(ast.Pred("p", x), ast.Pred("q", y), ast.Pred("r", z).Negate()),
		ast.AndNode(ast.OrNode(ast.Pred("p", x), ast.Pred("q", y), ast.Pred("r", z).Negate()), ast.OrNode(a.Negate(), b)),
	}

	for i, f := range formulas {
		out, _ := cnf.Convert(f)
		assert.Truef(t, out.IsCNF(), "formula %d (%s) did not convert to CNF: %s", i, f, out)
	}
}

func TestEliminateBiconditionalExpandsToImplicationPair(t *testing.T) {
	a, b := ast.Pred("a"), ast.Pred("b")
	f := ast.IffNode(a, b)

	out, _ := cnf.Convert(f)
	require.True(t, out.IsCNF())

	// a <=> b  ==  (!a | b) & (!b | a), modulo clause/literal order.
	assert.True(t, out.IsConjunction())
	assert.Len(t, out.Children, 2)
}

func TestSkolemizeExistentialWithoutEnclosingUniversalYieldsConstant(t *testing.T) {
	body := ast.Pred("p", ast.Var("x"))
	f := ast.ExistsNode("x", body)

	out, replaced := cnf.Convert(f)

	require.True(t, out.IsPredicate())
	require.Len(t, out.Children, 1)
	assert.True(t, out.Children[0].IsConstant())
	assert.Equal(t, "_C1", out.Children[0].Head)
	assert.Contains(t, replaced, "_C1")
}

func TestSkolemizeExistentialUnderUniversalYieldsFunctionOfIt(t *testing.T) {
	body := ast.Pred("q", ast.Var("a"), ast.Var("x"))
	f := ast.ForAllNode("a", ast.ExistsNode("x", body))

	out, replaced := cnf.Convert(f)

	require.True(t, out.IsPredicate())
	require.Equal(t, "q", out.Head)
	require.Len(t, out.Children, 2)
	assert.True(t, out.Children[0].IsVariable()) // the universal, left free
	skolemTerm := out.Children[1]
	require.True(t, skolemTerm.IsFunction())
	require.Len(t, skolemTerm.Children, 1)
	assert.True(t, ast.Equal(skolemTerm.Children[0], out.Children[0]))
	assert.Contains(t, replaced, skolemTerm.Head)
}

func TestConvertDropsAllQuantifiers(t *testing.T) {
	f := ast.ForAllNode("x", ast.ExistsNode("y", ast.Pred("p", ast.Var("x"), ast.Var("y"))))
	out, _ := cnf.Convert(f)
	assert.False(t, containsQuantifier(out))
}

func containsQuantifier(n *ast.Node) bool {
	if n.Quant != nil {
		return true
	}
	for _, c := range n.Children {
		if containsQuantifier(c) {
			return true
		}
	}
	return false
}

func TestConvertDistributesConjunctionOverDisjunction(t *testing.T) {
	a, b, c := ast.Pred("a"), ast.Pred("b"), ast.Pred("c")
	f := ast.OrNode(ast.AndNode(a, b), c)

	out, _ := cnf.Convert(f)

	require.True(t, out.IsCNF())
	require.True(t, out.IsConjunction())
	assert.Len(t, out.Children, 2)
}

func TestConvertPanicsOnNonFormula(t *testing.T) {
	assert.Panics(t, func() {
		cnf.Convert(ast.Const("A"))
	})
}
