package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knowledgebase/internal/ast"
	"knowledgebase/internal/parser"
)

func TestParsePredicateWithConstantArgument(t *testing.T) {
	got, err := parser.Parse("man(Socrates)")
	require.NoError(t, err)
	want := ast.Pred("man", ast.Const("Socrates"))
	assert.Equal(t, want.Key(), got.Key())
}

func TestParseFunctionApplication(t *testing.T) {
	got, err := parser.Parse("p(F(A))")
	require.NoError(t, err)
	want := ast.Pred("p", ast.Fn("F", ast.Const("A")))
	assert.Equal(t, want.Key(), got.Key())
}

func TestParseAndBindsTighterThanOr(t *testing.T) {
	got, err := parser.Parse("p(A) & q(B) | r(C)")
	require.NoError(t, err)
	want := ast.OrNode(
		ast.AndNode(ast.Pred("p", ast.Const("A")), ast.Pred("q", ast.Const("B"))),
		ast.Pred("r", ast.Const("C")),
	)
	assert.Equal(t, want.Key(), got.Key())
}

func TestParseImpliesIsRightAssociative(t *testing.T) {
	got, err := parser.Parse("p() => q() => r()")
	require.NoError(t, err)
	want := ast.ImpliesNode(ast.Pred("p"), ast.ImpliesNode(ast.Pred("q"), ast.Pred("r")))
	assert.Equal(t, want.Key(), got.Key())
}

func TestParseEqualityAndNegatedEquality(t *testing.T) {
	got, err := parser.Parse("A = B")
	require.NoError(t, err)
	assert.Equal(t, ast.EqAtom(ast.Const("A"), ast.Const("B")).Key(), got.Key())

	got, err = parser.Parse("x != F(A)")
	require.NoError(t, err)
	want := ast.EqAtom(ast.Var("x"), ast.Fn("F", ast.Const("A"))).Negate()
	assert.Equal(t, want.Key(), got.Key())
}

func TestParseQuantifierWrapsWholeImplication(t *testing.T) {
	got, err := parser.Parse("*x: man(x) => mortal(x)")
	require.NoError(t, err)
	x := ast.Var("x")
	want := ast.ForAllNode("x", ast.ImpliesNode(ast.Pred("man", x), ast.Pred("mortal", x)))
	assert.Equal(t, want.Key(), got.Key())
}

func TestParseNestedQuantifierList(t *testing.T) {
	got, err := parser.Parse("*x, ?y: p(x, y)")
	require.NoError(t, err)
	x, y := ast.Var("x"), ast.Var("y")
	want := ast.ForAllNode("x", ast.ExistsNode("y", ast.Pred("p", x, y)))
	assert.Equal(t, want.Key(), got.Key())
}

func TestParseDoubleNegation(t *testing.T) {
	got, err := parser.Parse("!!p(A)")
	require.NoError(t, err)
	want := ast.Pred("p", ast.Const("A")).Negate().Negate()
	assert.Equal(t, want.Key(), got.Key())
}

func TestParseRejectsReservedUnderscorePrefix(t *testing.T) {
	_, err := parser.Parse("*_x: p(_x)")
	assert.Error(t, err)
}

func TestParseRejectsShadowedQuantifiedVariable(t *testing.T) {
	_, err := parser.Parse("*x: ?x: p(x)")
	assert.Error(t, err)
}

func TestParseRejectsBareConstantAsFormula(t *testing.T) {
	_, err := parser.Parse("A")
	assert.Error(t, err)
}

func TestParseRejectsUppercaseHeadAsPredicate(t *testing.T) {
	_, err := parser.Parse("P(A)")
	assert.Error(t, err)
}

func TestParseRejectsPredicateAsEqualityOperand(t *testing.T) {
	_, err := parser.Parse("p(A) = q(B)")
	assert.Error(t, err)
}

func TestParseRejectsGarbageSyntax(t *testing.T) {
	_, err := parser.Parse("p(A) &&")
	assert.Error(t, err)
}
