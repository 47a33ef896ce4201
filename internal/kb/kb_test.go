package kb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knowledgebase/internal/ast"
	"knowledgebase/internal/kb"
)

func TestAddAxiomAppendsUnconditionally(t *testing.T) {
	base := kb.New()
	f := ast.Pred("man", ast.Const("Socrates"))
	base.AddAxiom(f)

	require.Len(t, base.Facts(), 1)
	assert.Equal(t, f.Key(), base.Facts()[0].Key())
}

func TestAddLemmaOnlyAddsWhenProven(t *testing.T) {
	x := ast.Var("x")
	base := kb.New()
	base.AddAxiom(ast.ForAllNode("x", ast.ImpliesNode(ast.Pred("man", x), ast.Pred("mortal", x))))
	base.AddAxiom(ast.Pred("man", ast.Const("Socrates")))

	ok, err := base.AddLemma(context.Background(), ast.Pred("mortal", ast.Const("Socrates")))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, base.Facts(), 3)

	ok, err = base.AddLemma(context.Background(), ast.Pred("mortal", ast.Const("Plato")))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, base.Facts(), 3) // unproven lemma was not appended
}

func TestProveReportsEntailment(t *testing.T) {
	base := kb.New()
	base.AddAxiom(ast.Pred("p", ast.Const("A")))

	ok, err := base.Prove(context.Background(), ast.Pred("p", ast.Const("A")))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = base.Prove(context.Background(), ast.Pred("q", ast.Const("Z")))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestQueryReturnsWitness(t *testing.T) {
	x := ast.Var("x")
	base := kb.New()
	base.AddAxiom(ast.ForAllNode("x", ast.ImpliesNode(ast.Pred("emperor", x), ast.Pred("ruler", x))))
	base.AddAxiom(ast.Pred("emperor", ast.Const("Caesar")))

	witness, ok, err := base.Query(context.Background(), ast.Pred("ruler", ast.Var("y")))
	require.NoError(t, err)
	require.True(t, ok)
	require.Contains(t, witness, "y")
	assert.Equal(t, "Caesar", witness["y"].Head)
}

func TestQueryFailsWhenNotEntailed(t *testing.T) {
	base := kb.New()
	base.AddAxiom(ast.Pred("p", ast.Const("A")))

	witness, ok, err := base.Query(context.Background(), ast.Pred("q", ast.Var("y")))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, witness)
}

func TestLoadFactsReplacesFactList(t *testing.T) {
	base := kb.New()
	base.AddAxiom(ast.Pred("p", ast.Const("A")))

	loaded := []*ast.Node{ast.Pred("q", ast.Const("B")), ast.Pred("r", ast.Const("C"))}
	base.LoadFacts(loaded)

	require.Len(t, base.Facts(), 2)
	assert.Equal(t, "q", base.Facts()[0].Head)
}

func TestFactsSnapshotIsIndependentOfInternalState(t *testing.T) {
	base := kb.New()
	base.AddAxiom(ast.Pred("p", ast.Const("A")))

	snapshot := base.Facts()
	base.AddAxiom(ast.Pred("q", ast.Const("B")))

	assert.Len(t, snapshot, 1)
	assert.Len(t, base.Facts(), 2)
}
