package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knowledgebase/internal/ast"
	"knowledgebase/internal/store"
)

func roundTrip(t *testing.T, format store.Format, facts []*ast.Node) []*ast.Node {
	t.Helper()
	data, err := store.Dump(facts, format)
	require.NoError(t, err)
	loaded, err := store.Load(data)
	require.NoError(t, err)
	return loaded
}

func TestRoundTripYAMLSimpleFact(t *testing.T) {
	facts := []*ast.Node{ast.Pred("man", ast.Const("Socrates"))}
	loaded := roundTrip(t, store.YAML, facts)
	require.Len(t, loaded, 1)
	assert.Equal(t, facts[0].Key(), loaded[0].Key())
}

func TestRoundTripJSONSimpleFact(t *testing.T) {
	facts := []*ast.Node{ast.Pred("man", ast.Const("Socrates"))}
	loaded := roundTrip(t, store.JSON, facts)
	require.Len(t, loaded, 1)
	assert.Equal(t, facts[0].Key(), loaded[0].Key())
}

func TestRoundTripQuantifiedFormula(t *testing.T) {
	x := ast.Var("x")
	facts := []*ast.Node{
		ast.ForAllNode("x", ast.ImpliesNode(ast.Pred("man", x), ast.Pred("mortal", x))),
	}
	loaded := roundTrip(t, store.YAML, facts)
	require.Len(t, loaded, 1)
	assert.Equal(t, facts[0].Key(), loaded[0].Key())
	assert.True(t, loaded[0].IsQuantified())
}

func TestRoundTripMultipleFactsPreservesOrder(t *testing.T) {
	facts := []*ast.Node{
		ast.Pred("p", ast.Const("A")),
		ast.Pred("q", ast.Const("B")),
		ast.EqAtom(ast.Const("A"), ast.Const("B")),
	}
	loaded := roundTrip(t, store.JSON, facts)
	require.Len(t, loaded, 3)
	for i := range facts {
		assert.Equal(t, facts[i].Key(), loaded[i].Key())
	}
}

func TestRoundTripEmptyChildrenOmittedButRestorable(t *testing.T) {
	facts := []*ast.Node{ast.Pred("p")}
	loaded := roundTrip(t, store.YAML, facts)
	require.Len(t, loaded, 1)
	assert.Equal(t, facts[0].Key(), loaded[0].Key())
	assert.Empty(t, loaded[0].Children)
}

func TestLoadAcceptsJSONProducedByDump(t *testing.T) {
	facts := []*ast.Node{ast.Pred("man", ast.Const("Socrates"))}
	data, err := store.Dump(facts, store.JSON)
	require.NoError(t, err)

	loaded, err := store.Load(data) // Load doesn't need to be told it's JSON
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, facts[0].Key(), loaded[0].Key())
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	_, err := store.Load(`- Bogus: { Value: "x" }`)
	assert.Error(t, err)
}
