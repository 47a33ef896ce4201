package unify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knowledgebase/internal/ast"
	"knowledgebase/internal/unify"
)

func TestUnify(t *testing.T) {
	x, y := ast.Var("x"), ast.Var("y")
	a, b, c := ast.Var("a"), ast.Var("b"), ast.Var("c")
	p, q := ast.Const("P"), ast.Const("Q")
	capA := ast.Const("A")

	h := func(args ...*ast.Node) *ast.Node { return ast.Fn("H", args...) }
	g := func(args ...*ast.Node) *ast.Node { return ast.Fn("G", args...) }
	j := func(args ...*ast.Node) *ast.Node { return ast.Fn("J", args...) }

	tests := []struct {
		name       string
		p, q       *ast.Node
		unifiable  bool
		expect     ast.Substitution
	}{
		{"equal constants", p, p, true, ast.Substitution{}},
		{"distinct constants", p, q, false, nil},

		{"same variable", x, x, true, ast.Substitution{"x": x}},
		{"distinct variables", x, y, true, ast.Substitution{"x": y}},
		{"variable with constant", x, p, true, ast.Substitution{"x": p}},

		{"constant vs function", p, h(p), false, nil},
		{"constant vs function, different const", p, h(q), false, nil},
		{"constant vs function of variable", p, h(x), false, nil},

		{"occurs check, variable in function", x, h(x), false, nil},
		{"occurs check, function in variable", h(x), x, false, nil},
		{"variable with function of other variable", x, h(y), true, ast.Substitution{"x": h(y)}},
		{"variable with function of constant", x, h(p), true, ast.Substitution{"x": h(p)}},

		{"occurs check, nested function", x, g(h(x)), false, nil},
		{"arity mismatch", h(x, y), h(a, b, c), false, nil},

		{
			"compound unification with shared variable",
			g(x, j(x), h(capA)),
			g(capA, j(capA), y),
			true,
			ast.Substitution{"x": capA, "y": h(capA)},
		},
		{"simple function unification", h(x), h(a), true, ast.Substitution{"x": a}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := unify.Unify(tt.p, tt.q)
			if !tt.unifiable {
				require.ErrorIs(t, err, unify.ErrNotUnifiable)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, len(tt.expect))
			for k, v := range tt.expect {
				require.Contains(t, got, k)
				assert.True(t, ast.Equal(got[k], v), "substitution for %q: got %s, want %s", k, got[k], v)
			}

			// Applying the unifier to both sides should yield identical terms.
			assert.True(t, ast.Equal(tt.p.Apply(got), tt.q.Apply(got)))
		})
	}
}
