// Package clause represents a conjunctive-normal-form formula as a set
// of clauses, each a set of literals, mirroring the frozenset-of-
// frozensets representation the inference engine reasons over.
package clause

import (
	"sort"
	"strings"

	"knowledgebase/internal/ast"
)

// Clause is an unordered set of literals, keyed by each literal's
// canonical string so that the same literal added twice, or the same
// set built in a different order, collapses to one clause.
type Clause map[string]*ast.Node

// New builds a clause from the given literals.
func New(literals ...*ast.Node) Clause {
	c := make(Clause, len(literals))
	for _, l := range literals {
		c[l.Key()] = l
	}
	return c
}

// Literals returns the clause's literals in no particular order.
func (c Clause) Literals() []*ast.Node {
	out := make([]*ast.Node, 0, len(c))
	for _, l := range c {
		out = append(out, l)
	}
	return out
}

// Add returns a copy of c with l included.
func (c Clause) Add(l *ast.Node) Clause {
	out := make(Clause, len(c)+1)
	for k, v := range c {
		out[k] = v
	}
	out[l.Key()] = l
	return out
}

// Remove returns a copy of c without the literal carrying the given key.
func (c Clause) Remove(key string) Clause {
	out := make(Clause, len(c))
	for k, v := range c {
		if k != key {
			out[k] = v
		}
	}
	return out
}

// Union returns the clause containing every literal of c and other.
func (c Clause) Union(other Clause) Clause {
	out := make(Clause, len(c)+len(other))
	for k, v := range c {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Apply substitutes s into every literal of c, re-keying the result (a
// substitution can turn two previously-distinct literals into the same
// one, which must then collapse).
func (c Clause) Apply(s ast.Substitution) Clause {
	out := make(Clause, len(c))
	for _, l := range c {
		applied := l.Apply(s)
		out[applied.Key()] = applied
	}
	return out
}

// IsEmpty reports whether c has no literals — the empty clause, the
// refutation's "box" symbol, standing for a derived contradiction.
func (c Clause) IsEmpty() bool {
	return len(c) == 0
}

// Key returns a canonical string identifying this clause's literal set,
// independent of insertion order, for use as a map key when
// deduplicating clauses.
func (c Clause) Key() string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, "|")
}

// FromFormula extracts the clauses of a formula already in conjunctive
// normal form: a top-level conjunction of clauses, a single disjunctive
// clause, or a single literal.
func FromFormula(f *ast.Node) []Clause {
	if f.IsConjunction() {
		out := make([]Clause, len(f.Children))
		for i, c := range f.Children {
			out[i] = clauseOf(c)
		}
		return out
	}
	return []Clause{clauseOf(f)}
}

func clauseOf(n *ast.Node) Clause {
	if n.IsDisjunction() {
		return New(n.Children...)
	}
	return New(n)
}
