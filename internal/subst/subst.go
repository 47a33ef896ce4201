// Package subst implements substitution composition: combining two
// variable-to-term maps into the single substitution that applying
// them in sequence would produce.
package subst

import "knowledgebase/internal/ast"

// Compose returns the substitution equivalent to applying r and then
// s. Every binding in r has s applied to its replacement term first
// (so chained bindings resolve through s); a binding that collapses to
// the identity (x -> x) after that is dropped. Bindings in s whose
// variable is already bound by r are shadowed by r's (resolved)
// binding, since r was meant to apply first.
func Compose(r, s ast.Substitution) ast.Substitution {
	out := make(ast.Substitution, len(r)+len(s))

	for k, v := range s {
		if _, shadowed := r[k]; !shadowed {
			out[k] = v
		}
	}

	for k, v := range r {
		v = v.Apply(s)
		if v.IsVariable() && v.Head == k {
			continue
		}
		out[k] = v
	}

	return out
}
