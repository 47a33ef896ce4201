// Package kb is the facade a caller — the REPL, the CLI, the language
// server — actually talks to: a flat list of facts (axioms and proven
// lemmas), with proving and querying delegated to internal/prover.
package kb

import (
	"context"

	"github.com/tliron/commonlog"

	"knowledgebase/internal/ast"
	"knowledgebase/internal/kblog"
	"knowledgebase/internal/prover"
)

// KnowledgeBase holds a growing set of facts and proves or queries
// formulas against them. Facts are appended only through AddAxiom and
// AddLemma; nothing here is safe for concurrent mutation, matching the
// single-threaded, synchronous core this is a facade over.
type KnowledgeBase struct {
	facts []*ast.Node
	log   commonlog.Logger
}

// New returns an empty knowledge base.
func New() *KnowledgeBase {
	return &KnowledgeBase{log: kblog.Get("knowledgebase.kb")}
}

// Facts returns a read-only snapshot of every axiom and lemma added so
// far, in the order they were added.
func (kb *KnowledgeBase) Facts() []*ast.Node {
	out := make([]*ast.Node, len(kb.facts))
	copy(out, kb.facts)
	return out
}

// LoadFacts replaces the knowledge base's fact list wholesale, for
// reconstructing one from persisted state. It does not re-verify any
// fact: a loaded lemma is trusted, not re-proven.
func (kb *KnowledgeBase) LoadFacts(facts []*ast.Node) {
	kb.facts = append([]*ast.Node{}, facts...)
}

// AddAxiom appends f unconditionally.
func (kb *KnowledgeBase) AddAxiom(f *ast.Node) {
	kb.facts = append(kb.facts, f)
	kb.log.Infof("axiom added: %s", f)
}

// AddLemma appends f only if it follows from the facts already
// present, proving it first. It reports whether f was added.
func (kb *KnowledgeBase) AddLemma(ctx context.Context, f *ast.Node) (bool, error) {
	ok, err := kb.Prove(ctx, f)
	if err != nil {
		return false, err
	}
	if ok {
		kb.facts = append(kb.facts, f)
		kb.log.Infof("lemma proven and added: %s", f)
	} else {
		kb.log.Infof("lemma not proven, not added: %s", f)
	}
	return ok, nil
}

// Prove reports whether f is entailed by the facts on hand.
func (kb *KnowledgeBase) Prove(ctx context.Context, f *ast.Node) (bool, error) {
	_, err := prover.Infer(ctx, kb.facts, f)
	if err == prover.ErrNotEntailed {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Query proves f and, if it succeeds, returns the witness substitution
// binding f's free variables to the terms the proof found for them.
// The zero-value substitution and false are returned if f does not
// follow from the facts on hand.
func (kb *KnowledgeBase) Query(ctx context.Context, f *ast.Node) (ast.Substitution, bool, error) {
	witness, err := prover.Infer(ctx, kb.facts, f)
	if err == prover.ErrNotEntailed {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return witness, true, nil
}
