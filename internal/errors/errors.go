// Package errors gives the rest of the module one structured error
// type to report through: a parser failure, an ill-formed formula
// handed to the CNF pipeline, or a prover outcome worth explaining to
// a caller. Internal recoverable conditions (a failed unification
// attempt, a dead end in the saturation loop) stay as the sentinel
// errors unify and prover already define; they only get wrapped into
// a KBError at the boundary where a human — the REPL, the CLI, a log
// line — is going to read about them.
package errors

import (
	"fmt"

	"github.com/fatih/color"

	"knowledgebase/internal/ast"
)

// Kind classifies a KBError. Only SyntaxError and IllFormedFormula are
// meant to reach a caller outside internal/prover: the other three
// name the same recoverable, try-the-next-candidate conditions that
// internal/unify and internal/prover already model as plain sentinel
// errors, and exist here only so a caller that does want to surface
// one (logging a failed proof attempt, say) can tag it consistently.
type Kind string

const (
	SyntaxError            Kind = "syntax-error"
	IllFormedFormula       Kind = "ill-formed-formula"
	NotUnifiable           Kind = "not-unifiable"
	NotInferableAtThisStep Kind = "not-inferable-at-this-step"
	ProverExhausted        Kind = "prover-exhausted"
)

// KBError is a one-line, formula-carrying error. It never embeds
// source text or environment state beyond the formulas involved —
// those are the only payload a log line or a REPL transcript needs.
type KBError struct {
	Kind     Kind
	Message  string
	Formulas []*ast.Node
	Cause    error
}

// New builds a KBError of the given kind.
func New(kind Kind, message string, formulas ...*ast.Node) *KBError {
	return &KBError{Kind: kind, Message: message, Formulas: formulas}
}

// Wrap builds a KBError that attributes its message to an underlying
// cause (typically unify.ErrNotUnifiable or prover.ErrNotEntailed),
// so Unwrap still lets a caller errors.Is against the original.
func Wrap(kind Kind, cause error, formulas ...*ast.Node) *KBError {
	return &KBError{Kind: kind, Message: cause.Error(), Formulas: formulas, Cause: cause}
}

func (e *KBError) Error() string {
	if len(e.Formulas) == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	parts := make([]string, len(e.Formulas))
	for i, f := range e.Formulas {
		parts[i] = f.String()
	}
	return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, joinFormulas(parts))
}

func (e *KBError) Unwrap() error {
	return e.Cause
}

func joinFormulas(parts []string) string {
	out := parts[0]
	for _, p := range parts[1:] {
		out += ", " + p
	}
	return out
}

// Recoverable reports whether Kind names one of the internal,
// try-the-next-candidate conditions rather than one meant to abort an
// operation and surface to a human.
func (k Kind) Recoverable() bool {
	return k == NotUnifiable || k == NotInferableAtThisStep || k == ProverExhausted
}

// Render formats e the way the REPL and CLI print a failure: a single
// colored line, the level-appropriate color matching the kind.
func Render(e *KBError) string {
	levelColor := color.New(color.FgRed, color.Bold).SprintFunc()
	if e.Kind.Recoverable() {
		levelColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	}
	return fmt.Sprintf("%s: %s", levelColor(string(e.Kind)), e.Message)
}
