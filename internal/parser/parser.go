// Package parser turns the first-order-logic concrete syntax into an
// ast.Node, rejecting reserved symbol names and shadowed quantified
// variables as syntax errors rather than papering over them.
package parser

import (
	"sync"

	"github.com/alecthomas/participle/v2"

	"knowledgebase/internal/ast"
	kberrors "knowledgebase/internal/errors"
	"knowledgebase/internal/lexer"
)

var (
	buildOnce     sync.Once
	formulaParser *participle.Parser[Formula]
	buildErr      error
)

func parserInstance() (*participle.Parser[Formula], error) {
	buildOnce.Do(func() {
		formulaParser, buildErr = participle.Build[Formula](
			participle.Lexer(lexer.FormulaLexer),
			participle.Elide("Whitespace"),
			participle.UseLookahead(3),
		)
	})
	return formulaParser, buildErr
}

// Parse parses a single formula from its concrete syntax, returning a
// kberrors.KBError of kind SyntaxError or IllFormedFormula on failure.
func Parse(source string) (*ast.Node, error) {
	p, err := parserInstance()
	if err != nil {
		return nil, err
	}

	parsed, err := p.ParseString("", source)
	if err != nil {
		return nil, kberrors.New(kberrors.SyntaxError, err.Error())
	}

	return buildFormula(parsed, &scope{})
}
