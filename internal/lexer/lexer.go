// Package lexer tokenizes the first-order-logic concrete syntax:
// symbols, the connective and quantifier operators, and grouping
// punctuation.
package lexer

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// FormulaLexer tokenizes a single formula. Longer operators are listed
// ahead of the shorter ones they prefix ("=>" before "=", "!="
// before "!"), matching the lexer's leftmost-alternative matching, so
// the longer operator always wins where both could otherwise apply.
var FormulaLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Ident", `[A-Za-z0-9_][A-Za-z0-9_]*`, nil},
		{"Operator", `(<=>|=>|!=|[!&|=*?:,()])`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
