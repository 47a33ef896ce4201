package kblsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knowledgebase/internal/kblsp"
)

func TestDiagnoseDocumentSkipsBlankAndExitLines(t *testing.T) {
	diags := kblsp.DiagnoseDocument("\nexit\nhelp\nlist\n")
	assert.Empty(t, diags)
}

func TestDiagnoseDocumentAcceptsWellFormedCommands(t *testing.T) {
	diags := kblsp.DiagnoseDocument("axiom man(Socrates)\naxiom *x: man(x) => mortal(x)\nprove mortal(Socrates)\n")
	assert.Empty(t, diags)
}

func TestDiagnoseDocumentFlagsSyntaxError(t *testing.T) {
	diags := kblsp.DiagnoseDocument("axiom p(A\n")
	require.Len(t, diags, 1)
	assert.EqualValues(t, 0, diags[0].Range.Start.Line)
	assert.Contains(t, diags[0].Message, "syntax-error")
}

func TestDiagnoseDocumentFlagsUnknownCommand(t *testing.T) {
	diags := kblsp.DiagnoseDocument("frobnicate p(A)\n")
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "unknown command")
}

func TestDiagnoseDocumentFlagsMissingArgument(t *testing.T) {
	diags := kblsp.DiagnoseDocument("axiom\n")
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "expected 1 argument")
}

func TestDiagnoseDocumentReportsEachBadLineAtItsOwnPosition(t *testing.T) {
	diags := kblsp.DiagnoseDocument("axiom p(A)\naxiom q(B\nprove p(A)\nquery r(C\n")
	require.Len(t, diags, 2)
	assert.EqualValues(t, 1, diags[0].Range.Start.Line)
	assert.EqualValues(t, 3, diags[1].Range.Start.Line)
}
