package kblsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	kberrors "knowledgebase/internal/errors"
	"knowledgebase/internal/parser"
)

var commands = map[string]bool{
	"axiom": true,
	"lemma": true,
	"prove": true,
	"query": true,
}

// DiagnoseDocument re-parses every line of a .kb document and returns
// one diagnostic per syntax error or ill-formed-formula error, at that
// line's position. Blank lines and the exit, help and list commands
// are skipped.
func DiagnoseDocument(text string) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for i, line := range strings.Split(text, "\n") {
		if d, ok := diagnoseLine(line); ok {
			d.Range.Start.Line = uint32(i)
			d.Range.End.Line = uint32(i)
			diagnostics = append(diagnostics, d)
		}
	}

	return diagnostics
}

func diagnoseLine(line string) (protocol.Diagnostic, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return protocol.Diagnostic{}, false
	}

	command, rest, _ := strings.Cut(trimmed, " ")
	command = strings.ToLower(command)
	rest = strings.TrimSpace(rest)

	if command == "exit" || command == "help" || command == "list" {
		return protocol.Diagnostic{}, false
	}

	if !commands[command] {
		return lineDiagnostic(line, "unknown command "+command), true
	}
	if rest == "" {
		return lineDiagnostic(line, "expected 1 argument"), true
	}

	if _, err := parser.Parse(rest); err != nil {
		return lineDiagnostic(line, messageOf(err)), true
	}

	return protocol.Diagnostic{}, false
}

func messageOf(err error) string {
	if kbErr, ok := err.(*kberrors.KBError); ok {
		return kbErr.Error()
	}
	return err.Error()
}

func lineDiagnostic(line, message string) protocol.Diagnostic {
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Character: 0},
			End:   protocol.Position{Character: uint32(len(line))},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("knowledgebase"),
		Message:  message,
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity { return &s }

func ptrString(s string) *string { return &s }
