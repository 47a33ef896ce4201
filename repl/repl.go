// Package repl implements the line-oriented command loop over a
// knowledge base: help, list, axiom, lemma, prove, query.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"knowledgebase/internal/ast"
	kberrors "knowledgebase/internal/errors"
	"knowledgebase/internal/kb"
	"knowledgebase/internal/parser"
)

const prompt = ">> "

const helpText = `Commands:
  help             show this text
  list             list every axiom and lemma
  axiom <formula>  add a formula unconditionally
  lemma <formula>  add a formula iff it can be proven
  prove <formula>  report whether the formula is entailed
  query <formula>  report whether the formula is entailed, with a witness
  exit             leave the REPL cleanly`

// Start runs the command loop, reading from in and writing prompts
// and results to out, until in is exhausted or an "exit" command is
// read. Either way counts as a clean shutdown.
func Start(ctx context.Context, in io.Reader, out io.Writer, base *kb.KnowledgeBase) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return
		}
		if !dispatch(ctx, scanner.Text(), out, base) {
			return
		}
	}
}

// dispatch runs one line and reports whether the loop should continue.
func dispatch(ctx context.Context, line string, out io.Writer, base *kb.KnowledgeBase) bool {
	command, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	command = strings.ToLower(command)
	rest = strings.TrimSpace(rest)

	switch command {
	case "":
		return true

	case "exit":
		return false

	case "help":
		fmt.Fprintln(out, helpText)

	case "list":
		for _, f := range base.Facts() {
			fmt.Fprintln(out, f)
		}

	case "axiom":
		f, ok := parseArg(rest, out)
		if !ok {
			return true
		}
		base.AddAxiom(f)
		fmt.Fprintln(out, "Axiom was added to the knowledge base.")

	case "lemma":
		f, ok := parseArg(rest, out)
		if !ok {
			return true
		}
		proven, err := base.AddLemma(ctx, f)
		if err != nil {
			fmt.Fprintln(out, renderErr(err))
			return true
		}
		if proven {
			fmt.Fprintln(out, "Lemma was proven and was added to the knowledge base.")
		} else {
			fmt.Fprintln(out, "Lemma was not proven and was not added to the knowledge base.")
		}

	case "prove":
		f, ok := parseArg(rest, out)
		if !ok {
			return true
		}
		entailed, err := base.Prove(ctx, f)
		if err != nil {
			fmt.Fprintln(out, renderErr(err))
			return true
		}
		if entailed {
			fmt.Fprintln(out, "Formula is entailed by the knowledge base.")
		} else {
			fmt.Fprintln(out, "Formula is not entailed by the knowledge base.")
		}

	case "query":
		f, ok := parseArg(rest, out)
		if !ok {
			return true
		}
		witness, ok, err := base.Query(ctx, f)
		if err != nil {
			fmt.Fprintln(out, renderErr(err))
			return true
		}
		if !ok {
			fmt.Fprintln(out, "Formula is not entailed by the knowledge base.")
			return true
		}
		if len(witness) == 0 {
			fmt.Fprintln(out, "Formula is entailed, with no witness bindings.")
			return true
		}
		for name, term := range witness {
			fmt.Fprintf(out, "%s = %s\n", name, term)
		}

	default:
		fmt.Fprintf(out, "Unknown command %q. Type \"help\" for the command list.\n", command)
	}

	return true
}

func parseArg(rest string, out io.Writer) (*ast.Node, bool) {
	if rest == "" {
		fmt.Fprintln(out, "Expected 1 argument")
		return nil, false
	}
	f, err := parser.Parse(rest)
	if err != nil {
		fmt.Fprintln(out, renderErr(err))
		return nil, false
	}
	return f, true
}

func renderErr(err error) string {
	if kbErr, ok := err.(*kberrors.KBError); ok {
		return kberrors.Render(kbErr)
	}
	return err.Error()
}
