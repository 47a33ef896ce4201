// SPDX-License-Identifier: Apache-2.0
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"knowledgebase/internal/kb"
	"knowledgebase/internal/kblog"
	"knowledgebase/internal/store"
	"knowledgebase/repl"
)

func main() {
	var verbose, veryVerbose bool
	var persistPath string
	var format string
	flag.BoolVar(&verbose, "v", false, "verbose logging")
	flag.BoolVar(&veryVerbose, "vv", false, "debug logging")
	flag.StringVar(&persistPath, "persist", "", "load facts from this path at startup and save on clean shutdown")
	flag.StringVar(&format, "format", "yaml", "persistence format on save: yaml or json")
	flag.Parse()

	kblog.Configure(verbosityOf(verbose, veryVerbose))

	base := kb.New()
	if persistPath != "" {
		if err := loadPersisted(base, persistPath); err != nil {
			color.Red("Failed to load %s: %s", persistPath, err)
			os.Exit(1)
		}
	}

	repl.Start(context.Background(), os.Stdin, os.Stdout, base)

	if persistPath == "" {
		os.Exit(0)
	}

	saveFormat, err := formatOf(format)
	if err != nil {
		color.Red("%s", err)
		os.Exit(1)
	}
	if err := savePersisted(base, persistPath, saveFormat); err != nil {
		color.Red("Failed to save %s: %s", persistPath, err)
		os.Exit(1)
	}
	color.Green("✅ Saved knowledge base to %s", persistPath)
}

func verbosityOf(verbose, veryVerbose bool) kblog.Verbosity {
	switch {
	case veryVerbose:
		return kblog.Debug
	case verbose:
		return kblog.Verbose
	default:
		return kblog.Quiet
	}
}

func formatOf(format string) (store.Format, error) {
	switch strings.ToLower(format) {
	case "", "yaml":
		return store.YAML, nil
	case "json":
		return store.JSON, nil
	default:
		return store.YAML, fmt.Errorf("unknown -format %q: want yaml or json", format)
	}
}

func loadPersisted(base *kb.KnowledgeBase, path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	facts, err := store.Load(string(data))
	if err != nil {
		return err
	}
	base.LoadFacts(facts)
	return nil
}

func savePersisted(base *kb.KnowledgeBase, path string, format store.Format) error {
	data, err := store.Dump(base.Facts(), format)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(data), 0o644)
}
