// Package kblog gives the knowledge base one place to configure and
// obtain loggers from, so the facade, REPL, CLI and language server
// all log through the same leveled backend instead of each reaching
// for log.Printf on its own.
package kblog

import (
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

// Verbosity mirrors the CLI's -v/-vv flags: 0 is warnings and above,
// 1 is info and above, 2 is debug and above.
type Verbosity int

const (
	Quiet Verbosity = iota
	Verbose
	Debug
)

// Configure wires up the process-wide logging backend. Call it once,
// from main, before any call to Get.
func Configure(v Verbosity) {
	commonlog.Configure(int(v), nil)
}

// Get returns the named logger, scoped the way commonlog expects
// ("knowledgebase.kb", "knowledgebase.parser", ...), so log output can
// be filtered or routed per component.
func Get(scope string) commonlog.Logger {
	return commonlog.GetLogger(scope)
}
