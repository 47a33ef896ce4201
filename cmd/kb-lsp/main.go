// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"knowledgebase/internal/kblog"
	"knowledgebase/internal/kblsp"
)

const lsName = "knowledgebase"

var version = "0.0.1"

func main() {
	kblog.Configure(kblog.Debug)

	h := kblsp.NewHandler()

	handler := protocol.Handler{
		Initialize:            h.Initialize,
		Initialized:           h.Initialized,
		Shutdown:              h.Shutdown,
		SetTrace:              h.SetTrace,
		TextDocumentDidOpen:   h.TextDocumentDidOpen,
		TextDocumentDidChange: h.TextDocumentDidChange,
		TextDocumentDidClose:  h.TextDocumentDidClose,
	}

	s := server.NewServer(&handler, lsName, false)

	log := kblog.Get("knowledgebase.kblsp")
	log.Info("starting knowledgebase LSP server")

	if err := s.RunStdio(); err != nil {
		log.Errorf("%s", err)
		os.Exit(1)
	}
}
