// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"solidus/internal/codegen"
	"solidus/internal/lsp"
)

const lsName = "solidus" // Name identifier for the language server

var (
	version = "0.0.1"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	verbose := flag.Int("v", 1, "log verbosity (0 = errors only)")
	logFile := flag.String("log", "", "write logs to this file instead of stderr")
	canonicalBool := flag.Bool("canonical-bool", false, "diagnose with bool signatures")
	flag.Parse()

	var path *string
	if *logFile != "" {
		path = logFile
	}
	commonlog.Configure(*verbose, path)
	log := commonlog.GetLogger("solidus.lsp")

	solidusHandler := lsp.NewSolidusHandler().WithConfig(codegen.Config{
		CanonicalBoolSignature: *canonicalBool,
	})

	handler = protocol.Handler{
		Initialize:                     solidusHandler.Initialize,
		Initialized:                    solidusHandler.Initialized,
		Shutdown:                       solidusHandler.Shutdown,
		SetTrace:                       solidusHandler.SetTrace,
		TextDocumentDidOpen:            solidusHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           solidusHandler.TextDocumentDidClose,
		TextDocumentDidChange:          solidusHandler.TextDocumentDidChange,
		TextDocumentCompletion:         solidusHandler.TextDocumentCompletion,
		TextDocumentHover:              solidusHandler.TextDocumentHover,
		TextDocumentSemanticTokensFull: solidusHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Infof("Starting Solidus LSP server %s", version)

	// Editors talk to the server over stdin/stdout
	if err := s.RunStdio(); err != nil {
		log.Errorf("Error starting Solidus LSP server: %s", err.Error())
		os.Exit(1)
	}
}
