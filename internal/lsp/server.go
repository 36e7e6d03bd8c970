package lsp

import (
	"sync"

	"github.com/x86y/klsp/internal/diagnostics"
	"github.com/x86y/klsp/internal/memory"

	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "kls"

var version = "0.1.0"

type Server struct {
	handler *protocol.Handler
	docs    memory.DocumentManager
	checker diagnostics.Checker

	mu              sync.Mutex
	diagnosticCache map[string][]protocol.Diagnostic
}

func NewServer() (*server.Server, error) {
	ls := &Server{
		docs:            memory.NewManager(),
		checker:         diagnostics.NewChecker(""),
		diagnosticCache: make(map[string][]protocol.Diagnostic),
	}

	ls.handler = &protocol.Handler{
		Initialize:             ls.initialize,
		Initialized:            ls.initialized,
		TextDocumentDidOpen:    ls.textDocumentDidOpen,
		TextDocumentDidChange:  ls.textDocumentDidChange,
		TextDocumentDidClose:   ls.textDocumentDidClose,
		TextDocumentDefinition: ls.textDocumentDefinition,
		TextDocumentRename:     ls.textDocumentRename,
		SetTrace:               ls.setTrace,
		Shutdown:               ls.shutdown,
	}

	return server.NewServer(ls.handler, lsName, false), nil
}
