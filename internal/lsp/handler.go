package lsp

import (
	"encoding/json"
	"log"

	"github.com/x86y/klsp/internal/diagnostics"
	"github.com/x86y/klsp/internal/rename"
	"github.com/x86y/klsp/internal/resolver"
	"github.com/x86y/klsp/internal/symbol"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (s *Server) initialize(
	context *glsp.Context,
	params *protocol.InitializeParams,
) (any, error) {
	// Load config
	var config Config
	configJson, err := json.Marshal(params.InitializationOptions)
	if err != nil {
		return nil, err
	}
	err = json.Unmarshal(configJson, &config)
	if err != nil {
		log.Printf("Config error. Unable to unmarshal. Got %s", configJson)
		return nil, err
	}

	s.checker = diagnostics.NewChecker(config.CheckerPath)
	log.Printf("Checker is %s", s.checker.Path)

	capabilities := s.handler.CreateServerCapabilities()

	// The whole document is re-sent and re-scanned on every edit.
	syncKind := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &version,
		},
	}, nil
}

func (s *Server) initialized(
	context *glsp.Context,
	params *protocol.InitializedParams,
) error {
	log.Println("Client initialized.")
	return nil
}

func (s *Server) setTrace(context *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) shutdown(context *glsp.Context) error {
	log.Println("Shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return s.docs.CloseAll()
}

func (s *Server) textDocumentDidOpen(
	context *glsp.Context,
	params *protocol.DidOpenTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	log.Printf("DidOpen: %s\n", uri)

	if _, err := s.docs.OpenDocument(uri, params.TextDocument.Text); err != nil {
		log.Printf("failed to open document: %v", err)
		return err
	}

	s.scheduleDiagnostics(context, uri)
	return nil
}

func (s *Server) textDocumentDidChange(
	context *glsp.Context,
	params *protocol.DidChangeTextDocumentParams,
) error {
	uri := params.TextDocument.URI

	doc, exists := s.docs.GetDocument(uri)
	if !exists {
		log.Printf("document not found: %s", uri)
		return nil
	}

	// Full sync: whichever event shape the client sends, the text is
	// the complete new document.
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			doc.SetContent(c.Text)
		case protocol.TextDocumentContentChangeEvent:
			doc.SetContent(c.Text)
		}
	}

	s.scheduleDiagnostics(context, uri)
	return nil
}

func (s *Server) textDocumentDidClose(
	context *glsp.Context,
	params *protocol.DidCloseTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	log.Printf("Closed %s", uri)

	s.mu.Lock()
	delete(s.diagnosticCache, uri)
	s.mu.Unlock()

	if err := s.docs.CloseDocument(uri); err != nil {
		log.Printf("failed to close document: %v", err)
	}
	return nil
}

func (s *Server) textDocumentDefinition(
	context *glsp.Context,
	params *protocol.DefinitionParams,
) (any, error) {
	uri := params.TextDocument.URI

	span, found, err := resolver.Resolve(s.docs, uri, symbol.Position{
		Line:      params.Position.Line,
		Character: params.Position.Character,
	})
	if err != nil {
		log.Printf("definition failed: %v", err)
		return nil, nil
	}
	if !found {
		return nil, nil
	}

	return protocol.Location{
		URI:   uri,
		Range: spanToRange(span),
	}, nil
}

func (s *Server) textDocumentRename(
	context *glsp.Context,
	params *protocol.RenameParams,
) (*protocol.WorkspaceEdit, error) {
	uri := params.TextDocument.URI

	edits, err := rename.Rename(s.docs, uri, symbol.Position{
		Line:      params.Position.Line,
		Character: params.Position.Character,
	}, params.NewName)
	if err != nil {
		log.Printf("rename failed: %v", err)
		return nil, nil
	}

	changes := make(map[protocol.DocumentUri][]protocol.TextEdit, len(edits))
	for docURI, docEdits := range edits {
		textEdits := make([]protocol.TextEdit, len(docEdits))
		for i, edit := range docEdits {
			textEdits[i] = protocol.TextEdit{
				Range:   spanToRange(edit.Span),
				NewText: edit.NewText,
			}
		}
		changes[docURI] = textEdits
	}

	return &protocol.WorkspaceEdit{Changes: changes}, nil
}

func spanToRange(span symbol.Span) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: span.Start.Line, Character: span.Start.Character},
		End:   protocol.Position{Line: span.End.Line, Character: span.End.Character},
	}
}
