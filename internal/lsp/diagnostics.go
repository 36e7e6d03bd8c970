package lsp

import (
	con "context"
	"log"
	"reflect"
	"strings"

	"github.com/x86y/klsp/internal/diagnostics"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// scheduleDiagnostics snapshots the document and runs the checker in
// the background. The snapshot's generation is captured up front; a
// result is only published if the document still exists at that
// generation, so a run racing a newer edit is dropped instead of
// overwriting fresh diagnostics with stale ones.
func (s *Server) scheduleDiagnostics(context *glsp.Context, uri string) {
	doc, exists := s.docs.GetDocument(uri)
	if !exists {
		return
	}

	generation := doc.Generation()
	path := URIToPath(uri)

	lines := strings.Split(doc.GetContent(), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	go func() {
		diags, err := s.checker.Check(con.Background(), path, lines)
		if err != nil {
			// Checker could not be spawned; skip this cycle.
			log.Printf("diagnostics pass skipped: %v", err)
			return
		}

		current, exists := s.docs.GetDocument(uri)
		if !exists || current.Generation() != generation {
			return
		}

		s.publishDiagnostics(context, uri, convertDiagnostics(diags))
	}()
}

func (s *Server) publishDiagnostics(
	context *glsp.Context,
	uri string,
	diagnostics []protocol.Diagnostic,
) {
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}

	// Skip publishing if diagnostics haven't changed
	s.mu.Lock()
	if previous, exists := s.diagnosticCache[uri]; exists {
		if reflect.DeepEqual(previous, diagnostics) {
			s.mu.Unlock()
			return
		}
	}
	s.diagnosticCache[uri] = diagnostics
	s.mu.Unlock()

	context.Notify("textDocument/publishDiagnostics", protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func convertDiagnostics(diags []diagnostics.Diagnostic) []protocol.Diagnostic {
	converted := make([]protocol.Diagnostic, len(diags))
	severity := protocol.DiagnosticSeverityError

	for i, d := range diags {
		source := d.Source
		converted[i] = protocol.Diagnostic{
			Range:    spanToRange(d.Span),
			Severity: &severity,
			Source:   &source,
			Message:  d.Message,
		}
	}

	return converted
}
