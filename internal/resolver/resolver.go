// Package resolver maps a cursor position to the definition of the
// symbol under it, within a single document.
package resolver

import (
	"errors"
	"strings"

	"github.com/x86y/klsp/internal/memory"
	"github.com/x86y/klsp/internal/symbol"
)

// ErrUnknownDocument is returned when a request addresses a URI that
// is not present in the document store.
var ErrUnknownDocument = errors.New("unknown document")

// SymbolAt returns the identifier token under pos in text. A line
// number past the end of the document yields an empty line, so the
// result is the empty token rather than an error.
func SymbolAt(text string, pos symbol.Position) string {
	lines := strings.Split(text, "\n")
	if int(pos.Line) >= len(lines) {
		return ""
	}
	return symbol.ExtractAt(lines[pos.Line], pos.Character)
}

// Resolve looks up the definition span for the symbol under pos in
// the document identified by uri. An empty token or a symbol with no
// definition is a negative result, not an error.
func Resolve(docs memory.DocumentManager, uri string, pos symbol.Position) (symbol.Span, bool, error) {
	doc, exists := docs.GetDocument(uri)
	if !exists {
		return symbol.Span{}, false, ErrUnknownDocument
	}

	content := doc.GetContent()
	name := SymbolAt(content, pos)
	if name == "" {
		return symbol.Span{}, false, nil
	}

	span, found := symbol.Scan(content)[name]
	return span, found, nil
}
