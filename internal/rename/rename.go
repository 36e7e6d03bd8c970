// Package rename computes whole-token rename edits over a single
// document. It never mutates the document store; applying the edits
// as one atomic multi-edit is the editor's job.
package rename

import (
	"strings"

	"github.com/x86y/klsp/internal/memory"
	"github.com/x86y/klsp/internal/resolver"
	"github.com/x86y/klsp/internal/symbol"
)

// Edit replaces the text inside Span with NewText.
type Edit struct {
	Span    symbol.Span
	NewText string
}

// EditSet holds the edits per document URI, ordered top to bottom,
// left to right.
type EditSet map[string][]Edit

// Rename resolves the symbol under pos and returns an edit for every
// whole-token occurrence of it in the document. When the cursor is
// not on a known symbol the result is an empty EditSet, not an error.
func Rename(docs memory.DocumentManager, uri string, pos symbol.Position, newName string) (EditSet, error) {
	doc, exists := docs.GetDocument(uri)
	if !exists {
		return nil, resolver.ErrUnknownDocument
	}

	content := doc.GetContent()
	name := resolver.SymbolAt(content, pos)
	if name == "" {
		return EditSet{}, nil
	}
	if _, defined := symbol.Scan(content)[name]; !defined {
		return EditSet{}, nil
	}

	var edits []Edit
	for lineNumber, line := range strings.Split(content, "\n") {
		for _, span := range occurrences(line, uint32(lineNumber), name) {
			edits = append(edits, Edit{Span: span, NewText: newName})
		}
	}

	if len(edits) == 0 {
		return EditSet{}, nil
	}
	return EditSet{uri: edits}, nil
}

// occurrences finds every whole-token occurrence of name in line. A
// hit counts only if the characters adjacent to it on both sides are
// not identifier characters; the search resumes strictly after the
// end of each found occurrence, so overlapping hits cannot
// double-count.
func occurrences(line string, lineNumber uint32, name string) []symbol.Span {
	runes := []rune(line)
	target := []rune(name)

	var spans []symbol.Span
	for i := 0; i+len(target) <= len(runes); {
		if !matchesAt(runes, target, i) {
			i++
			continue
		}

		end := i + len(target)
		startsToken := i == 0 || !symbol.IsIdentifierChar(runes[i-1])
		endsToken := end == len(runes) || !symbol.IsIdentifierChar(runes[end])
		if startsToken && endsToken {
			spans = append(spans, symbol.Span{
				Start: symbol.Position{Line: lineNumber, Character: uint32(i)},
				End:   symbol.Position{Line: lineNumber, Character: uint32(end)},
			})
		}
		i = end
	}

	return spans
}

func matchesAt(runes, target []rune, offset int) bool {
	for i, r := range target {
		if runes[offset+i] != r {
			return false
		}
	}
	return true
}
