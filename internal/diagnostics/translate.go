// Package diagnostics runs the external K checker and folds its
// stderr output into position-anchored diagnostics.
package diagnostics

import (
	"strings"

	"github.com/x86y/klsp/internal/symbol"
)

type Severity int

const SeverityError Severity = 1

// Diagnostic anchors a checker error to a source position.
type Diagnostic struct {
	Span     symbol.Span
	Severity Severity
	Source   string
	Message  string
}

const source = "kls"

// Translate converts the checker's stderr into exactly one diagnostic.
//
// The checker echoes the offending source line and marks the column
// with a caret on the following line. A stderr line starting with '^'
// (after trimming) supplies the character column: the rune offset of
// the caret within the raw line. Any other line, except the checker's
// "'parse" marker, is matched by trimmed equality against the
// document's lines to recover the line number; no match defaults to
// line 0. The last line/column seen wins, and the whole raw output
// becomes the message. Output that matches nothing degrades to an
// anchor at (0, 0) rather than an error.
func Translate(stderr string, docLines []string) Diagnostic {
	var line, character uint32

	lines := strings.Split(stderr, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	for _, raw := range lines {
		trimmed := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(trimmed, "^"):
			character = caretColumn(raw)
		case strings.HasPrefix(trimmed, "'parse"):
			// Checker preamble, carries no position.
		default:
			line = 0
			for i, docLine := range docLines {
				if strings.TrimSpace(docLine) == trimmed {
					line = uint32(i)
					break
				}
			}
		}
	}

	return Diagnostic{
		Span: symbol.Span{
			Start: symbol.Position{Line: line, Character: character},
			End:   symbol.Position{Line: line, Character: character + 1},
		},
		Severity: SeverityError,
		Source:   source,
		Message:  "Syntax error at: " + stderr,
	}
}

// caretColumn returns the rune offset of the first '^' in the raw
// (untrimmed) stderr line.
func caretColumn(raw string) uint32 {
	for i, r := range []rune(raw) {
		if r == '^' {
			return uint32(i)
		}
	}
	return 0
}
