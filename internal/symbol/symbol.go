// Package symbol implements tokenization and definition scanning for
// the K notation. All offsets are character (rune) offsets, matching
// the character field of LSP positions.
package symbol

import "unicode"

// Position is a zero-based (line, character) pair.
type Position struct {
	Line      uint32
	Character uint32
}

// Span is a half-open range between two positions.
type Span struct {
	Start Position
	End   Position
}

// Index maps a symbol name to the span of its defining occurrence.
type Index map[string]Span

// IsIdentifierChar reports whether r may appear in a symbol name.
func IsIdentifierChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
