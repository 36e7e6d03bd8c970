package symbol

import "strings"

// Scan walks the document once and indexes every definition line: an
// identifier run starting at column 0, optionally followed by spaces
// or tabs, then a colon. The span covers the name on its defining
// line. If a name is defined more than once the later occurrence
// overwrites the earlier one; callers rely on this last-write-wins
// policy.
func Scan(text string) Index {
	index := make(Index)

	for lineNumber, line := range strings.Split(text, "\n") {
		runes := []rune(line)

		end := 0
		for end < len(runes) && IsIdentifierChar(runes[end]) {
			end++
		}
		if end == 0 {
			continue
		}

		colon := end
		for colon < len(runes) && (runes[colon] == ' ' || runes[colon] == '\t') {
			colon++
		}
		if colon >= len(runes) || runes[colon] != ':' {
			continue
		}

		index[string(runes[:end])] = Span{
			Start: Position{Line: uint32(lineNumber), Character: 0},
			End:   Position{Line: uint32(lineNumber), Character: uint32(end)},
		}
	}

	return index
}
