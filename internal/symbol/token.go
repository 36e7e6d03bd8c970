package symbol

// ExtractAt returns the maximal identifier token containing the given
// character offset in line. The offset may equal the line length (a
// cursor after the last character); offsets past the end clamp to the
// end. When the offset does not touch an identifier character the
// result is the empty string, which callers treat as "no symbol here".
func ExtractAt(line string, character uint32) string {
	runes := []rune(line)

	pos := int(character)
	if pos > len(runes) {
		pos = len(runes)
	}

	start := pos
	for start > 0 && IsIdentifierChar(runes[start-1]) {
		start--
	}

	end := pos
	for end < len(runes) && IsIdentifierChar(runes[end]) {
		end++
	}

	return string(runes[start:end])
}
