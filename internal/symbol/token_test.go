package symbol_test

import (
	"testing"

	"github.com/x86y/klsp/internal/symbol"
)

func TestExtractAt(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		character uint32
		want      string
	}{
		{"start of token", "foo: 1", 0, "foo"},
		{"middle of token", "foo: 1", 1, "foo"},
		{"end of token", "foo: 1", 3, "foo"},
		{"on the colon", "foo: 1", 4, ""},
		{"use site", "y: x + 2", 3, "x"},
		{"cursor after last character", "abc", 3, "abc"},
		{"cursor past the end clamps", "abc", 10, "abc"},
		{"empty line", "", 0, ""},
		{"underscore is part of token", "a_b c", 1, "a_b"},
		{"digits are part of token", "x1y2 z", 2, "x1y2"},
		{"between two tokens", "ab cd", 2, "ab"},
		{"non-ascii letters", "héllo wörld", 8, "wörld"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := symbol.ExtractAt(tt.line, tt.character)
			if got != tt.want {
				t.Errorf("ExtractAt(%q, %d) = %q, want %q", tt.line, tt.character, got, tt.want)
			}
		})
	}
}

// The extracted token must be maximal: the characters bordering it on
// either side are never identifier characters.
func TestExtractAtMaximal(t *testing.T) {
	line := "alpha beta_2(gamma)"
	runes := []rune(line)

	for pos := 0; pos <= len(runes); pos++ {
		token := symbol.ExtractAt(line, uint32(pos))
		if token == "" {
			continue
		}

		for _, r := range token {
			if !symbol.IsIdentifierChar(r) {
				t.Fatalf("token %q at %d contains non-identifier rune %q", token, pos, r)
			}
		}

		start := pos
		for start > 0 && symbol.IsIdentifierChar(runes[start-1]) {
			start--
		}
		if start > 0 && symbol.IsIdentifierChar(runes[start-1]) {
			t.Errorf("token %q at %d is not left-maximal", token, pos)
		}
		end := start + len([]rune(token))
		if end < len(runes) && symbol.IsIdentifierChar(runes[end]) {
			t.Errorf("token %q at %d is not right-maximal", token, pos)
		}
	}
}
