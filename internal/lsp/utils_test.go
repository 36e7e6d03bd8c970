package lsp_test

import (
	"testing"

	"github.com/x86y/klsp/internal/lsp"
)

func TestURIToPath(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"file:///home/user/doc.k", "/home/user/doc.k"},
		{"file:///dir%20name/doc.k", "/dir name/doc.k"},
	}

	for _, tt := range tests {
		if got := lsp.URIToPath(tt.uri); got != tt.want {
			t.Errorf("URIToPath(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}

func TestPathToURIRoundTrip(t *testing.T) {
	path := "/some dir/doc.k"
	if got := lsp.URIToPath(lsp.PathToURI(path)); got != path {
		t.Errorf("round trip = %q, want %q", got, path)
	}
}
