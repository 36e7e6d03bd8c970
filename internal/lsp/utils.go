package lsp

import "strings"

// URIToPath converts a LSP URI to a filesystem path
func URIToPath(uri string) string {
	// Remove 'file://' prefix
	path := strings.TrimPrefix(uri, "file://")
	// Convert any remaining URI encoding
	path = strings.ReplaceAll(path, "%20", " ")
	return path
}

// PathToURI converts a filesystem path to a LSP URI
func PathToURI(path string) string {
	// Replace spaces with %20
	uri := strings.ReplaceAll(path, " ", "%20")
	// Add file:// prefix
	return "file://" + uri
}
