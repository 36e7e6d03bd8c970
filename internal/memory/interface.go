// Package memory holds the in-process table of open documents.
package memory

// Document represents an open document in memory. Content is always
// replaced wholesale; there is no incremental patching.
type Document interface {
	GetContent() string
	SetContent(content string)

	// Generation increases by one on every content replacement. The
	// diagnostics pipeline uses it to discard results computed against
	// text the editor has since replaced.
	Generation() uint64
}

// DocumentManager manages open documents in memory, keyed by URI.
type DocumentManager interface {
	OpenDocument(uri string, content string) (Document, error)
	GetDocument(uri string) (Document, bool)
	CloseDocument(uri string) error

	CloseAll() error
}
