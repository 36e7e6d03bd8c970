package memory

import "sync"

// TextDocument implements Document as a plain string snapshot guarded
// by a lock. One writer at a time per document; readers get the
// snapshot current at call time.
type TextDocument struct {
	content    string
	generation uint64
	mu         sync.RWMutex
}

// NewTextDocument creates a document holding the given content at
// generation zero.
func NewTextDocument(content string) *TextDocument {
	return &TextDocument{content: content}
}

func (d *TextDocument) GetContent() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.content
}

func (d *TextDocument) SetContent(content string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.content = content
	d.generation++
}

func (d *TextDocument) Generation() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.generation
}
