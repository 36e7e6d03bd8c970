package memory

import (
	"fmt"
	"sync"
)

// Manager is the process-wide table of open documents.
type Manager struct {
	docs map[string]*TextDocument
	mu   sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		docs: make(map[string]*TextDocument),
	}
}

func (m *Manager) OpenDocument(uri string, content string) (Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if doc, exists := m.docs[uri]; exists {
		return doc, fmt.Errorf("document already open: %s", uri)
	}

	doc := NewTextDocument(content)
	m.docs[uri] = doc
	return doc, nil
}

func (m *Manager) GetDocument(uri string) (Document, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, exists := m.docs[uri]
	return doc, exists
}

func (m *Manager) CloseDocument(uri string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.docs[uri]; !exists {
		return fmt.Errorf("document not found: %s", uri)
	}

	delete(m.docs, uri)
	return nil
}

func (m *Manager) CloseAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.docs = make(map[string]*TextDocument)
	return nil
}
