package memory_test

import (
	"testing"

	"github.com/x86y/klsp/internal/memory"
)

func TestDocumentLifecycle(t *testing.T) {
	m := memory.NewManager()

	doc, err := m.OpenDocument("file:///a.k", "x: 1\n")
	if err != nil {
		t.Fatalf("OpenDocument failed: %v", err)
	}
	if got := doc.GetContent(); got != "x: 1\n" {
		t.Errorf("GetContent() = %q, want %q", got, "x: 1\n")
	}

	got, exists := m.GetDocument("file:///a.k")
	if !exists {
		t.Fatal("GetDocument: document not found after open")
	}
	if got.GetContent() != doc.GetContent() {
		t.Error("GetDocument returned a different document")
	}

	if err := m.CloseDocument("file:///a.k"); err != nil {
		t.Fatalf("CloseDocument failed: %v", err)
	}
	if _, exists := m.GetDocument("file:///a.k"); exists {
		t.Error("document still present after close")
	}
}

func TestOpenDocumentTwice(t *testing.T) {
	m := memory.NewManager()

	if _, err := m.OpenDocument("file:///a.k", "x: 1\n"); err != nil {
		t.Fatalf("first open failed: %v", err)
	}
	if _, err := m.OpenDocument("file:///a.k", "y: 2\n"); err == nil {
		t.Error("expected error when opening an already open document")
	}
}

func TestCloseUnknownDocument(t *testing.T) {
	m := memory.NewManager()

	if err := m.CloseDocument("file:///missing.k"); err == nil {
		t.Error("expected error when closing an unknown document")
	}
}

func TestGenerationBumpsOnEveryReplacement(t *testing.T) {
	doc := memory.NewTextDocument("x: 1\n")

	if got := doc.Generation(); got != 0 {
		t.Fatalf("fresh document generation = %d, want 0", got)
	}

	doc.SetContent("x: 2\n")
	doc.SetContent("x: 3\n")

	if got := doc.Generation(); got != 2 {
		t.Errorf("generation after two replacements = %d, want 2", got)
	}
	if got := doc.GetContent(); got != "x: 3\n" {
		t.Errorf("content = %q, want %q", got, "x: 3\n")
	}
}

func TestCloseAll(t *testing.T) {
	m := memory.NewManager()

	m.OpenDocument("file:///a.k", "a: 1\n")
	m.OpenDocument("file:///b.k", "b: 2\n")

	if err := m.CloseAll(); err != nil {
		t.Fatalf("CloseAll failed: %v", err)
	}
	if _, exists := m.GetDocument("file:///a.k"); exists {
		t.Error("document survived CloseAll")
	}
}
