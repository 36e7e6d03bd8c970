package diagnostics

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// DefaultCheckerPath is used when the client supplies no checker in
// its initialization options.
const DefaultCheckerPath = "/usr/local/bin/k"

// Checker invokes the external K compiler against a document's
// on-disk path and mines its stderr for errors.
type Checker struct {
	Path string
}

func NewChecker(path string) Checker {
	if path == "" {
		path = DefaultCheckerPath
	}
	return Checker{Path: path}
}

// Check runs the checker on documentPath. Exit code 0 means the
// document is valid and yields no diagnostics. A non-zero exit yields
// exactly one diagnostic translated from stderr. A process that could
// not be spawned or awaited is an error; the caller skips publishing
// for that cycle.
func (c Checker) Check(ctx context.Context, documentPath string, docLines []string) ([]Diagnostic, error) {
	cmd := exec.CommandContext(ctx, c.Path, documentPath)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return nil, fmt.Errorf("failed to run checker %s: %w", c.Path, err)
	}

	return []Diagnostic{Translate(stderr.String(), docLines)}, nil
}
