// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report persists generated summaries and thinking transcripts
// to the output directory, renders them to HTML, and optionally mails
// them through the Resend API.
package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer persists report files under a single output directory.
type Writer struct {
	Dir string
}

// NewWriter returns a Writer rooted at dir, defaulting to "output".
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "output"
	}
	return &Writer{Dir: dir}
}

// Write stores content under the output directory, creating the
// directory on first use, and returns the full path written.
func (w *Writer) Write(name, content string) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(w.Dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return path, nil
}
