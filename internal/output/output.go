// Copyright 2026 The RetroUIMaker Authors
// SPDX-License-Identifier: MIT

// Package output derives the destination filename and persists the
// generated document.
package output

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/prachipatil7/RetroUIMaker/internal/testable"
)

// ErrWrite marks any failure while creating the output directory or writing
// the file (permission denied, disk full).
var ErrWrite = errors.New("output write failed")

// htmlExt is forced onto every output filename that lacks it.
const htmlExt = ".html"

// DeriveFilename returns the output filename for the given input path.
// With no override, the name is "simplified_<base>" with the input's
// extension replaced by .html. An override lacking the .html suffix gets it
// appended.
func DeriveFilename(inputPath, override string) string {
	name := override
	if name == "" {
		base := filepath.Base(inputPath)
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		name = "simplified_" + stem
	}
	if !strings.HasSuffix(name, htmlExt) {
		name += htmlExt
	}
	return name
}

// Writer persists generated documents through an injected FileSystem.
type Writer struct {
	fs testable.FileSystem
}

// NewWriter returns a Writer. A nil fs uses the real file system.
func NewWriter(fsys testable.FileSystem) *Writer {
	if fsys == nil {
		fsys = testable.DefaultFS
	}
	return &Writer{fs: fsys}
}

// Write ensures the parent directory of path exists and writes content,
// fully overwriting any existing file. Directory creation is idempotent.
func (w *Writer) Write(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := w.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create %s: %w", ErrWrite, dir, err)
		}
	}
	if err := w.fs.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	return nil
}
