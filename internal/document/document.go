// Package document loads the source HTML file. The contents are treated as
// an opaque string; no parsing or transformation happens here.
package document

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/prachipatil7/RetroUIMaker/internal/testable"
)

// Sentinel errors distinguishing a missing input from any other read failure.
var (
	ErrNotFound = errors.New("input file not found")
	ErrRead     = errors.New("input file unreadable")
)

// Loader reads documents through an injected FileSystem.
type Loader struct {
	fs testable.FileSystem
}

// NewLoader returns a Loader. A nil fs uses the real file system.
func NewLoader(fsys testable.FileSystem) *Loader {
	if fsys == nil {
		fsys = testable.DefaultFS
	}
	return &Loader{fs: fsys}
}

// Load returns the file contents as text. A missing path matches
// ErrNotFound; any other failure matches ErrRead and carries the cause.
// No partial reads are retried.
func (l *Loader) Load(path string) (string, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}
	return string(data), nil
}

// Exists reports whether the path exists, for pre-flight validation before
// any network call is attempted.
func (l *Loader) Exists(path string) bool {
	_, err := l.fs.Stat(path)
	return err == nil
}
