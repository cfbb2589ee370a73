package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// keySanitizer strips anything outside [a-zA-Z0-9_-] so a key can
// never escape the data directory.
var keySanitizer = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// FileStore keeps one pretty-printed JSON file per key under a data
// directory, the same layout the desktop build uses.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns a
// store over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, keySanitizer.ReplaceAllString(key, "")+".json")
}

// Read loads a document; a missing file means the collection has never
// been written and is not an error.
func (s *FileStore) Read(_ context.Context, key string) (json.RawMessage, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, true, nil
}

// Write replaces the document on disk, pretty-printed like the desktop
// build so the files stay hand-inspectable.
func (s *FileStore) Write(_ context.Context, key string, doc json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, doc, "", "  "); err != nil {
		return fmt.Errorf("invalid document for %s: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
