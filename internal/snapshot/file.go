package snapshot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps the snapshot as <dir>/YIDAO_2026_V6_FINAL.md.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir. The directory is created on
// first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path returns the document location.
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, Key+".md")
}

// Save writes the document atomically.
func (s *FileStore) Save(snap Snapshot) error {
	if err := snap.Validate(); err != nil {
		return fmt.Errorf("snapshot: save: %w", err)
	}
	data, err := encodeDocument(snap)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("snapshot: ensure dir: %w", err)
	}
	tmp, err := os.CreateTemp(s.dir, Key+".*.tmp")
	if err != nil {
		return fmt.Errorf("snapshot: create temp: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("snapshot: write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("snapshot: close temp: %w", err)
	}
	if err := os.Rename(tmpPath, s.Path()); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("snapshot: rename: %w", err)
	}
	return nil
}

// Load reads and validates the document.
func (s *FileStore) Load() (Snapshot, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Snapshot{}, ErrNotFound
		}
		return Snapshot{}, fmt.Errorf("snapshot: read: %w", err)
	}
	snap, err := decodeDocument(data)
	if err != nil {
		return Snapshot{}, corrupt(err)
	}
	if err := snap.Validate(); err != nil {
		return Snapshot{}, corrupt(err)
	}
	return snap, nil
}

// Clear removes the document. Clearing an empty store is not an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.Path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("snapshot: clear: %w", err)
	}
	return nil
}

// Close is a no-op.
func (s *FileStore) Close() error { return nil }
