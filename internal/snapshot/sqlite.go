package snapshot

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DatabaseFile is the SQLite file name inside the state directory.
const DatabaseFile = "yidao.db"

// SQLiteStore keeps the snapshot as a JSON value in a key/value table.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteStore opens (or creates) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("snapshot: ensure dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	store := &SQLiteStore{db: db, now: time.Now}
	if err := store.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) initialize() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS local_storage (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("snapshot: create table: %w", err)
	}
	return nil
}

// Save upserts the snapshot under Key.
func (s *SQLiteStore) Save(snap Snapshot) error {
	if err := snap.Validate(); err != nil {
		return fmt.Errorf("snapshot: save: %w", err)
	}
	value, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO local_storage (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		Key, string(value), s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("snapshot: upsert: %w", err)
	}
	return nil
}

// Load reads and validates the snapshot.
func (s *SQLiteStore) Load() (Snapshot, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM local_storage WHERE key = ?`, Key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, ErrNotFound
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: query: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal([]byte(value), &snap); err != nil {
		return Snapshot{}, corrupt(err)
	}
	if err := snap.Validate(); err != nil {
		return Snapshot{}, corrupt(err)
	}
	return snap, nil
}

// Clear deletes the row.
func (s *SQLiteStore) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM local_storage WHERE key = ?`, Key); err != nil {
		return fmt.Errorf("snapshot: clear: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
