package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const migrationCreateSlots = `
CREATE TABLE IF NOT EXISTS slots (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// SQLite stores slots in a single table of a local SQLite database.
type SQLite struct {
	db *sql.DB
}

// DefaultPath returns the default database path (~/.taskdeck/taskdeck.db).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".taskdeck", "taskdeck.db"), nil
}

// Open opens or creates the SQLite database at path.
func Open(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.Exec(migrationCreateSlots); err != nil {
		return nil, fmt.Errorf("failed to run migration: %w", err)
	}

	return &SQLite{db: db}, nil
}

// OpenDefault opens the database at the default path.
func OpenDefault() (*SQLite, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Read returns the slot value, or nil if the slot has never been written.
func (s *SQLite) Read(slot string) ([]byte, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, slot).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %q: %w", slot, err)
	}
	return []byte(value), nil
}

// Write replaces the slot value. The upsert runs as one statement, so a
// reader never observes a partially written slot.
func (s *SQLite) Write(slot string, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO slots (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		slot, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to write slot %q: %w", slot, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
