// Package store is the client's local SQLite cache: the in-progress
// onboarding draft and the last fetched notification feed. Losing this
// database loses nothing the backend cannot re-supply except an unfinished
// draft.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"wallpartners/internal/api"
	"wallpartners/internal/onboarding"
)

const schema = `
CREATE TABLE IF NOT EXISTS onboarding_draft (
	id         INTEGER PRIMARY KEY CHECK (id = 1),
	payload    TEXT NOT NULL,
	step       INTEGER NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS notifications (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	body       TEXT NOT NULL,
	created_at TEXT NOT NULL,
	read       INTEGER NOT NULL DEFAULT 0,
	fetched_at TEXT NOT NULL
);
`

// Store wraps the local SQLite database. Safe for concurrent use.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open initializes the database at path, creating the file and schema as
// needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize cache schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveDraft stores the in-progress onboarding form and step, replacing any
// previous draft. Implements onboarding.DraftStore.
func (s *Store) SaveDraft(form onboarding.Form, step int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(form)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO onboarding_draft (id, payload, step, updated_at) VALUES (1, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, step = excluded.step, updated_at = excluded.updated_at`,
		string(payload), step, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// LoadDraft returns the saved draft if one exists.
func (s *Store) LoadDraft() (onboarding.Form, int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var payload string
	var step int
	err := s.db.QueryRow(`SELECT payload, step FROM onboarding_draft WHERE id = 1`).Scan(&payload, &step)
	if err == sql.ErrNoRows {
		return onboarding.Form{}, 0, false, nil
	}
	if err != nil {
		return onboarding.Form{}, 0, false, err
	}

	var form onboarding.Form
	if err := json.Unmarshal([]byte(payload), &form); err != nil {
		return onboarding.Form{}, 0, false, fmt.Errorf("corrupt draft: %w", err)
	}
	return form, step, true, nil
}

// ClearDraft removes the saved draft. Safe to call when none exists.
func (s *Store) ClearDraft() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`DELETE FROM onboarding_draft WHERE id = 1`)
	return err
}

// CacheNotifications replaces the cached feed with the given entries.
func (s *Store) CacheNotifications(items []api.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM notifications`); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, n := range items {
		read := 0
		if n.Read {
			read = 1
		}
		_, err := tx.Exec(
			`INSERT INTO notifications (id, title, body, created_at, read, fetched_at) VALUES (?, ?, ?, ?, ?, ?)`,
			n.ID, n.Title, n.Body, n.CreatedAt.UTC().Format(time.RFC3339), read, now,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// CachedNotifications returns the locally cached feed, newest first. An
// empty cache yields an empty slice, not an error.
func (s *Store) CachedNotifications() ([]api.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT id, title, body, created_at, read FROM notifications ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []api.Notification
	for rows.Next() {
		var n api.Notification
		var createdAt string
		var read int
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &createdAt, &read); err != nil {
			return nil, err
		}
		n.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		n.Read = read == 1
		out = append(out, n)
	}
	return out, rows.Err()
}
