// Package session owns the partner's backend credential: a single opaque
// bearer token persisted to disk. The token is written once on a successful
// identity exchange and deleted when the backend answers 401 or the user
// logs out. Expiry is never tracked locally; it is discovered reactively.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const credentialFile = "session.json"

// credential is the on-disk shape. The token is opaque to the client.
type credential struct {
	Token string `json:"token"`
}

// Store persists a single bearer credential under the client's dot
// directory. All methods are safe for concurrent use; Clear is idempotent
// so overlapping 401 reactions are harmless.
type Store struct {
	mu    sync.Mutex
	path  string
	token string
}

// NewStore opens (or prepares) the credential store rooted at dir.
// A missing credential file is not an error; it means logged out.
func NewStore(dir string) (*Store, error) {
	s := &Store{path: filepath.Join(dir, credentialFile)}
	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read credential: %w", err)
	}
	return s, nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}
	var c credential
	if err := json.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("corrupt credential file %s: %w", s.path, err)
	}
	s.mu.Lock()
	s.token = c.Token
	s.mu.Unlock()
	return nil
}

// Token returns the stored credential and whether one is present.
func (s *Store) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

// Set persists the credential to disk and makes it the active token.
// Nothing is persisted if the write fails.
func (s *Store) Set(token string) error {
	if token == "" {
		return fmt.Errorf("refusing to store empty credential")
	}

	data, err := json.MarshalIndent(credential{Token: token}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to persist credential: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

// Clear deletes the stored credential. Calling it when no credential is
// present is a no-op, so repeated 401 reactions do not error.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}

// Path returns the credential file location. Used by Watch and by tests.
func (s *Store) Path() string {
	return s.path
}

// Reload re-reads the credential from disk, picking up changes made by
// another process. A missing file clears the in-memory token.
func (s *Store) Reload() error {
	err := s.load()
	if os.IsNotExist(err) {
		s.mu.Lock()
		s.token = ""
		s.mu.Unlock()
		return nil
	}
	return err
}
