package apiclient

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenStore is the client-side session slot: one token at a time,
// overwritten on login and cleared on logout or rejection.
type TokenStore interface {
	// Load returns the stored token, or "" when no session exists
	Load() (string, error)

	// Save replaces the stored token
	Save(token string) error

	// Clear removes the stored token. Clearing an empty store is a no-op.
	Clear() error
}

// =====================================================
// MEMORY STORE
// =====================================================

// MemoryTokenStore keeps the session token in memory only.
// Used in tests and short-lived programs.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Load() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *MemoryTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

// =====================================================
// FILE STORE
// =====================================================

// FileTokenStore persists the session token to a file so the session
// survives process restarts, the way a browser's localStorage does.
type FileTokenStore struct {
	mu   sync.Mutex
	path string
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
