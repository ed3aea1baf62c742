package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore is a Store backed by a JSON file. Writes go to a temp file that
// is renamed over the target.
type FileStore struct {
	path string

	mu     sync.RWMutex
	values map[string]string
}

// NewFileStore opens path, creating an empty store when the file is missing.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, values: make(map[string]string)}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	if len(raw) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(raw, &s.values); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	return s, nil
}

// NewMemoryStore returns a store that is never written to disk.
func NewMemoryStore() *FileStore {
	return &FileStore{values: make(map[string]string)}
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set writes all values in one persisted update.
func (s *FileStore) Set(values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.copyLocked()
	for k, v := range values {
		next[k] = v
	}
	return s.commitLocked(next)
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.copyLocked()
	delete(next, key)
	return s.commitLocked(next)
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commitLocked(make(map[string]string))
}

func (s *FileStore) copyLocked() map[string]string {
	next := make(map[string]string, len(s.values))
	for k, v := range s.values {
		next[k] = v
	}
	return next
}

// commitLocked persists next and swaps it in only if the write succeeded.
func (s *FileStore) commitLocked(next map[string]string) error {
	if s.path != "" {
		if err := writeAtomic(s.path, next); err != nil {
			return err
		}
	}
	s.values = next
	return nil
}

func writeAtomic(path string, values map[string]string) error {
	raw, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp session file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}
