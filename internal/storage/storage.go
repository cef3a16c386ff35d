// Package storage keeps small string values across sessions.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Store is a string key/value store.
type Store interface {
	GetItem(key string) (string, bool)
	SetItem(key, value string) error
}

// FileStore persists its items as a msgpack map. Every SetItem rewrites the
// file.
type FileStore struct {
	path  string
	mu    sync.Mutex
	items map[string]string
}

// OpenFile loads path, starting empty when the file does not exist yet.
func OpenFile(path string) (*FileStore, error) {
	s := &FileStore{path: path, items: make(map[string]string)}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read storage: %w", err)
	}
	if len(data) == 0 {
		return s, nil
	}
	if err := msgpack.Unmarshal(data, &s.items); err != nil {
		return nil, fmt.Errorf("decode storage %s: %w", path, err)
	}
	if s.items == nil {
		s.items = make(map[string]string)
	}
	return s, nil
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) GetItem(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[key]
	return v, ok
}

func (s *FileStore) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return s.save()
}

func (s *FileStore) save() error {
	data, err := msgpack.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("encode storage: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace storage: %w", err)
	}
	return nil
}

// MemStore keeps items in memory only.
type MemStore struct {
	mu    sync.Mutex
	items map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{items: make(map[string]string)}
}

func (s *MemStore) GetItem(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[key]
	return v, ok
}

func (s *MemStore) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}
