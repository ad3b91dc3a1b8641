// Package memkv is the in-memory kv.Store used for tests and storeless runs.
package memkv

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/go-faster/errors"

	"github.com/xenking/spud-shack/internal/storage/kv"
)

var _ kv.Store = (*Store)(nil)

// Store holds JSON-encoded values in a mutex-guarded map.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New creates an empty Store.
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Get decodes the value under key into dest.
func (s *Store) Get(_ context.Context, key string, dest any) error {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return kv.ErrKeyNotFound
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return errors.Wrapf(err, "decode value for %q", key)
	}
	return nil
}

// Put encodes value and stores it under key.
func (s *Store) Put(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode value for %q", key)
	}
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}

// Delete removes the key.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}
