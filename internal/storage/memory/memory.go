// Package memory provides a map-backed storage.KVStorage used as an
// in-process fake in tests and as a throwaway backend.
package memory

import (
	"context"
	"sync"

	"github.com/iudanet/fiches/internal/storage"
)

// Storage keeps values in a map. GetErr and PutErr, when set, are returned
// by every call instead of touching the map.
type Storage struct {
	GetErr error
	PutErr error

	values map[string][]byte
	puts   int
	mu     sync.Mutex
	closed bool
}

// New creates an empty in-memory storage
func New() *Storage {
	return &Storage{values: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, storage.ErrStorageClosed
	}
	if s.GetErr != nil {
		return nil, s.GetErr
	}

	value, ok := s.values[key]
	if !ok {
		return nil, storage.ErrKeyNotFound
	}
	return append([]byte(nil), value...), nil
}

// Put stores a copy of value under key
func (s *Storage) Put(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrStorageClosed
	}
	if s.PutErr != nil {
		return s.PutErr
	}

	s.values[key] = append([]byte(nil), value...)
	s.puts++
	return nil
}

// Close marks the storage closed
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

// Raw returns the stored bytes for key without going through Get
func (s *Storage) Raw(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	return value, ok
}

// Seed stores value under key bypassing PutErr and the write counter
func (s *Storage) Seed(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = append([]byte(nil), value...)
}

// Puts reports how many successful Put calls were made
func (s *Storage) Puts() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.puts
}
