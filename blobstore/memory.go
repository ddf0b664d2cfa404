package blobstore

import (
	"bytes"
	"context"
	"io"
	"sync"
)

// MemoryStore implements Store with an in-process map. Intended for tests.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Open opens a blob for reading.
func (s *MemoryStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	s.mu.RLock()
	data, ok := s.blobs[name]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Put stores a copy of data under name.
func (s *MemoryStore) Put(_ context.Context, name string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)

	s.mu.Lock()
	s.blobs[name] = cp
	s.mu.Unlock()
	return nil
}
