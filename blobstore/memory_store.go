package blobstore

import (
	"context"
	"sync"
)

// MemoryStore is an in-process store with the same semantics as the redis
// driver. Used in tests and for single-process development runs; not
// durable across restarts.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string]Blob
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string]Blob)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (Blob, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blobs[key]
	if !ok {
		return Blob{}, false, nil
	}
	// Copy so callers cannot mutate stored bytes.
	data := make([]byte, len(b.Data))
	copy(data, b.Data)
	return Blob{Data: data, Version: b.Version}, true, nil
}

func (s *MemoryStore) Put(_ context.Context, key string, data []byte, expect int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.blobs[key].Version
	if expect != ForceWrite && cur != expect {
		return 0, ErrStale
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	next := cur + 1
	s.blobs[key] = Blob{Data: stored, Version: next}
	return next, nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}
