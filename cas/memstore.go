package cas

import (
	"context"
	"sync"

	"github.com/arlojs/wsgraph/content"
)

// writeRecord pairs stored bytes with the tenancy/actor of whichever
// write first landed them in the store.
type writeRecord struct {
	data    []byte
	tenancy Tenancy
	actor   Actor
}

// MemStore is an in-memory Store, suitable for tests and for
// single-process tools (cmd/graphctl) that do not need durable storage.
// It is safe for concurrent use.
type MemStore struct {
	mu    sync.RWMutex
	blobs map[content.ContentHash]writeRecord
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{blobs: make(map[content.ContentHash]writeRecord)}
}

// Write implements Store. Writing the same bytes twice is a no-op after
// the first call: the content hash, not the tenancy/actor, determines
// whether a write is new.
func (m *MemStore) Write(_ context.Context, data []byte, tenancy Tenancy, actor Actor) (content.ContentHash, error) {
	hash := content.HashBytes(data)

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.blobs[hash]; !exists {
		stored := make([]byte, len(data))
		copy(stored, data)
		m.blobs[hash] = writeRecord{data: stored, tenancy: tenancy, actor: actor}
	}
	return hash, nil
}

// Read implements Store.
func (m *MemStore) Read(_ context.Context, hash content.ContentHash) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.blobs[hash]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(rec.data))
	copy(out, rec.data)
	return out, nil
}

// Len reports how many distinct content hashes are currently stored.
func (m *MemStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.blobs)
}
