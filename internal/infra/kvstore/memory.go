package kvstore

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore is an in-process Store on top of go-cache. Expired entries are
// invisible immediately and removed by the go-cache janitor.
type MemoryStore struct {
	items *gocache.Cache
}

// NewMemoryStore starts the janitor. Non-positive sweepInterval disables it.
func NewMemoryStore(sweepInterval time.Duration) *MemoryStore {
	if sweepInterval < 0 {
		sweepInterval = 0
	}
	return &MemoryStore{
		items: gocache.New(gocache.NoExpiration, sweepInterval),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	raw, ok := s.items.Get(key)
	if !ok {
		return nil, ErrNotFound
	}

	value, ok := raw.([]byte)
	if !ok {
		return nil, ErrNotFound
	}
	return cloneBytes(value), nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.items.Set(key, cloneBytes(value), expiration(ttl))
	return nil
}

// SetNX relies on go-cache Add, which fails while an unexpired entry exists.
func (s *MemoryStore) SetNX(_ context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	if err := s.items.Add(key, cloneBytes(value), expiration(ttl)); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *MemoryStore) Del(_ context.Context, key string) error {
	s.items.Delete(key)
	return nil
}

// Len returns the number of stored entries, expired ones included until swept.
func (s *MemoryStore) Len() int {
	return s.items.ItemCount()
}

// Sweep removes expired entries.
func (s *MemoryStore) Sweep() {
	s.items.DeleteExpired()
}

// Stop drops every entry. The janitor goroutine exits once the store is
// garbage collected. Safe to call more than once.
func (s *MemoryStore) Stop() {
	s.items.Flush()
}

// ttl 0 means the entry never expires
func expiration(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return gocache.NoExpiration
	}
	return ttl
}

func cloneBytes(value []byte) []byte {
	out := make([]byte, len(value))
	copy(out, value)
	return out
}
