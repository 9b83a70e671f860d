// Package cache provides a small generic TTL cache used for the remote tree
// listing, per-file content bodies, and merged query results. Entries expire
// after a configured duration and are evicted lazily on lookup; capacity is
// bounded by an LRU backing store.
package cache

import (
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Entry wraps a value with its fetch time and time-to-live.
type Entry[T any] struct {
	Value     T
	FetchedAt time.Time
	TTL       time.Duration
}

// NewEntry creates an entry fetched now.
func NewEntry[T any](value T, ttl time.Duration) Entry[T] {
	return Entry[T]{Value: value, FetchedAt: time.Now(), TTL: ttl}
}

// Expired reports whether the entry is stale at the given instant.
func (e Entry[T]) Expired(now time.Time) bool {
	return now.Sub(e.FetchedAt) > e.TTL
}

// Store is a string-keyed TTL cache safe for concurrent use. A lookup that
// finds an expired entry removes it and reports a miss.
type Store[V any] struct {
	mu  sync.RWMutex
	lru *lru.Cache[string, Entry[V]]
	ttl time.Duration
}

// NewStore creates a Store holding at most size entries, each valid for ttl.
func NewStore[V any](size int, ttl time.Duration) (*Store[V], error) {
	backing, err := lru.New[string, Entry[V]](size)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}
	return &Store[V]{lru: backing, ttl: ttl}, nil
}

// Get returns the cached value for key, reporting a miss for absent or
// expired entries.
func (s *Store[V]) Get(key string) (V, bool) {
	now := time.Now()

	s.mu.RLock()
	entry, found := s.lru.Get(key)
	s.mu.RUnlock()

	if !found {
		var zero V
		return zero, false
	}

	if entry.Expired(now) {
		s.mu.Lock()
		// Re-check under the write lock: another goroutine may have
		// refreshed the entry between the two lock acquisitions.
		if current, ok := s.lru.Get(key); ok && current.Expired(now) {
			s.lru.Remove(key)
		}
		s.mu.Unlock()

		var zero V
		return zero, false
	}

	return entry.Value, true
}

// Set stores value under key with the store's TTL.
func (s *Store[V]) Set(key string, value V) {
	s.mu.Lock()
	s.lru.Add(key, NewEntry(value, s.ttl))
	s.mu.Unlock()
}

// Remove evicts the entry for key if present.
func (s *Store[V]) Remove(key string) {
	s.mu.Lock()
	s.lru.Remove(key)
	s.mu.Unlock()
}

// Purge evicts every entry.
func (s *Store[V]) Purge() {
	s.mu.Lock()
	s.lru.Purge()
	s.mu.Unlock()
}

// Len returns the number of entries currently held, expired or not.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lru.Len()
}

// TTL returns the store's configured entry lifetime.
func (s *Store[V]) TTL() time.Duration {
	return s.ttl
}
