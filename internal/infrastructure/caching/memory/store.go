// Package memory is the default process-local result store. Expired entries
// are shadowed on lookup and overwritten on the next store; nothing actively
// purges them. The trade-off (stale keys accumulate for the lifetime of the
// process) is accepted in exchange for zero coordination.
package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	clock   Clock
}

func New(clock Clock) *Store {
	return &Store{entries: map[string]entry{}, clock: clock}
}

// Get reports a hit only while the entry's TTL has not elapsed. Values are
// stored as JSON so cached results cannot alias live response slices.
func (s *Store) Get(ctx context.Context, key string, dest any) (bool, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || !s.clock.Now().Before(e.expiresAt) {
		return false, nil
	}
	if err := json.Unmarshal(e.value, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set overwrites unconditionally; last writer wins.
func (s *Store) Set(ctx context.Context, key string, val any, ttl time.Duration) error {
	bytes, err := json.Marshal(val)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.entries[key] = entry{value: bytes, expiresAt: s.clock.Now().Add(ttl)}
	s.mu.Unlock()
	return nil
}
