package idempotency

import (
	"context"
	"sync"
	"time"
)

// Store remembers gateway payment ids that have already entered settlement,
// as a fast path in front of the payments table's unique key.
type Store interface {
	// Begin marks the key as in-flight. It returns false when the key was
	// already marked, i.e. the callback is a replay.
	Begin(ctx context.Context, key string) (bool, error)
	// Release drops the mark so a failed settlement can be retried.
	Release(ctx context.Context, key string) error
}

// MemoryStore is the in-process fallback used when Redis is not configured
// or unreachable.
type MemoryStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	marks map[string]time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &MemoryStore{ttl: ttl, marks: make(map[string]time.Time)}
}

func (m *MemoryStore) Begin(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if exp, ok := m.marks[key]; ok && now.Before(exp) {
		return false, nil
	}
	for k, exp := range m.marks {
		if now.After(exp) {
			delete(m.marks, k)
		}
	}
	m.marks[key] = now.Add(m.ttl)
	return true, nil
}

func (m *MemoryStore) Release(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.marks, key)
	return nil
}
