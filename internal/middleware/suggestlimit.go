package middleware

import (
	"sync"
	"time"
)

// CounterStore tracks per-key usage counters with a last-hit timestamp.
// The in-memory implementation below is the default; a shared store can
// be swapped in behind the same interface.
type CounterStore interface {
	// Increment bumps the counter for key and records when it happened.
	// Returns the new count.
	Increment(key string, at time.Time) int
	// Peek returns the current count and the time of the last increment
	// without mutating state.
	Peek(key string) (int, time.Time)
}

type counterEntry struct {
	count  int
	lastAt time.Time
}

// MemoryCounterStore is a process-local CounterStore. Counters are keyed
// by caller-provided strings; callers bake the reset period into the key.
type MemoryCounterStore struct {
	mu      sync.Mutex
	entries map[string]counterEntry
}

func NewMemoryCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{entries: make(map[string]counterEntry)}
}

func (s *MemoryCounterStore) Increment(key string, at time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entries[key]
	e.count++
	e.lastAt = at
	s.entries[key] = e
	return e.count
}

func (s *MemoryCounterStore) Peek(key string) (int, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entries[key]
	return e.count, e.lastAt
}

// SuggestLimiter enforces a per-user cooldown between suggestion calls
// and a per-user daily cap. Days roll over at midnight UTC.
type SuggestLimiter struct {
	store    CounterStore
	cooldown time.Duration
	dailyCap int
	now      func() time.Time
}

func NewSuggestLimiter(store CounterStore, cooldown time.Duration, dailyCap int) *SuggestLimiter {
	if store == nil {
		store = NewMemoryCounterStore()
	}
	return &SuggestLimiter{store: store, cooldown: cooldown, dailyCap: dailyCap, now: time.Now}
}

// Allow checks both limits for userID and, when the call is permitted,
// records it. Returns false with a retry hint when blocked.
func (l *SuggestLimiter) Allow(userID string) (bool, time.Duration) {
	now := l.now().UTC()
	key := userID + ":" + now.Format("2006-01-02")

	count, lastAt := l.store.Peek(key)
	if l.cooldown > 0 && !lastAt.IsZero() {
		if elapsed := now.Sub(lastAt); elapsed < l.cooldown {
			return false, l.cooldown - elapsed
		}
	}
	if l.dailyCap > 0 && count >= l.dailyCap {
		next := now.Truncate(24 * time.Hour).Add(24 * time.Hour)
		return false, next.Sub(now)
	}

	l.store.Increment(key, now)
	return true, 0
}
