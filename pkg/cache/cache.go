// Package cache provides a generic in-memory key-value store with TTL-based
// expiration. Validity is checked at read time; expired entries are removed
// either by an explicit Sweep or by being overwritten.
package cache

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultSweepChance is the probability used by MaybeSweep when none is configured.
const DefaultSweepChance = 0.1

// Entry holds a cached value together with its write and expiry instants.
type Entry[T any] struct {
	Value     T
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Valid reports whether the entry is still servable at the given instant.
func (e Entry[T]) Valid(now time.Time) bool {
	return now.Before(e.ExpiresAt)
}

// Store is an in-memory TTL cache for values of a single type. Each logical
// cache tier owns its own Store instance, so keys of different tiers can never
// collide and values never need a runtime type assertion.
type Store[T any] struct {
	mu          sync.Mutex
	entries     map[string]Entry[T]
	sweepChance float64
	now         func() time.Time
	randFloat   func() float64
}

// Option configures a Store.
type Option[T any] func(*Store[T])

// WithSweepChance sets the probability that MaybeSweep triggers a full sweep.
func WithSweepChance[T any](chance float64) Option[T] {
	return func(s *Store[T]) {
		s.sweepChance = chance
	}
}

// WithClock overrides the time source, used by tests to pin expiry boundaries.
func WithClock[T any](now func() time.Time) Option[T] {
	return func(s *Store[T]) {
		s.now = now
	}
}

// WithRand overrides the random source used by MaybeSweep.
func WithRand[T any](randFloat func() float64) Option[T] {
	return func(s *Store[T]) {
		s.randFloat = randFloat
	}
}

// New creates an empty Store.
func New[T any](opts ...Option[T]) *Store[T] {
	s := &Store[T]{
		entries:     make(map[string]Entry[T]),
		sweepChance: DefaultSweepChance,
		now:         time.Now,
		randFloat:   rand.Float64,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the entry stored under key, expired or not. The second return
// value reports presence; callers decide validity via Entry.Valid or GetValid.
func (s *Store[T]) Get(key string) (Entry[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	return entry, ok
}

// GetValid returns the value under key only when the entry exists and has not
// expired. It never mutates the store.
func (s *Store[T]) GetValid(key string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok || !entry.Valid(s.now()) {
		var zero T
		return zero, false
	}
	return entry.Value, true
}

// Set stores value under key, unconditionally overwriting any previous entry.
// The entry expires ttl after the current instant.
func (s *Store[T]) Set(key string, value T, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.entries[key] = Entry[T]{
		Value:     value,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// Sweep removes every entry whose expiry is at or before the current instant
// and returns the number of removed entries.
func (s *Store[T]) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for key, entry := range s.entries {
		if !entry.ExpiresAt.After(now) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// MaybeSweep runs Sweep with the configured probability. Sweeping
// opportunistically after writes keeps the map from growing without bound
// while keeping the common read path free of scan cost.
func (s *Store[T]) MaybeSweep() bool {
	if s.randFloat() >= s.sweepChance {
		return false
	}
	s.Sweep()
	return true
}

// Len returns the number of entries currently held, expired ones included.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}
