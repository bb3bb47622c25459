package security

import (
	"context"
	"sync"
	"time"
)

type throttleEntry struct {
	count        int
	windowStart  time.Time
	blockedUntil time.Time
}

// MemoryThrottleStore is an in-process ThrottleStore for single-node
// deployments and tests. A janitor goroutine evicts stale entries.
type MemoryThrottleStore struct {
	policy ThrottlePolicy

	mu      sync.Mutex
	entries map[string]*throttleEntry

	now  func() time.Time
	stop chan struct{}
}

// NewMemoryThrottleStore creates a memory store and starts its janitor.
func NewMemoryThrottleStore(policy ThrottlePolicy) *MemoryThrottleStore {
	s := &MemoryThrottleStore{
		policy:  policy,
		entries: make(map[string]*throttleEntry),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go s.janitor()
	return s
}

// Allow implements ThrottleStore.
func (s *MemoryThrottleStore) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return true, 0, nil
	}

	now := s.now()
	if now.Before(e.blockedUntil) {
		return false, e.blockedUntil.Sub(now), nil
	}
	if now.Sub(e.windowStart) > s.policy.Window {
		delete(s.entries, key)
	}
	return true, 0, nil
}

// RecordFailure implements ThrottleStore.
func (s *MemoryThrottleStore) RecordFailure(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.entries[key]
	if !ok || now.Sub(e.windowStart) > s.policy.Window {
		e = &throttleEntry{windowStart: now}
		s.entries[key] = e
	}

	e.count++
	if e.count >= s.policy.MaxAttempts {
		e.blockedUntil = now.Add(s.policy.BlockDuration)
	}
	return nil
}

// Reset implements ThrottleStore.
func (s *MemoryThrottleStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// Close stops the janitor goroutine.
func (s *MemoryThrottleStore) Close() {
	close(s.stop)
}

func (s *MemoryThrottleStore) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.evictStale()
		}
	}
}

func (s *MemoryThrottleStore) evictStale() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, e := range s.entries {
		if now.After(e.blockedUntil) && now.Sub(e.windowStart) > s.policy.Window {
			delete(s.entries, key)
		}
	}
}
