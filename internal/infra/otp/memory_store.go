// Package otp contains the verification code store implementations.
package otp

import (
	"context"
	"sync"
	"time"

	"farmgrid/internal/domain/service"
)

// memoryStore keeps codes in an in-process map. Expiry is checked by
// timestamp comparison on read, so there are no background timers to leak.
// Fine for a single instance; multi-instance deployments need the Redis store.
type memoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	code      string
	expiresAt time.Time
}

// NewMemoryStore is the constructor for memoryStore.
func NewMemoryStore() service.OTPStore {
	return &memoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Put stores code for phone, replacing any previous code.
func (s *memoryStore) Put(_ context.Context, phone, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[phone] = memoryEntry{
		code:      code,
		expiresAt: s.now().Add(ttl),
	}

	return nil
}

// Take removes and returns the live code for phone. Expired entries are
// dropped on read.
func (s *memoryStore) Take(_ context.Context, phone string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[phone]
	if !ok {
		return "", false, nil
	}
	delete(s.entries, phone)

	if s.now().After(entry.expiresAt) {
		return "", false, nil
	}

	return entry.code, true, nil
}
