// Package cache provides the in-memory checkout session store. Sessions are
// short-lived by design, so process-local storage with a TTL is sufficient;
// a restart simply forces customers to re-quote.
package cache

import (
	"context"
	"sync"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
)

// DefaultSessionTTL is how long a checkout session stays valid. The quote
// inside a session is a snapshot; a stale quote must not silently convert
// into an order.
const DefaultSessionTTL = 30 * time.Minute

type storedSession struct {
	session   ports.CheckoutSession
	expiresAt time.Time
}

// InMemorySessionStore implements ports.SessionStore with a mutex-guarded
// map. Expiry is checked on read; Sweep removes expired entries in bulk and
// is run from a background job.
type InMemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[kernel.UUID]storedSession
	ttl      time.Duration
	now      func() time.Time
}

// NewInMemorySessionStore creates a store with the given TTL.
// A non-positive TTL falls back to DefaultSessionTTL.
func NewInMemorySessionStore(ttl time.Duration) *InMemorySessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	return &InMemorySessionStore{
		sessions: make(map[kernel.UUID]storedSession),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Set stores the session, stamping its expiry window.
func (s *InMemorySessionStore) Set(_ context.Context, session ports.CheckoutSession) error {
	if err := session.ID.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = storedSession{
		session:   session,
		expiresAt: s.now().Add(s.ttl),
	}
	return nil
}

// Get retrieves a live session. An expired entry is removed and reported as
// expired, never returned.
func (s *InMemorySessionStore) Get(_ context.Context, id kernel.UUID) (ports.CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.sessions[id]
	if !ok {
		return ports.CheckoutSession{}, ports.ErrSessionNotFound
	}

	if s.now().After(stored.expiresAt) {
		delete(s.sessions, id)
		return ports.CheckoutSession{}, ports.ErrSessionExpired
	}

	return stored.session, nil
}

// Delete removes a session. Unknown ids are ignored.
func (s *InMemorySessionStore) Delete(_ context.Context, id kernel.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

// Sweep removes all expired sessions and returns how many were removed.
func (s *InMemorySessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, stored := range s.sessions {
		if now.After(stored.expiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}

	return removed
}

// Len returns the number of stored sessions, expired entries included.
func (s *InMemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
