// Package session provides the in-memory SessionStore used in tests and in
// deployments without Redis. Sessions expire after an idle timeout; a
// background sweeper reclaims the expired ones at a fixed interval.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/recordkeep/records-api/internal/core/domain"
	"github.com/recordkeep/records-api/internal/core/ports"
)

const (
	DefaultTTL           = 30 * time.Minute
	DefaultSweepInterval = 5 * time.Minute
)

// MemoryStore keeps sessions in a mutex-guarded map. The sweeper goroutine
// and request goroutines share it.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]ports.Session
	ttl      time.Duration
	now      func() time.Time
	log      zerolog.Logger
}

// NewMemoryStore creates a store with the given idle timeout. A non-positive
// ttl falls back to DefaultTTL.
func NewMemoryStore(ttl time.Duration, log zerolog.Logger) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		sessions: make(map[string]ports.Session),
		ttl:      ttl,
		now:      time.Now,
		log:      log,
	}
}

// Create establishes a fresh session for userID.
func (s *MemoryStore) Create(_ context.Context, userID string) (*ports.Session, error) {
	sess := ports.Session{
		ID:           uuid.NewString(),
		UserID:       userID,
		LastActivity: s.now(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return &sess, nil
}

// Get returns the session or domain.ErrNotFound when it is unknown or has
// sat idle past the timeout. Expired entries are removed on read so a stale
// cookie cannot outlive the sweep cycle.
func (s *MemoryStore) Get(_ context.Context, id string) (*ports.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if s.expired(sess) {
		delete(s.sessions, id)
		return nil, domain.ErrNotFound
	}
	return &sess, nil
}

// Touch slides the idle-expiry window of an active session.
func (s *MemoryStore) Touch(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || s.expired(sess) {
		delete(s.sessions, id)
		return domain.ErrNotFound
	}
	sess.LastActivity = s.now()
	s.sessions[id] = sess
	return nil
}

// Delete removes a session. Deleting an unknown session is not an error.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

// StartSweeper launches the fixed-interval cleanup goroutine. It stops when
// ctx is cancelled. A non-positive interval falls back to
// DefaultSweepInterval.
func (s *MemoryStore) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.Sweep(); n > 0 {
					s.log.Debug().Int("swept", n).Msg("expired sessions removed")
				}
			}
		}
	}()
}

// Sweep removes every expired session and returns how many were dropped.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	swept := 0
	for id, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, id)
			swept++
		}
	}
	return swept
}

// Len reports the number of live entries, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *MemoryStore) expired(sess ports.Session) bool {
	return s.now().Sub(sess.LastActivity) > s.ttl
}
