package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/recordkeep/records-api/internal/core/domain"
	"github.com/recordkeep/records-api/internal/core/ports"
)

// SessionStore keeps sessions in Redis with a sliding idle expiry: every
// Touch re-arms the key's TTL, so Redis itself retires idle sessions and no
// sweeper is needed.
// Key format: session:<uuid>
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore wraps client with the given idle timeout.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &SessionStore{client: client, ttl: ttl}
}

type sessionRecord struct {
	UserID       string    `json:"user_id"`
	LastActivity time.Time `json:"last_activity"`
}

// Create establishes a fresh session for userID.
func (s *SessionStore) Create(ctx context.Context, userID string) (*ports.Session, error) {
	sess := ports.Session{
		ID:           uuid.NewString(),
		UserID:       userID,
		LastActivity: time.Now().UTC(),
	}

	payload, err := json.Marshal(sessionRecord{UserID: sess.UserID, LastActivity: sess.LastActivity})
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sess.ID), payload, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return &sess, nil
}

// Get returns the session or domain.ErrNotFound once the TTL has lapsed.
func (s *SessionStore) Get(ctx context.Context, id string) (*ports.Session, error) {
	raw, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var rec sessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &ports.Session{ID: id, UserID: rec.UserID, LastActivity: rec.LastActivity}, nil
}

// Touch slides the expiry window by rewriting the record and re-arming the
// TTL.
func (s *SessionStore) Touch(ctx context.Context, id string) error {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(sessionRecord{UserID: sess.UserID, LastActivity: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.client.Set(ctx, s.key(id), payload, s.ttl).Err()
}

// Delete removes a session. Deleting an unknown session is not an error.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.key(id)).Err()
}

func (s *SessionStore) key(id string) string {
	return "session:" + id
}
