package ports

import (
	"context"
	"time"
)

// Session is the server-side state behind a session cookie.
type Session struct {
	ID           string
	UserID       string
	LastActivity time.Time
}

// SessionStore keeps sessions with sliding idle expiry. An unknown or expired
// session reads as domain.ErrNotFound — callers treat both as anonymous.
type SessionStore interface {
	Create(ctx context.Context, userID string) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	// Touch resets the idle-expiry window.
	Touch(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
