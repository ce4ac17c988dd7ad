package ports

import (
	"context"

	"github.com/recordkeep/records-api/internal/core/domain"
)

// AuthService authenticates credentials and manages the session lifecycle.
type AuthService interface {
	// Login verifies credentials, establishes a session and returns the
	// signed cookie token together with the authenticated user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	Logout(ctx context.Context, sessionID string) error
	// Whoami loads the user bound to an already-resolved session.
	Whoami(ctx context.Context, userID string) (*domain.User, error)
	// ResolveSession maps a signed cookie token to its live session; any
	// failure reads as an anonymous caller.
	ResolveSession(ctx context.Context, token string) (*Session, error)
	// TouchSession slides the session's idle-expiry window.
	TouchSession(ctx context.Context, sessionID string) error
}
