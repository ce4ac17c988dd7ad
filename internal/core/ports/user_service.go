package ports

import (
	"context"

	"github.com/recordkeep/records-api/internal/core/domain"
)

// UserService implements the admin-only account operations.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, username, password, role string) (string, error)
	ResetPassword(ctx context.Context, username, password string) error
	// ChangePassword verifies the caller's current password before replacing it.
	ChangePassword(ctx context.Context, userID, current, newPassword string) error
	// SetAdmin grants or revokes the admin role. A caller may not change
	// their own role.
	SetAdmin(ctx context.Context, targetID, callerID string, admin bool) error
}
