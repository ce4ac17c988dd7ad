package ports

import (
	"context"

	"github.com/recordkeep/records-api/internal/core/domain"
)

// UserRepository persists user accounts.
type UserRepository interface {
	Get(ctx context.Context) ([]domain.User, error)
	Find(ctx context.Context, id string) (*domain.User, error)
	// FindByUsername is an exact-match (strict) lookup.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (string, error)
	// Update replaces the whole document; the ID never travels in the body.
	Update(ctx context.Context, id string, user *domain.User) error
	Delete(ctx context.Context, id string) (bool, error)
}
