package ports

import (
	"context"

	"github.com/recordkeep/records-api/internal/core/domain"
)

// ClientRepository persists client records.
type ClientRepository interface {
	Get(ctx context.Context) ([]domain.Client, error)
	Find(ctx context.Context, id string) (*domain.Client, error)
	// Search matches on a single string field: strict means exact equality,
	// otherwise substring containment.
	Search(ctx context.Context, key, value string, strict bool) ([]domain.Client, error)
	Insert(ctx context.Context, client *domain.Client) (string, error)
	Update(ctx context.Context, id string, client *domain.Client) error
	Delete(ctx context.Context, id string) (bool, error)
}
