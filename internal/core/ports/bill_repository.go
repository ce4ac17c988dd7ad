package ports

import (
	"context"

	"github.com/recordkeep/records-api/internal/core/domain"
)

// BillRepository persists bill records.
type BillRepository interface {
	Get(ctx context.Context) ([]domain.Bill, error)
	Find(ctx context.Context, id string) (*domain.Bill, error)
	Search(ctx context.Context, key, value string, strict bool) ([]domain.Bill, error)
	Insert(ctx context.Context, bill *domain.Bill) (string, error)
	Delete(ctx context.Context, id string) (bool, error)
}
