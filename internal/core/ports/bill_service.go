package ports

import (
	"context"

	"github.com/recordkeep/records-api/internal/core/domain"
)

// CreateBillInput carries the caller-supplied fields of a new bill.
type CreateBillInput struct {
	Ref         string
	UserID      string
	Date        string
	Type        string
	Description string
	File        string
	ClientID    string
}

// BillService implements bill operations, including the client back-link.
type BillService interface {
	List(ctx context.Context) ([]domain.Bill, error)
	// SearchByRef is a substring search over the "ref" field.
	SearchByRef(ctx context.Context, ref string) ([]domain.Bill, error)
	Create(ctx context.Context, input CreateBillInput) (string, error)
	Delete(ctx context.Context, id string) error
}
