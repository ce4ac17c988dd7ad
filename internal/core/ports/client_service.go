package ports

import (
	"context"

	"github.com/recordkeep/records-api/internal/core/domain"
)

// CreateClientInput carries the caller-supplied fields of a new client.
// UserID is the authenticated creator, never taken from the body.
type CreateClientInput struct {
	BusinessID string
	UserID     string
	Name       string
	Phone      string
	Email      string
	Address    string
}

// UpdateClientInput holds the three mutable contact fields.
type UpdateClientInput struct {
	Phone   string
	Email   string
	Address string
}

// ClientService implements client CRUD.
type ClientService interface {
	List(ctx context.Context) ([]domain.Client, error)
	Find(ctx context.Context, id string) (*domain.Client, error)
	// SearchByBusinessID is a substring search over the "id" field.
	SearchByBusinessID(ctx context.Context, businessID string) ([]domain.Client, error)
	Create(ctx context.Context, input CreateClientInput) (string, error)
	Update(ctx context.Context, id string, input UpdateClientInput) error
	Delete(ctx context.Context, id string) error
}
