package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/recordkeep/records-api/internal/core/domain"
	"github.com/recordkeep/records-api/internal/core/ports"
)

// ClientService implements client CRUD over the repository.
type ClientService struct {
	clients ports.ClientRepository
	logger  zerolog.Logger
}

func NewClientService(clients ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{clients: clients, logger: logger}
}

func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.clients.Get(ctx)
}

func (s *ClientService) Find(ctx context.Context, id string) (*domain.Client, error) {
	return s.clients.Find(ctx, id)
}

func (s *ClientService) SearchByBusinessID(ctx context.Context, businessID string) ([]domain.Client, error) {
	return s.clients.Search(ctx, "id", businessID, false)
}

// Create inserts a client owned by the caller, with an empty bills list.
func (s *ClientService) Create(ctx context.Context, input ports.CreateClientInput) (string, error) {
	id, err := s.clients.Insert(ctx, &domain.Client{
		BusinessID: input.BusinessID,
		UserID:     input.UserID,
		Name:       input.Name,
		Phone:      input.Phone,
		Email:      input.Email,
		Address:    input.Address,
		Bills:      []string{},
	})
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("client", id).Str("user", input.UserID).Msg("client created")
	return id, nil
}

// Update replaces the three mutable contact fields. Owner and bills list are
// untouched.
func (s *ClientService) Update(ctx context.Context, id string, input ports.UpdateClientInput) error {
	client, err := s.clients.Find(ctx, id)
	if err != nil {
		return err
	}

	client.Phone = input.Phone
	client.Email = input.Email
	client.Address = input.Address
	return s.clients.Update(ctx, id, client)
}

func (s *ClientService) Delete(ctx context.Context, id string) error {
	removed, err := s.clients.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}
	return nil
}
