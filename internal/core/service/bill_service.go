package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/recordkeep/records-api/internal/core/domain"
	"github.com/recordkeep/records-api/internal/core/ports"
)

// BillService implements bill operations and keeps the client back-link
// current. Bill insert and client update are two independent store writes
// with no transaction: a failed second step leaves the bill unlinked. The
// window is logged, not compensated.
type BillService struct {
	bills   ports.BillRepository
	clients ports.ClientRepository
	files   ports.FileStore
	logger  zerolog.Logger
}

func NewBillService(bills ports.BillRepository, clients ports.ClientRepository, files ports.FileStore, logger zerolog.Logger) *BillService {
	return &BillService{bills: bills, clients: clients, files: files, logger: logger}
}

func (s *BillService) List(ctx context.Context) ([]domain.Bill, error) {
	return s.bills.Get(ctx)
}

func (s *BillService) SearchByRef(ctx context.Context, ref string) ([]domain.Bill, error) {
	return s.bills.Search(ctx, "ref", ref, false)
}

// Create inserts a bill owned by the caller. A duplicate ref is rejected, and
// when the bill names a client, the new ID is appended to that client's
// bills list.
func (s *BillService) Create(ctx context.Context, input ports.CreateBillInput) (string, error) {
	existing, err := s.bills.Search(ctx, "ref", input.Ref, true)
	if err != nil {
		return "", err
	}
	if len(existing) > 0 {
		return "", domain.ErrInvalidData
	}

	id, err := s.bills.Insert(ctx, &domain.Bill{
		Ref:         input.Ref,
		UserID:      input.UserID,
		Date:        input.Date,
		Type:        input.Type,
		Description: input.Description,
		File:        input.File,
		ClientID:    input.ClientID,
	})
	if err != nil {
		return "", err
	}

	if input.ClientID != "" {
		if err := s.linkToClient(ctx, input.ClientID, id); err != nil {
			s.logger.Warn().Err(err).
				Str("bill", id).
				Str("client", input.ClientID).
				Msg("bill stored but client back-link failed")
		}
	}

	s.logger.Info().Str("bill", id).Str("ref", input.Ref).Msg("bill created")
	return id, nil
}

// Delete removes a bill, its stored file, and its entry in the linked
// client's bills list.
func (s *BillService) Delete(ctx context.Context, id string) error {
	bill, err := s.bills.Find(ctx, id)
	if err != nil {
		return err
	}

	if bill.File != "" {
		if err := s.files.DeleteByName(ctx, bill.File); err != nil {
			s.logger.Warn().Err(err).Str("file", bill.File).Msg("bill file removal failed")
		}
	}

	if _, err := s.bills.Delete(ctx, id); err != nil {
		return err
	}

	if bill.ClientID != "" {
		if err := s.unlinkFromClient(ctx, bill.ClientID, id); err != nil {
			s.logger.Warn().Err(err).
				Str("bill", id).
				Str("client", bill.ClientID).
				Msg("bill removed but client back-link kept")
		}
	}
	return nil
}

func (s *BillService) linkToClient(ctx context.Context, clientID, billID string) error {
	client, err := s.clients.Find(ctx, clientID)
	if err != nil {
		return err
	}
	client.Bills = append(client.Bills, billID)
	return s.clients.Update(ctx, clientID, client)
}

func (s *BillService) unlinkFromClient(ctx context.Context, clientID, billID string) error {
	client, err := s.clients.Find(ctx, clientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}

	kept := client.Bills[:0]
	for _, b := range client.Bills {
		if b != billID {
			kept = append(kept, b)
		}
	}
	client.Bills = kept
	return s.clients.Update(ctx, clientID, client)
}
