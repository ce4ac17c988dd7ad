package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/recordkeep/records-api/internal/core/domain"
	"github.com/recordkeep/records-api/internal/core/ports"
)

type stubBillRepo struct {
	bills  map[string]*domain.Bill
	nextID int
}

func newStubBillRepo() *stubBillRepo {
	return &stubBillRepo{bills: make(map[string]*domain.Bill)}
}

func (r *stubBillRepo) Get(_ context.Context) ([]domain.Bill, error) {
	bills := []domain.Bill{}
	for _, b := range r.bills {
		bills = append(bills, *b)
	}
	return bills, nil
}

func (r *stubBillRepo) Find(_ context.Context, id string) (*domain.Bill, error) {
	if b, ok := r.bills[id]; ok {
		clone := *b
		return &clone, nil
	}
	return nil, domain.ErrNotFound
}

func (r *stubBillRepo) Search(_ context.Context, key, value string, strict bool) ([]domain.Bill, error) {
	if key != "ref" {
		return nil, fmt.Errorf("unexpected search key %q", key)
	}
	matches := []domain.Bill{}
	for _, b := range r.bills {
		if strict && b.Ref == value || !strict && strings.Contains(b.Ref, value) {
			matches = append(matches, *b)
		}
	}
	return matches, nil
}

func (r *stubBillRepo) Insert(_ context.Context, bill *domain.Bill) (string, error) {
	r.nextID++
	clone := *bill
	clone.ID = fmt.Sprintf("bill-%d", r.nextID)
	r.bills[clone.ID] = &clone
	return clone.ID, nil
}

func (r *stubBillRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.bills[id]; !ok {
		return false, nil
	}
	delete(r.bills, id)
	return true, nil
}

type stubClientRepo struct {
	clients map[string]*domain.Client
	nextID  int
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[string]*domain.Client)}
}

func (r *stubClientRepo) addClient(businessID, userID string) *domain.Client {
	r.nextID++
	client := &domain.Client{
		ID:         fmt.Sprintf("client-%d", r.nextID),
		BusinessID: businessID,
		UserID:     userID,
		Bills:      []string{},
	}
	r.clients[client.ID] = client
	return client
}

func (r *stubClientRepo) Get(_ context.Context) ([]domain.Client, error) {
	clients := []domain.Client{}
	for _, c := range r.clients {
		clients = append(clients, *c)
	}
	return clients, nil
}

func (r *stubClientRepo) Find(_ context.Context, id string) (*domain.Client, error) {
	if c, ok := r.clients[id]; ok {
		clone := *c
		clone.Bills = append([]string{}, c.Bills...)
		return &clone, nil
	}
	return nil, domain.ErrNotFound
}

func (r *stubClientRepo) Search(_ context.Context, key, value string, strict bool) ([]domain.Client, error) {
	matches := []domain.Client{}
	for _, c := range r.clients {
		if strict && c.BusinessID == value || !strict && strings.Contains(c.BusinessID, value) {
			matches = append(matches, *c)
		}
	}
	return matches, nil
}

func (r *stubClientRepo) Insert(_ context.Context, client *domain.Client) (string, error) {
	r.nextID++
	clone := *client
	clone.ID = fmt.Sprintf("client-%d", r.nextID)
	r.clients[clone.ID] = &clone
	return clone.ID, nil
}

func (r *stubClientRepo) Update(_ context.Context, id string, client *domain.Client) error {
	if _, ok := r.clients[id]; !ok {
		return domain.ErrNotFound
	}
	clone := *client
	clone.ID = id
	r.clients[id] = &clone
	return nil
}

func (r *stubClientRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.clients[id]; !ok {
		return false, nil
	}
	delete(r.clients, id)
	return true, nil
}

type stubFileStore struct {
	files   map[string][]byte
	deleted []string
}

func newStubFileStore() *stubFileStore {
	return &stubFileStore{files: make(map[string][]byte)}
}

func (s *stubFileStore) Save(_ context.Context, name string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.files[name] = data
	return "file-" + name, nil
}

func (s *stubFileStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	data, ok := s.files[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return io.NopCloser(strings.NewReader(string(data))), nil
}

func (s *stubFileStore) Exists(_ context.Context, name string) (bool, error) {
	_, ok := s.files[name]
	return ok, nil
}

func (s *stubFileStore) DeleteByName(_ context.Context, name string) error {
	delete(s.files, name)
	s.deleted = append(s.deleted, name)
	return nil
}

func (s *stubFileStore) DeleteByID(_ context.Context, id string) error {
	return nil
}

func TestBillService_Create_DuplicateRef(t *testing.T) {
	bills := newStubBillRepo()
	svc := NewBillService(bills, newStubClientRepo(), newStubFileStore(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateBillInput{Ref: "INV-001", UserID: "alice"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateBillInput{Ref: "INV-001", UserID: "bob"}); !errors.Is(err, domain.ErrInvalidData) {
		t.Fatalf("expected ErrInvalidData for duplicate ref, got %v", err)
	}
}

func TestBillService_Create_LinksClient(t *testing.T) {
	bills := newStubBillRepo()
	clients := newStubClientRepo()
	client := clients.addClient("ACME-42", "alice")
	svc := NewBillService(bills, clients, newStubFileStore(), zerolog.Nop())

	id, err := svc.Create(context.Background(), ports.CreateBillInput{
		Ref:      "INV-002",
		UserID:   "alice",
		ClientID: client.ID,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, _ := clients.Find(context.Background(), client.ID)
	if len(stored.Bills) != 1 || stored.Bills[0] != id {
		t.Fatalf("back-link not recorded: %v", stored.Bills)
	}
}

func TestBillService_Create_UnknownClientStillStored(t *testing.T) {
	bills := newStubBillRepo()
	svc := NewBillService(bills, newStubClientRepo(), newStubFileStore(), zerolog.Nop())

	id, err := svc.Create(context.Background(), ports.CreateBillInput{
		Ref:      "INV-003",
		UserID:   "alice",
		ClientID: "no-such-client",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := bills.Find(context.Background(), id); err != nil {
		t.Fatalf("bill not stored: %v", err)
	}
}

func TestBillService_Delete_RemovesFileAndBackLink(t *testing.T) {
	bills := newStubBillRepo()
	clients := newStubClientRepo()
	files := newStubFileStore()
	client := clients.addClient("ACME-42", "alice")
	svc := NewBillService(bills, clients, files, zerolog.Nop())

	files.files["invoice.pdf"] = []byte("pdf")
	id, err := svc.Create(context.Background(), ports.CreateBillInput{
		Ref:      "INV-004",
		UserID:   "alice",
		File:     "invoice.pdf",
		ClientID: client.ID,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := bills.Find(context.Background(), id); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("bill still present: %v", err)
	}
	if len(files.deleted) != 1 || files.deleted[0] != "invoice.pdf" {
		t.Fatalf("file not removed: %v", files.deleted)
	}
	stored, _ := clients.Find(context.Background(), client.ID)
	if len(stored.Bills) != 0 {
		t.Fatalf("back-link kept: %v", stored.Bills)
	}
}

func TestBillService_Delete_Unknown(t *testing.T) {
	svc := NewBillService(newStubBillRepo(), newStubClientRepo(), newStubFileStore(), zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBillService_SearchByRef_Substring(t *testing.T) {
	bills := newStubBillRepo()
	svc := NewBillService(bills, newStubClientRepo(), newStubFileStore(), zerolog.Nop())

	for _, ref := range []string{"INV-2026-01", "INV-2026-02", "CRN-2026-01"} {
		if _, err := svc.Create(context.Background(), ports.CreateBillInput{Ref: ref, UserID: "alice"}); err != nil {
			t.Fatalf("create %s failed: %v", ref, err)
		}
	}

	matches, err := svc.SearchByRef(context.Background(), "INV-2026")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
}
