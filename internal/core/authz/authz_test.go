package authz

import (
	"errors"
	"testing"

	"github.com/recordkeep/records-api/internal/core/domain"
)

func TestRestrictedSegment(t *testing.T) {
	for _, segment := range []string{"clients", "client", "bills"} {
		if !RestrictedSegment(segment) {
			t.Fatalf("expected %q to be restricted", segment)
		}
	}
	for _, segment := range []string{"bill", "updateclient", "file", "admin", "settings", ""} {
		if RestrictedSegment(segment) {
			t.Fatalf("expected %q not to be restricted", segment)
		}
	}
}

func TestFilterPayload_CollectionKeepsOwnOrder(t *testing.T) {
	docs := []domain.Client{
		{BusinessID: "1", UserID: "alice"},
		{BusinessID: "2", UserID: "bob"},
		{BusinessID: "3", UserID: "alice"},
		{BusinessID: "4", UserID: "carol"},
		{BusinessID: "5", UserID: "alice"},
	}

	filtered, err := FilterPayload(docs, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	kept, ok := filtered.([]domain.Client)
	if !ok {
		t.Fatalf("expected []domain.Client, got %T", filtered)
	}
	if len(kept) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(kept))
	}
	for i, want := range []string{"1", "3", "5"} {
		if kept[i].BusinessID != want {
			t.Fatalf("order broken at %d: got %q, want %q", i, kept[i].BusinessID, want)
		}
	}
}

func TestFilterPayload_CollectionAllForeign(t *testing.T) {
	docs := []domain.Bill{
		{Ref: "a", UserID: "bob"},
		{Ref: "b", UserID: "carol"},
	}

	filtered, err := FilterPayload(docs, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kept := filtered.([]domain.Bill); len(kept) != 0 {
		t.Fatalf("expected empty result, got %d documents", len(kept))
	}
}

func TestFilterPayload_SingleOwnDocument(t *testing.T) {
	doc := &domain.Client{BusinessID: "1", UserID: "alice"}

	filtered, err := FilterPayload(doc, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filtered != any(doc) {
		t.Fatalf("expected own document to pass through unchanged")
	}
}

func TestFilterPayload_SingleForeignDocument(t *testing.T) {
	doc := &domain.Bill{Ref: "a", UserID: "bob"}

	if _, err := FilterPayload(doc, "alice"); !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}

func TestFilterPayload_UnownedPassthrough(t *testing.T) {
	payload := map[string]string{"role": "normal"}

	filtered, err := FilterPayload(payload, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := filtered.(map[string]string); !ok {
		t.Fatalf("expected unowned payload to pass through")
	}
}
