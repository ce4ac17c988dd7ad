package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/recordkeep/records-api/internal/core/domain"
)

type stubSettingsRepo struct {
	stored *domain.Settings
}

func (r *stubSettingsRepo) Get(_ context.Context) (*domain.Settings, error) {
	if r.stored == nil {
		return nil, domain.ErrNotFound
	}
	clone := *r.stored
	return &clone, nil
}

func (r *stubSettingsRepo) Put(_ context.Context, settings domain.Settings) error {
	r.stored = &settings
	return nil
}

func TestSettingsService_Get_DefaultsWhenEmpty(t *testing.T) {
	svc := NewSettingsService(&stubSettingsRepo{}, zerolog.Nop())

	settings, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	want := domain.DefaultSettings()
	if settings.MaxFileSize != want.MaxFileSize {
		t.Fatalf("max file size = %d, want %d", settings.MaxFileSize, want.MaxFileSize)
	}
	if len(settings.AllowedFileExtensions) != len(want.AllowedFileExtensions) {
		t.Fatalf("extensions = %v, want %v", settings.AllowedFileExtensions, want.AllowedFileExtensions)
	}
}

func TestSettingsService_Update_Valid(t *testing.T) {
	repo := &stubSettingsRepo{}
	svc := NewSettingsService(repo, zerolog.Nop())

	submitted := domain.Settings{
		AllowedFileExtensions: []string{".pdf", ".png"},
		MaxFileSize:           8000000,
	}
	if err := svc.Update(context.Background(), submitted); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.MaxFileSize != 8000000 || len(stored.AllowedFileExtensions) != 2 {
		t.Fatalf("stored = %+v", stored)
	}
}

func TestSettingsService_Update_Rejections(t *testing.T) {
	cases := []struct {
		name     string
		settings domain.Settings
	}{
		{"no extensions", domain.Settings{AllowedFileExtensions: []string{}, MaxFileSize: 1000}},
		{"unknown extension", domain.Settings{AllowedFileExtensions: []string{".exe"}, MaxFileSize: 1000}},
		{"zero size", domain.Settings{AllowedFileExtensions: []string{".pdf"}, MaxFileSize: 0}},
		{"negative size", domain.Settings{AllowedFileExtensions: []string{".pdf"}, MaxFileSize: -1}},
		{"over ceiling", domain.Settings{AllowedFileExtensions: []string{".pdf"}, MaxFileSize: domain.MaxFileSizeCeiling + 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubSettingsRepo{}
			svc := NewSettingsService(repo, zerolog.Nop())
			if err := svc.Update(context.Background(), tc.settings); !errors.Is(err, domain.ErrInvalidData) {
				t.Fatalf("expected ErrInvalidData, got %v", err)
			}
			if repo.stored != nil {
				t.Fatalf("rejected settings reached the store: %+v", repo.stored)
			}
		})
	}
}
