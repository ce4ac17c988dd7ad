package service

import (
	"context"
	"errors"
	"slices"

	"github.com/rs/zerolog"

	"github.com/recordkeep/records-api/internal/core/domain"
	"github.com/recordkeep/records-api/internal/core/ports"
)

// SettingsService reads and updates the operational-limits singleton.
type SettingsService struct {
	settings ports.SettingsRepository
	logger   zerolog.Logger
}

func NewSettingsService(settings ports.SettingsRepository, logger zerolog.Logger) *SettingsService {
	return &SettingsService{settings: settings, logger: logger}
}

// Get returns the stored settings, falling back to the defaults when nothing
// was ever stored.
func (s *SettingsService) Get(ctx context.Context) (domain.Settings, error) {
	stored, err := s.settings.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, err
	}
	return *stored, nil
}

// Update validates the submitted limits against the fixed extension
// allow-list and size ceiling, then upserts the singleton.
func (s *SettingsService) Update(ctx context.Context, settings domain.Settings) error {
	if len(settings.AllowedFileExtensions) == 0 {
		return domain.ErrInvalidData
	}
	for _, ext := range settings.AllowedFileExtensions {
		if !slices.Contains(domain.KnownFileExtensions, ext) {
			return domain.ErrInvalidData
		}
	}
	if settings.MaxFileSize <= 0 || settings.MaxFileSize > domain.MaxFileSizeCeiling {
		return domain.ErrInvalidData
	}

	if err := s.settings.Put(ctx, settings); err != nil {
		return err
	}

	s.logger.Info().
		Strs("extensions", settings.AllowedFileExtensions).
		Int64("max_file_size", settings.MaxFileSize).
		Msg("settings updated")
	return nil
}
