package service

import (
	"context"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/recordkeep/records-api/internal/core/domain"
	"github.com/recordkeep/records-api/internal/core/ports"
)

// FileService stores uploads after checking them against the current
// settings limits.
type FileService struct {
	store    ports.FileStore
	settings ports.SettingsService
	logger   zerolog.Logger
}

func NewFileService(store ports.FileStore, settings ports.SettingsService, logger zerolog.Logger) *FileService {
	return &FileService{store: store, settings: settings, logger: logger}
}

// Save rejects a file whose extension is not allowed or whose declared size
// exceeds the configured maximum, then streams it into the blob store.
func (s *FileService) Save(ctx context.Context, name string, size int64, r io.Reader) (string, error) {
	limits, err := s.settings.Get(ctx)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" || !slices.Contains(limits.AllowedFileExtensions, ext) {
		return "", domain.ErrInvalidFile
	}
	if size <= 0 || size > limits.MaxFileSize {
		return "", domain.ErrInvalidFile
	}

	id, err := s.store.Save(ctx, name, io.LimitReader(r, limits.MaxFileSize))
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("file", name).Int64("size", size).Msg("file stored")
	return id, nil
}

// Open streams a stored file by name.
func (s *FileService) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return s.store.Open(ctx, name)
}
