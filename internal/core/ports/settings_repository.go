package ports

import (
	"context"

	"github.com/recordkeep/records-api/internal/core/domain"
)

// SettingsRepository persists the singleton settings document.
type SettingsRepository interface {
	// Get returns domain.ErrNotFound when no settings were ever stored.
	Get(ctx context.Context) (*domain.Settings, error)
	// Put inserts or replaces the singleton.
	Put(ctx context.Context, settings domain.Settings) error
}
