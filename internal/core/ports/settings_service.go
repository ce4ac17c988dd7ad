package ports

import (
	"context"

	"github.com/recordkeep/records-api/internal/core/domain"
)

// SettingsService reads and updates the operational-limits singleton.
type SettingsService interface {
	// Get returns stored settings, or the defaults when none exist yet.
	Get(ctx context.Context) (domain.Settings, error)
	Update(ctx context.Context, settings domain.Settings) error
}
