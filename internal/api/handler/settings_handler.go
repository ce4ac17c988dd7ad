package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/recordkeep/records-api/internal/api/respond"
	"github.com/recordkeep/records-api/internal/core/domain"
	"github.com/recordkeep/records-api/internal/core/ports"
)

// SettingsHandler serves the /settings routes.
type SettingsHandler struct {
	settings ports.SettingsService
}

func NewSettingsHandler(settings ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

type updateSettingsRequest struct {
	AllowedFileExtensions []string `json:"ALLOWED_FILE_EXTENSIONS"`
	MaxFileSize           int64    `json:"MAX_FILE_SIZE"`
}

// Get handles GET /settings.
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.settings.Get(c.Request().Context())
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, settings)
}

// Update handles POST /settings (admin only).
func (h *SettingsHandler) Update(c echo.Context) error {
	var req updateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return respond.Error(c, domain.ErrInvalidData)
	}

	err := h.settings.Update(c.Request().Context(), domain.Settings{
		AllowedFileExtensions: req.AllowedFileExtensions,
		MaxFileSize:           req.MaxFileSize,
	})
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, nil)
}
