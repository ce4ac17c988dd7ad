package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recordkeep/records-api/internal/api/metrics"
	"github.com/recordkeep/records-api/internal/api/respond"
	"github.com/recordkeep/records-api/internal/core/domain"
	"github.com/recordkeep/records-api/internal/core/ports"
)

// formFileField is the multipart field name uploads arrive under.
const formFileField = "File"

// FileHandler serves the file upload/download routes.
type FileHandler struct {
	files ports.FileService
}

func NewFileHandler(files ports.FileService) *FileHandler {
	return &FileHandler{files: files}
}

// Upload handles POST /file. A missing or unreadable part is
// InvalidRequest; a file failing the settings limits is InvalidFile.
func (h *FileHandler) Upload(c echo.Context) error {
	header, err := c.FormFile(formFileField)
	if err != nil {
		return respond.Error(c, domain.ErrInvalidRequest)
	}

	src, err := header.Open()
	if err != nil {
		return respond.Error(c, domain.ErrInvalidRequest)
	}
	defer src.Close()

	if _, err := h.files.Save(c.Request().Context(), header.Filename, header.Size, src); err != nil {
		if errors.Is(err, domain.ErrInvalidFile) {
			metrics.FilesRejectedTotal.Inc()
		}
		return respond.Error(c, err)
	}

	metrics.FilesStoredTotal.Inc()
	return respond.OK(c, nil)
}

// Download handles GET /file/:name, streaming the stored bytes.
func (h *FileHandler) Download(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return respond.Error(c, domain.ErrPointlessRequest)
	}

	stream, err := h.files.Open(c.Request().Context(), name)
	if err != nil {
		return respond.Error(c, err)
	}
	defer stream.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Stream(http.StatusOK, echo.MIMEOctetStream, stream)
}
