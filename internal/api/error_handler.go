package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/recordkeep/records-api/internal/api/respond"
	"github.com/recordkeep/records-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that keeps the
// envelope contract even for errors that escape the handlers:
//   - Domain errors render as their envelope status with HTTP 200.
//   - Echo's own errors (unmatched route, oversized body) keep their HTTP
//     code but still carry an envelope body.
//   - Anything else is logged and rendered as InvalidRequest; no stack trace
//     or internal message ever reaches a client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, respond.Envelope{Status: domain.StatusInvalidRequest, Response: nil})
			return
		}

		status := domain.StatusOf(err)
		if status == domain.StatusInvalidRequest && !errors.Is(err, domain.ErrInvalidRequest) {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unhandled error")
		}

		_ = c.JSON(http.StatusOK, respond.Envelope{Status: status, Response: nil})
	}
}
