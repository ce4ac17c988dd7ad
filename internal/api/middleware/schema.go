package middleware

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/recordkeep/records-api/internal/api/respond"
	"github.com/recordkeep/records-api/internal/core/domain"
	"github.com/recordkeep/records-api/internal/core/schema"
)

// maxBodyBytes bounds JSON bodies; file uploads take a different route.
const maxBodyBytes = 1 << 20

// ValidateBody gates a route on its body template before the handler runs.
// The body is restored afterwards so the handler can still bind it.
func ValidateBody(tpl schema.Template, strict bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBodyBytes))
			if err != nil {
				return respond.Error(c, domain.ErrInvalidRequest)
			}

			var doc map[string]any
			if err := json.Unmarshal(body, &doc); err != nil {
				return respond.Error(c, domain.ErrInvalidData)
			}
			if !schema.Validate(doc, tpl, strict) {
				return respond.Error(c, domain.ErrInvalidData)
			}

			c.Request().Body = io.NopCloser(bytes.NewReader(body))
			return next(c)
		}
	}
}
