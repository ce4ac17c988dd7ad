package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recordkeep/records-api/internal/api/respond"
	"github.com/recordkeep/records-api/internal/core/domain"
)

// RestrictOwnership marks a request for response-level ownership filtering.
// Attached only to restricted routes; the mark is set when the caller is
// authenticated, not an admin, and the method is a read. Admins and writes
// always see full data. The filter itself runs in the respond package, after
// the handler has produced its payload.
func RestrictOwnership() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}

			userID, _ := c.Get(KeyUserID).(string)
			role, _ := c.Get(KeyRole).(string)
			if userID == "" || role == domain.RoleAdmin {
				return next(c)
			}

			c.Set(respond.KeyRestrictOwner, userID)
			return next(c)
		}
	}
}
