package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/recordkeep/records-api/internal/api/respond"
	"github.com/recordkeep/records-api/internal/core/domain"
)

// Access is a route's admission requirement.
type Access int

const (
	// AccessPublic admits anonymous callers.
	AccessPublic Access = iota
	// AccessSession requires an authenticated session.
	AccessSession
	// AccessAdmin requires an authenticated session with the admin role.
	AccessAdmin
)

// Admission rejects callers that do not satisfy the route's access level
// before the handler runs. Failures surface as an AccessDenied envelope.
func Admission(level Access) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if level == AccessPublic {
				return next(c)
			}

			userID, _ := c.Get(KeyUserID).(string)
			if userID == "" {
				return respond.Error(c, domain.ErrAccessDenied)
			}

			if level == AccessAdmin {
				role, _ := c.Get(KeyRole).(string)
				if role != domain.RoleAdmin {
					return respond.Error(c, domain.ErrAccessDenied)
				}
			}
			return next(c)
		}
	}
}
