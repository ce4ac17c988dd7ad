package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/recordkeep/records-api/internal/core/ports"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "records_session"

// Context keys populated for authenticated requests.
const (
	KeySessionID = "session_id"
	KeyUserID    = "user_id"
	KeyUsername  = "username"
	KeyRole      = "role"
)

// Session resolves the caller's identity from the session cookie and slides
// the idle-expiry window. A missing, unknown or expired session leaves the
// request anonymous; admission middleware decides whether that matters.
func Session(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			ctx := c.Request().Context()
			sess, err := auth.ResolveSession(ctx, cookie.Value)
			if err != nil {
				return next(c)
			}

			user, err := auth.Whoami(ctx, sess.UserID)
			if err != nil {
				return next(c)
			}

			_ = auth.TouchSession(ctx, sess.ID)

			c.Set(KeySessionID, sess.ID)
			c.Set(KeyUserID, user.ID)
			c.Set(KeyUsername, user.Username)
			c.Set(KeyRole, user.Role)
			return next(c)
		}
	}
}
