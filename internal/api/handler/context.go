package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/recordkeep/records-api/internal/api/middleware"
)

// caller extracts the authenticated identity injected by the session
// middleware. Admission middleware has already run on non-public routes, so
// an empty userID only ever reaches public handlers.
func caller(c echo.Context) (userID, role string) {
	userID, _ = c.Get(middleware.KeyUserID).(string)
	role, _ = c.Get(middleware.KeyRole).(string)
	return userID, role
}

// sessionID returns the resolved session's ID, empty for anonymous callers.
func sessionID(c echo.Context) string {
	id, _ := c.Get(middleware.KeySessionID).(string)
	return id
}
