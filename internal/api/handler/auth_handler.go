package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/recordkeep/records-api/internal/api/metrics"
	"github.com/recordkeep/records-api/internal/api/middleware"
	"github.com/recordkeep/records-api/internal/api/respond"
	"github.com/recordkeep/records-api/internal/core/domain"
	"github.com/recordkeep/records-api/internal/core/ports"
)

// AuthHandler serves the /auth/log routes.
type AuthHandler struct {
	auth ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates the caller and sets the session cookie. Wrong
// credentials yield AccessDenied with no hint of which part was wrong.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return respond.Error(c, domain.ErrInvalidData)
	}

	token, user, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("denied").Inc()
		return respond.Error(c, err)
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return respond.OK(c, map[string]string{"role": user.Role})
}

// Logout destroys the current session and expires the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.auth.Logout(c.Request().Context(), sessionID(c)); err != nil {
		return respond.Error(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})

	return respond.OK(c, nil)
}

// Whoami returns the identity bound to the current session.
func (h *AuthHandler) Whoami(c echo.Context) error {
	userID, _ := caller(c)

	user, err := h.auth.Whoami(c.Request().Context(), userID)
	if err != nil {
		return respond.Error(c, err)
	}

	return respond.OK(c, map[string]string{
		"user":     user.ID,
		"username": user.Username,
		"role":     user.Role,
	})
}
