package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/recordkeep/records-api/internal/api/respond"
	"github.com/recordkeep/records-api/internal/core/domain"
	"github.com/recordkeep/records-api/internal/core/ports"
)

// AdminHandler serves the /admin routes.
type AdminHandler struct {
	users ports.UserService
}

func NewAdminHandler(users ports.UserService) *AdminHandler {
	return &AdminHandler{users: users}
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type resetPasswordRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	Current string `json:"current"`
	New     string `json:"new"`
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, users)
}

// CreateUser handles POST /admin/users.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return respond.Error(c, domain.ErrInvalidData)
	}

	id, err := h.users.Create(c.Request().Context(), req.Username, req.Password, req.Role)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, id)
}

// ResetPassword handles POST /admin/resetpassword — replaces another
// account's password.
func (h *AdminHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return respond.Error(c, domain.ErrInvalidData)
	}

	if err := h.users.ResetPassword(c.Request().Context(), req.Username, req.Password); err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, nil)
}

// ChangePassword handles POST /admin/changepassword — replaces the caller's
// own password after verifying the current one.
func (h *AdminHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return respond.Error(c, domain.ErrInvalidData)
	}

	userID, _ := caller(c)
	if err := h.users.ChangePassword(c.Request().Context(), userID, req.Current, req.New); err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, nil)
}

// AddAdmin handles GET /admin/addadmin/:id.
func (h *AdminHandler) AddAdmin(c echo.Context) error {
	return h.setAdmin(c, true)
}

// RemoveAdmin handles GET /admin/removeadmin/:id.
func (h *AdminHandler) RemoveAdmin(c echo.Context) error {
	return h.setAdmin(c, false)
}

func (h *AdminHandler) setAdmin(c echo.Context, admin bool) error {
	id := c.Param("id")
	if id == "" {
		return respond.Error(c, domain.ErrPointlessRequest)
	}

	callerID, _ := caller(c)
	if err := h.users.SetAdmin(c.Request().Context(), id, callerID, admin); err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, nil)
}
