package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/recordkeep/records-api/internal/api/respond"
	"github.com/recordkeep/records-api/internal/core/domain"
	"github.com/recordkeep/records-api/internal/core/ports"
)

// ClientHandler serves the client CRUD routes.
type ClientHandler struct {
	clients ports.ClientService
}

func NewClientHandler(clients ports.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

type createClientRequest struct {
	BusinessID string `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
}

type updateClientRequest struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// List handles GET /clients — the whole collection, ownership-filtered for
// non-admin callers.
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.clients.List(c.Request().Context())
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, clients)
}

// Search handles GET /clients/:id — substring search over the business ID.
func (h *ClientHandler) Search(c echo.Context) error {
	businessID := c.Param("id")
	if businessID == "" {
		return respond.Error(c, domain.ErrPointlessRequest)
	}

	clients, err := h.clients.SearchByBusinessID(c.Request().Context(), businessID)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, clients)
}

// Get handles GET /client/:id.
func (h *ClientHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return respond.Error(c, domain.ErrPointlessRequest)
	}

	client, err := h.clients.Find(c.Request().Context(), id)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, client)
}

// Create handles POST /client. The owner is always the caller.
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return respond.Error(c, domain.ErrInvalidData)
	}

	userID, _ := caller(c)
	id, err := h.clients.Create(c.Request().Context(), ports.CreateClientInput{
		BusinessID: req.BusinessID,
		UserID:     userID,
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
	})
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, id)
}

// Update handles POST /updateclient/:id.
func (h *ClientHandler) Update(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return respond.Error(c, domain.ErrPointlessRequest)
	}

	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return respond.Error(c, domain.ErrInvalidData)
	}

	err := h.clients.Update(c.Request().Context(), id, ports.UpdateClientInput{
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, nil)
}

// Delete handles DELETE /client/:id.
func (h *ClientHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return respond.Error(c, domain.ErrPointlessRequest)
	}

	if err := h.clients.Delete(c.Request().Context(), id); err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, nil)
}
