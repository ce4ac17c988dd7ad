package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/recordkeep/records-api/internal/api/respond"
	"github.com/recordkeep/records-api/internal/core/domain"
	"github.com/recordkeep/records-api/internal/core/ports"
)

// BillHandler serves the bill routes.
type BillHandler struct {
	bills ports.BillService
}

func NewBillHandler(bills ports.BillService) *BillHandler {
	return &BillHandler{bills: bills}
}

type createBillRequest struct {
	Ref         string `json:"ref"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description"`
	File        string `json:"file"`
	ClientID    string `json:"client"`
}

// List handles GET /bills.
func (h *BillHandler) List(c echo.Context) error {
	bills, err := h.bills.List(c.Request().Context())
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, bills)
}

// Search handles GET /bills/:ref — substring search over the ref field.
func (h *BillHandler) Search(c echo.Context) error {
	ref := c.Param("ref")
	if ref == "" {
		return respond.Error(c, domain.ErrPointlessRequest)
	}

	bills, err := h.bills.SearchByRef(c.Request().Context(), ref)
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, bills)
}

// Create handles POST /bill. The owner is always the caller; a duplicate ref
// is rejected before insert.
func (h *BillHandler) Create(c echo.Context) error {
	var req createBillRequest
	if err := c.Bind(&req); err != nil {
		return respond.Error(c, domain.ErrInvalidData)
	}

	userID, _ := caller(c)
	id, err := h.bills.Create(c.Request().Context(), ports.CreateBillInput{
		Ref:         req.Ref,
		UserID:      userID,
		Date:        req.Date,
		Type:        req.Type,
		Description: req.Description,
		File:        req.File,
		ClientID:    req.ClientID,
	})
	if err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, id)
}

// Delete handles DELETE /bill/:id — removes the bill, its stored file, and
// its entry in the linked client's bills list.
func (h *BillHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return respond.Error(c, domain.ErrPointlessRequest)
	}

	if err := h.bills.Delete(c.Request().Context(), id); err != nil {
		return respond.Error(c, err)
	}
	return respond.OK(c, nil)
}
