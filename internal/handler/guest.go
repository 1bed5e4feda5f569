package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/service"
)

// GuestHandler exposes the guest ledger CRUD.
type GuestHandler struct {
	Guests *service.GuestService
}

// NewGuestHandler constructs a GuestHandler.
func NewGuestHandler(guests *service.GuestService) *GuestHandler {
	if guests == nil {
		panic("nil service passed to NewGuestHandler")
	}
	return &GuestHandler{Guests: guests}
}

// Create handles POST /v1/guests.
func (h *GuestHandler) Create(c echo.Context) error {
	var in service.GuestInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	g, err := h.Guests.CreateGuest(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, g)
}

// Get handles GET /v1/guests/:id.
func (h *GuestHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	g, err := h.Guests.GetGuest(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, g)
}

// List handles GET /v1/guests with an optional name search.
func (h *GuestHandler) List(c echo.Context) error {
	offset, limit := pagination(c)
	guests, err := h.Guests.ListGuests(c.Request().Context(), c.QueryParam("search"), offset, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"guests": guests})
}

// Update handles PATCH /v1/guests/:id.
func (h *GuestHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var in service.GuestInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	g, err := h.Guests.UpdateGuest(c.Request().Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, g)
}

// Delete handles DELETE /v1/guests/:id. Guests with an active booking
// return 409.
func (h *GuestHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := h.Guests.DeleteGuest(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
