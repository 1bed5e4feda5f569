package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/repository"
	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/service"
)

// BookingHandler exposes the booking lifecycle engine over HTTP:
// create/checkin/checkout/delete plus the invoice mutations (line
// items, taxes, discounts) and the invoice detail view.
type BookingHandler struct {
	Bookings *service.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
	if bookings == nil {
		panic("nil service passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: bookings}
}

type createBookingReq struct {
	GuestID    uint64           `json:"guest_id"`
	RoomNumber uint64           `json:"room_number"`
	Price      *decimal.Decimal `json:"price,omitempty"`
}

// Create handles POST /v1/bookings.
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.GuestID == 0 || req.RoomNumber == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "guest_id and room_number are required"})
	}
	b, err := h.Bookings.Create(c.Request().Context(), req.GuestID, req.RoomNumber, req.Price)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

// Get handles GET /v1/bookings/:id.
func (h *BookingHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	b, err := h.Bookings.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// List handles GET /v1/bookings with guest_id, room_number, status
// (active|completed), from/to and pagination filters.
func (h *BookingHandler) List(c echo.Context) error {
	var f repository.BookingFilter
	f.Offset, f.Limit = pagination(c)
	if raw := c.QueryParam("guest_id"); raw != "" {
		id, err := pathIDFromString(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid guest_id"})
		}
		f.GuestID = &id
	}
	if raw := c.QueryParam("room_number"); raw != "" {
		n, err := pathIDFromString(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room_number"})
		}
		f.RoomNumber = &n
	}
	switch status := c.QueryParam("status"); status {
	case "", "active", "completed":
		f.Status = status
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be active or completed"})
	}
	var err error
	if f.From, err = queryTime(c, "from"); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if f.To, err = queryTime(c, "to"); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	bookings, total, err := h.Bookings.List(c.Request().Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": bookings, "total": total})
}

// CheckIn handles POST /v1/bookings/:id/checkin.
func (h *BookingHandler) CheckIn(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	b, err := h.Bookings.CheckIn(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// CheckOut handles POST /v1/bookings/:id/checkout.
func (h *BookingHandler) CheckOut(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	b, err := h.Bookings.CheckOut(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// Delete handles DELETE /v1/bookings/:id.
func (h *BookingHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := h.Bookings.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Invoice handles GET /v1/bookings/:id/invoice.
func (h *BookingHandler) Invoice(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	det, err := h.Bookings.GetInvoiceDetail(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, det)
}

type addLineItemReq struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	ItemType    string          `json:"item_type"`
}

// AddLineItem handles POST /v1/bookings/:id/items.
func (h *BookingHandler) AddLineItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var req addLineItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	item, err := h.Bookings.AddLineItem(c.Request().Context(), id, req.Description, req.Quantity, req.UnitPrice, req.ItemType)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

// RemoveLineItem handles DELETE /v1/bookings/:id/items/:itemID.
func (h *BookingHandler) RemoveLineItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	itemID, err := pathID(c, "itemID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := h.Bookings.RemoveLineItem(c.Request().Context(), id, itemID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type addTaxReq struct {
	Name string          `json:"name"`
	Rate decimal.Decimal `json:"rate"`
}

// AddTax handles POST /v1/bookings/:id/taxes.
func (h *BookingHandler) AddTax(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var req addTaxReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	tax, err := h.Bookings.AddTax(c.Request().Context(), id, req.Name, req.Rate)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, tax)
}

// RemoveTax handles DELETE /v1/bookings/:id/taxes/:taxID.
func (h *BookingHandler) RemoveTax(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	taxID, err := pathID(c, "taxID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := h.Bookings.RemoveTax(c.Request().Context(), id, taxID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type addDiscountReq struct {
	Name       string           `json:"name"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Percentage *decimal.Decimal `json:"percentage,omitempty"`
}

// AddDiscount handles POST /v1/bookings/:id/discounts.
func (h *BookingHandler) AddDiscount(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var req addDiscountReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	d, err := h.Bookings.AddDiscount(c.Request().Context(), id, req.Name, req.Amount, req.Percentage)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, d)
}

// RemoveDiscount handles DELETE /v1/bookings/:id/discounts/:discountID.
func (h *BookingHandler) RemoveDiscount(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	discountID, err := pathID(c, "discountID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := h.Bookings.RemoveDiscount(c.Request().Context(), id, discountID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// RevenueStats handles GET /v1/stats/revenue?from=&to=.
func (h *BookingHandler) RevenueStats(c echo.Context) error {
	from, err := queryTime(c, "from")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	to, err := queryTime(c, "to")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	stats, err := h.Bookings.GetRevenueStats(c.Request().Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// BookingStats handles GET /v1/stats/bookings?from=&to=.
func (h *BookingHandler) BookingStats(c echo.Context) error {
	from, err := queryTime(c, "from")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	to, err := queryTime(c, "to")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	stats, err := h.Bookings.GetBookingStats(c.Request().Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
