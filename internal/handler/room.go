package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/service"
)

// RoomHandler exposes the room registry: administrative CRUD, seeding
// and the occupancy report.
type RoomHandler struct {
	Rooms *service.RoomService
}

// NewRoomHandler constructs a RoomHandler.
func NewRoomHandler(rooms *service.RoomService) *RoomHandler {
	if rooms == nil {
		panic("nil service passed to NewRoomHandler")
	}
	return &RoomHandler{Rooms: rooms}
}

type createRoomReq struct {
	Number       uint64          `json:"number"`
	RoomType     string          `json:"room_type"`
	RatePerNight decimal.Decimal `json:"rate_per_night"`
	Notes        *string         `json:"notes,omitempty"`
}

// Create handles POST /v1/rooms.
func (h *RoomHandler) Create(c echo.Context) error {
	var req createRoomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Number == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room number is required"})
	}
	room, err := h.Rooms.CreateRoom(c.Request().Context(), req.Number, req.RoomType, req.RatePerNight, req.Notes)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, room)
}

// Get handles GET /v1/rooms/:number.
func (h *RoomHandler) Get(c echo.Context) error {
	number, err := pathID(c, "number")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	room, err := h.Rooms.GetRoom(c.Request().Context(), number)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, room)
}

// List handles GET /v1/rooms with room_type, occupied and pagination
// filters.
func (h *RoomHandler) List(c echo.Context) error {
	offset, limit := pagination(c)
	var roomType *string
	if rt := c.QueryParam("room_type"); rt != "" {
		roomType = &rt
	}
	var occupied *bool
	if raw := c.QueryParam("occupied"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "occupied must be true or false"})
		}
		occupied = &v
	}
	rooms, total, err := h.Rooms.ListRooms(c.Request().Context(), roomType, occupied, offset, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"rooms": rooms, "total": total})
}

type updateRoomReq struct {
	RoomType     *string          `json:"room_type,omitempty"`
	RatePerNight *decimal.Decimal `json:"rate_per_night,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
}

// Update handles PATCH /v1/rooms/:number.
func (h *RoomHandler) Update(c echo.Context) error {
	number, err := pathID(c, "number")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var req updateRoomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	room, err := h.Rooms.UpdateRoom(c.Request().Context(), number, req.RoomType, req.RatePerNight, req.Notes)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, room)
}

// Delete handles DELETE /v1/rooms/:number. Occupied rooms return 409.
func (h *RoomHandler) Delete(c echo.Context) error {
	number, err := pathID(c, "number")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := h.Rooms.DeleteRoom(c.Request().Context(), number); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Seed handles POST /v1/rooms/seed, creating the default inventory
// when the registry is empty.
func (h *RoomHandler) Seed(c echo.Context) error {
	created, err := h.Rooms.SeedRooms(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"seeded": created > 0, "created_count": created})
}

// OccupancyStats handles GET /v1/stats/occupancy.
func (h *RoomHandler) OccupancyStats(c echo.Context) error {
	stats, err := h.Rooms.GetOccupancyStats(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
