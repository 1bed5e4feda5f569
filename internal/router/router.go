// Package router maps HTTP routes to handlers and attaches the auth
// middleware chain. Reception staff (any role) run the booking desk;
// room inventory management is restricted to admins.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/handler"
	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/middleware"
	"github.com/Vinayoo4/Hotel-Saas-Backend/internal/model"
)

// RegisterRoutes registers the routes that require no authentication.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the session endpoints. Register, login,
// refresh and logout are unauthenticated; /v1/me requires a token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	e.GET("/v1/me", a.Me, middleware.JWTAuth(jwtSecret))
}

// RegisterDesk registers the reception endpoints: guests, bookings,
// invoice mutations and room reads. Both roles may use them. The
// optional cache middleware wraps the stats reads only; mutating
// endpoints must never be cached.
func RegisterDesk(e *echo.Echo, rooms *handler.RoomHandler, guests *handler.GuestHandler, bookings *handler.BookingHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin, model.RoleReceptionist),
	)

	g.GET("/rooms", rooms.List)
	g.GET("/rooms/:number", rooms.Get)

	g.POST("/guests", guests.Create)
	g.GET("/guests", guests.List)
	g.GET("/guests/:id", guests.Get)
	g.PATCH("/guests/:id", guests.Update)
	g.DELETE("/guests/:id", guests.Delete)

	g.POST("/bookings", bookings.Create)
	g.GET("/bookings", bookings.List)
	g.GET("/bookings/:id", bookings.Get)
	g.DELETE("/bookings/:id", bookings.Delete)
	g.POST("/bookings/:id/checkin", bookings.CheckIn)
	g.POST("/bookings/:id/checkout", bookings.CheckOut)

	g.GET("/bookings/:id/invoice", bookings.Invoice)
	g.POST("/bookings/:id/items", bookings.AddLineItem)
	g.DELETE("/bookings/:id/items/:itemID", bookings.RemoveLineItem)
	g.POST("/bookings/:id/taxes", bookings.AddTax)
	g.DELETE("/bookings/:id/taxes/:taxID", bookings.RemoveTax)
	g.POST("/bookings/:id/discounts", bookings.AddDiscount)
	g.DELETE("/bookings/:id/discounts/:discountID", bookings.RemoveDiscount)

	stats := g.Group("/stats")
	if cache != nil {
		stats.Use(cache)
	}
	stats.GET("/occupancy", rooms.OccupancyStats)
	stats.GET("/revenue", bookings.RevenueStats)
	stats.GET("/bookings", bookings.BookingStats)
}

// RegisterAdmin registers room inventory management, admin only.
func RegisterAdmin(e *echo.Echo, rooms *handler.RoomHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	)
	g.POST("/rooms", rooms.Create)
	g.POST("/rooms/seed", rooms.Seed)
	g.PATCH("/rooms/:number", rooms.Update)
	g.DELETE("/rooms/:number", rooms.Delete)
}
