// Package router wires handlers and middleware onto the Echo
// instance.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/studyspot/seat-booking/internal/config"
	"github.com/studyspot/seat-booking/internal/handler"
	"github.com/studyspot/seat-booking/internal/middleware"
	"github.com/studyspot/seat-booking/internal/service"
)

// RegisterRoutes registers routes that carry no middleware at all.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the customer-facing routes. They share
// the maintenance gate, the Redis rate limiter, and (reads only)
// the response cache. Receipt images are served statically from the
// upload directory.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, b *handler.BookingHandler, settings *service.SettingsService, rdb *redis.Client, receiptsDir, receiptsBaseURL string) {
	gate := middleware.Maintenance(func(c echo.Context) bool {
		return settings.MaintenanceMode(c.Request().Context())
	})
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	g := e.Group("/v1", gate, limiter)
	g.GET("/branches", p.GetBranches, cache)
	g.GET("/branches/:id/availability", p.GetBranchAvailability, cache)
	g.GET("/slots", p.GetSlots, cache)
	g.GET("/holidays", p.GetHolidays, cache)
	g.POST("/bookings", b.CreateBooking)
	g.GET("/bookings/:id", b.GetBooking)
	g.POST("/receipts", b.UploadReceipt)
	g.GET("/settings/:key", b.GetSetting)

	e.Static(receiptsBaseURL, receiptsDir)
}

// RegisterAuth registers admin session endpoints. Login, refresh,
// and logout are open; /v1/me requires a valid token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("ADMIN"))
	auth.GET("/me", a.Me)
}

// AdminHandlers bundles the handlers mounted under /v1/admin.
type AdminHandlers struct {
	Bookings      *handler.AdminBookingHandler
	Locations     *handler.AdminLocationHandler
	Seats         *handler.AdminSeatHandler
	Pricing       *handler.AdminPricingHandler
	Holidays      *handler.AdminHolidayHandler
	Settings      *handler.AdminSettingsHandler
	Announcements *handler.AdminAnnouncementHandler
}

// RegisterAdmin mounts the management API under /v1/admin behind
// JWT auth and the ADMIN role.
func RegisterAdmin(e *echo.Echo, h AdminHandlers, jwtSecret string) {
	g := e.Group("/v1/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("ADMIN"))

	// Bookings
	g.GET("/bookings", h.Bookings.ListBookings)
	g.POST("/bookings", h.Bookings.CreateWalkIn)
	g.POST("/bookings/:id/approve", h.Bookings.Approve)
	g.POST("/bookings/:id/reject", h.Bookings.Reject)
	g.POST("/bookings/:id/revoke", h.Bookings.Revoke)
	g.POST("/bookings/:id/expire", h.Bookings.Expire)
	g.GET("/dashboard", h.Bookings.Dashboard)

	// Facility
	g.POST("/branches", h.Locations.CreateBranch)
	g.GET("/branches", h.Locations.ListBranches)
	g.PATCH("/branches/:id", h.Locations.UpdateBranch)
	g.DELETE("/branches/:id", h.Locations.DeleteBranch)
	g.POST("/floors", h.Locations.CreateFloor)
	g.GET("/branches/:id/floors", h.Locations.ListFloors)
	g.PATCH("/floors/:id", h.Locations.UpdateFloor)
	g.DELETE("/floors/:id", h.Locations.DeleteFloor)
	g.POST("/rooms", h.Locations.CreateRoom)
	g.GET("/floors/:id/rooms", h.Locations.ListRooms)
	g.PATCH("/rooms/:id", h.Locations.UpdateRoom)
	g.DELETE("/rooms/:id", h.Locations.DeleteRoom)

	// Seats
	g.GET("/seats", h.Seats.ListSeats)
	g.POST("/seats/:id/block", h.Seats.BlockSeat)
	g.POST("/seats/:id/unblock", h.Seats.UnblockSeat)

	// Pricing
	g.GET("/pricing", h.Pricing.ListRules)
	g.PUT("/pricing", h.Pricing.UpsertRule)

	// Holidays
	g.POST("/holidays", h.Holidays.CreateHoliday)
	g.DELETE("/holidays/:id", h.Holidays.DeleteHoliday)

	// Settings
	g.GET("/settings/:key", h.Settings.GetSetting)
	g.PUT("/settings/:key", h.Settings.PutSetting)

	// Announcements
	g.GET("/announcements", h.Announcements.List)
	g.POST("/announcements", h.Announcements.Send)
}
