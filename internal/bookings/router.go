package bookings

import (
	"bookceleb/internal/shared/config"
	"bookceleb/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupBookingRoutes(router *gin.RouterGroup, controller Controller, cfg *config.Config) {
	// Public intake routes
	public := router.Group("/bookings")
	{
		public.POST("", controller.SubmitBooking)            // POST /api/v1/bookings
		public.GET("/options", controller.GetBookingOptions) // GET /api/v1/bookings/options
	}

	// Admin routes - booking management and dashboard
	admin := router.Group("/admin")
	admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		admin.GET("/bookings", controller.ListBookings)                     // GET /api/v1/admin/bookings
		admin.GET("/bookings/:id", controller.GetBooking)                   // GET /api/v1/admin/bookings/:id
		admin.PATCH("/bookings/:id/status", controller.UpdateBookingStatus) // PATCH /api/v1/admin/bookings/:id/status
		admin.GET("/dashboard", controller.GetDashboardStats)               // GET /api/v1/admin/dashboard
	}
}
