package contact

import (
	"bookceleb/internal/shared/config"
	"bookceleb/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupContactRoutes(router *gin.RouterGroup, controller Controller, cfg *config.Config) {
	// Public route - contact form submission
	router.POST("/contact", controller.SubmitMessage) // POST /api/v1/contact

	// Admin routes - inbox management
	admin := router.Group("/admin/messages")
	admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		admin.GET("", controller.ListMessages)         // GET /api/v1/admin/messages
		admin.DELETE("/:id", controller.DeleteMessage) // DELETE /api/v1/admin/messages/:id
	}
}
