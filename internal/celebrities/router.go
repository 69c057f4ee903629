package celebrities

import (
	"bookceleb/internal/shared/config"
	"bookceleb/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupCelebrityRoutes(router *gin.RouterGroup, controller Controller, cfg *config.Config) {
	// Public routes - anyone can browse and search
	public := router.Group("/celebrities")
	{
		public.GET("", controller.ListCelebrities)          // GET /api/v1/celebrities
		public.GET("/search", controller.SearchCelebrities) // GET /api/v1/celebrities/search?q=
		public.GET("/:id", controller.GetCelebrity)         // GET /api/v1/celebrities/:id
	}

	// Admin routes - catalog management
	admin := router.Group("/admin/celebrities")
	admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
	{
		admin.POST("", controller.CreateCelebrity)       // POST /api/v1/admin/celebrities
		admin.PUT("/:id", controller.UpdateCelebrity)    // PUT /api/v1/admin/celebrities/:id
		admin.DELETE("/:id", controller.DeleteCelebrity) // DELETE /api/v1/admin/celebrities/:id
	}
}
