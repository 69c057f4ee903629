package auth

import (
	"bookceleb/internal/shared/config"
	"bookceleb/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(router *gin.RouterGroup, controller Controller, cfg *config.Config) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup", controller.Signup)   // POST /api/v1/auth/signup
		auth.POST("/login", controller.Login)     // POST /api/v1/auth/login
		auth.POST("/refresh", controller.Refresh) // POST /api/v1/auth/refresh
	}

	protected := router.Group("/auth")
	protected.Use(middleware.JWTAuthWithConfig(cfg))
	{
		protected.GET("/me", controller.Me) // GET /api/v1/auth/me
	}
}
