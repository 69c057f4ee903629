package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"bookceleb/api/routes"
	"bookceleb/internal/notifications"
	"bookceleb/internal/shared/config"
	"bookceleb/internal/shared/database"
	"bookceleb/pkg/cache"
	"bookceleb/pkg/logger"
	"bookceleb/pkg/ratelimit"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	appLogger := logger.New()
	logger.SetDefault(appLogger)

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.Close()

	cacheService := cache.NewService(db.GetRedis())

	resendClient := notifications.NewResendClient(notifications.ClientConfig{
		APIKey:  cfg.Email.APIKey,
		BaseURL: cfg.Email.BaseURL,
	})
	mailer := notifications.NewMailer(resendClient, cfg.Email)

	engine := setupEngine(cfg, db)

	router := routes.NewRouter(cfg, db, cacheService, mailer)
	router.SetupRoutes(engine)

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        engine,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info("Server starting", "address", cfg.GetServerAddress(), "mode", cfg.GinMode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	appLogger.Info("Server exited")
}

func setupEngine(cfg *config.Config, db *database.DB) *gin.Engine {
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(requestLogger())

	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	rateLimiter := ratelimit.NewRateLimiter(db.GetRedis(), &ratelimit.Config{
		Enabled:         cfg.RateLimit.Enabled,
		WindowDuration:  cfg.RateLimit.WindowDuration,
		DefaultRequests: cfg.RateLimit.DefaultRequests,
		PublicRequests:  cfg.RateLimit.PublicRequests,
		AuthRequests:    cfg.RateLimit.AuthRequests,
		IntakeRequests:  cfg.RateLimit.IntakeRequests,
		AdminRequests:   cfg.RateLimit.AdminRequests,
		HealthRequests:  cfg.RateLimit.HealthRequests,
		WhitelistedIPs:  cfg.RateLimit.WhitelistedIPs,
	})
	engine.Use(ratelimit.Middleware(rateLimiter))

	return engine
}

// requestLogger logs every request through the structured logger.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.GetDefault().LogHTTPRequest(c, time.Since(start))
	}
}
