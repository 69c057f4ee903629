package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookceleb/internal/auth"
	"bookceleb/internal/bookings"
	"bookceleb/internal/celebrities"
	"bookceleb/internal/contact"
	"bookceleb/internal/notifications"
	"bookceleb/internal/shared/config"
	"bookceleb/internal/shared/database"
	"bookceleb/internal/shared/utils/response"
	"bookceleb/pkg/cache"
)

// Router wires every domain into the gin engine.
type Router struct {
	cfg          *config.Config
	db           *database.DB
	cacheService cache.Service
	mailer       notifications.Mailer
}

func NewRouter(cfg *config.Config, db *database.DB, cacheService cache.Service, mailer notifications.Mailer) *Router {
	return &Router{
		cfg:          cfg,
		db:           db,
		cacheService: cacheService,
		mailer:       mailer,
	}
}

// SetupRoutes registers health endpoints and all versioned API routes.
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	base := engine.Group(r.cfg.GetAPIBasePath())

	// Celebrities
	celebrityRepo := celebrities.NewRepository(r.db.GetPostgreSQL())
	celebrityService := celebrities.NewService(celebrityRepo, r.cacheService, r.cfg.Redis.CelebrityCacheTTL)
	celebrityController := celebrities.NewController(celebrityService)
	celebrities.SetupCelebrityRoutes(base, celebrityController, r.cfg)

	// Bookings
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
	bookingService := bookings.NewService(bookingRepo, celebrityService, r.mailer)
	bookingController := bookings.NewController(bookingService)
	bookings.SetupBookingRoutes(base, bookingController, r.cfg)

	// Contact
	contactRepo := contact.NewRepository(r.db.GetPostgreSQL())
	contactService := contact.NewService(contactRepo, r.mailer)
	contactController := contact.NewController(contactService)
	contact.SetupContactRoutes(base, contactController, r.cfg)

	// Auth
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.cfg)
	authController := auth.NewController(authService)
	auth.SetupAuthRoutes(base, authController, r.cfg)
}

func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			response.RespondJSON(c, "error", http.StatusServiceUnavailable, "Service unhealthy", nil, err.Error())
			return
		}
		response.RespondJSON(c, "success", http.StatusOK, "Service healthy", gin.H{
			"time": time.Now().UTC().Format(time.RFC3339),
		}, nil)
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "bookceleb-api",
			"version": r.cfg.APIVersion,
			"mode":    r.cfg.GinMode,
		})
	})
}
