// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"ticketly/internal/admin"
	"ticketly/internal/bookings"
	"ticketly/internal/events"
	"ticketly/internal/seats"
	"ticketly/internal/shared/config"
	"ticketly/internal/shared/database"
	"ticketly/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	notifier bookings.Notifier
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, notifier bookings.Notifier) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		notifier: notifier,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// Struct-level request validations
	events.RegisterValidations()

	// Shared repositories and cache
	eventRepo := events.NewRepository(r.db.GetPostgreSQL())
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())

	var cacheService cache.Service
	if r.db.Redis != nil {
		cacheService = cache.NewService(r.db.GetRedisClient())
	}

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupEventRoutes(api, eventRepo)
		r.setupSeatRoutes(api, eventRepo, bookingRepo, cacheService)
		r.setupBookingRoutes(api, bookingRepo, cacheService)
		r.setupAdminRoutes(api, bookingRepo, cacheService)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "ticketly",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "ticketly",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}

// setupEventRoutes configures event inventory routes
func (r *Router) setupEventRoutes(rg *gin.RouterGroup, eventRepo events.Repository) {
	eventService := events.NewService(eventRepo)
	eventController := events.NewController(eventService)

	events.SetupEventRoutes(rg, eventController)
}

// setupSeatRoutes configures availability and seat-detail routes
func (r *Router) setupSeatRoutes(rg *gin.RouterGroup, eventRepo events.Repository, bookingRepo bookings.Repository, cacheService cache.Service) {
	seatService := seats.NewService(eventRepo, bookingRepo, r.config.Redis)
	if cacheService != nil {
		seatService.SetCacheService(cacheService)
	}
	seatController := seats.NewController(seatService)

	seats.SetupSeatRoutes(rg, seatController)
}

// setupBookingRoutes configures the booking engine routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup, bookingRepo bookings.Repository, cacheService cache.Service) {
	bookingService := bookings.NewService(bookingRepo, r.config.Pricing)
	if cacheService != nil {
		bookingService.SetCacheService(cacheService)
	}
	if r.notifier != nil {
		bookingService.SetNotifier(r.notifier)
	}
	bookingController := bookings.NewController(bookingService)

	bookings.SetupBookingRoutes(rg, bookingController)
}

// setupAdminRoutes configures admin bookings/stats/reset routes
func (r *Router) setupAdminRoutes(rg *gin.RouterGroup, bookingRepo bookings.Repository, cacheService cache.Service) {
	adminRepo := admin.NewRepository(r.db.GetPostgreSQL())
	adminService := admin.NewService(adminRepo, bookingRepo, r.config.Pricing)
	if cacheService != nil {
		adminService.SetCacheService(cacheService)
	}
	adminController := admin.NewController(adminService)

	admin.SetupAdminRoutes(rg, adminController)
}
