// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/budget-planner/backend/internal/integration/entrypoint/controller"
	"github.com/budget-planner/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                   *gin.Engine
	healthController         *controller.HealthController
	classificationController *controller.ClassificationController
	calendarController       *controller.CalendarController
	profileController        *controller.ProfileController
	transactionController    *controller.TransactionController
	redistributeRateLimiter  *middleware.RateLimiter
	authMiddleware           *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	classificationController *controller.ClassificationController,
	calendarController *controller.CalendarController,
	profileController *controller.ProfileController,
	transactionController *controller.TransactionController,
	redistributeRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:         healthController,
		classificationController: classificationController,
		calendarController:       calendarController,
		profileController:        profileController,
		transactionController:    transactionController,
		redistributeRateLimiter:  redistributeRateLimiter,
		authMiddleware:           authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Classification route (requires authentication)
		if r.classificationController != nil && r.authMiddleware != nil {
			classification := v1.Group("/classification")
			classification.Use(r.authMiddleware.Authenticate())
			{
				classification.GET("", r.classificationController.Classify)
			}
		}

		// Calendar routes (require authentication)
		if r.calendarController != nil && r.authMiddleware != nil {
			calendar := v1.Group("/calendar")
			calendar.Use(r.authMiddleware.Authenticate())
			{
				calendar.GET("/:year/:month", r.calendarController.Get)
				calendar.GET("/:year/:month/redistributions", r.calendarController.History)

				if r.redistributeRateLimiter != nil {
					calendar.POST(
						"/:year/:month/redistribute",
						r.redistributeRateLimiter.Middleware(),
						r.calendarController.Redistribute,
					)
				} else {
					calendar.POST("/:year/:month/redistribute", r.calendarController.Redistribute)
				}
			}
		}

		// Profile routes (require authentication)
		if r.profileController != nil && r.authMiddleware != nil {
			profile := v1.Group("/profile")
			profile.Use(r.authMiddleware.Authenticate())
			{
				profile.GET("", r.profileController.Get)
				profile.PUT("", r.profileController.Upsert)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
