// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/forecast/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/forecast/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	expenseController      *controller.ExpenseController
	subscriptionController *controller.SubscriptionController
	forecastController     *controller.ForecastController
	generationLimiter      *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	expenseController *controller.ExpenseController,
	subscriptionController *controller.SubscriptionController,
	forecastController *controller.ForecastController,
) *Router {
	return &Router{
		healthController:       healthController,
		expenseController:      expenseController,
		subscriptionController: subscriptionController,
		forecastController:     forecastController,
		// Generation walks the full ledger, so runaway clients get
		// throttled harder than plain reads.
		generationLimiter: middleware.NewRateLimiter(),
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

// setupAPIRoutes configures the main API routes. Every /api/v1 route
// requires the user header.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(middleware.UserContext())
	{
		if r.expenseController != nil {
			expenses := v1.Group("/expenses")
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
			}
		}

		if r.subscriptionController != nil {
			subscriptions := v1.Group("/subscriptions")
			{
				subscriptions.GET("", r.subscriptionController.List)
				subscriptions.POST("", r.subscriptionController.Create)
			}
		}

		if r.forecastController != nil {
			forecasts := v1.Group("/forecasts")
			{
				forecasts.GET("", r.forecastController.List)
				forecasts.POST("/generate", r.generationLimiter.Middleware(), r.forecastController.Generate)
				forecasts.GET("/suggestions", r.forecastController.ListSuggestions)
				forecasts.POST("/suggestions", r.generationLimiter.Middleware(), r.forecastController.GenerateSuggestions)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
