// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/fintracker/insights/internal/integration/entrypoint/controller"
	"github.com/fintracker/insights/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	analyticsController *controller.AnalyticsController
	aiController        *controller.AIController
	aiRateLimiter       *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	analyticsController *controller.AnalyticsController,
	aiController *controller.AIController,
	aiRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:    healthController,
		analyticsController: analyticsController,
		aiController:        aiController,
		aiRateLimiter:       aiRateLimiter,
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
		// Deterministic analytics routes
		analytics := v1.Group("/analytics")
		{
			analytics.POST("/totals", r.analyticsController.Totals)
			analytics.POST("/category-breakdown", r.analyticsController.CategoryBreakdown)
			analytics.POST("/monthly-trend", r.analyticsController.MonthlyTrend)
			analytics.POST("/budget-recommendations", r.analyticsController.BudgetRecommendations)
			analytics.POST("/health-score", r.analyticsController.HealthScore)
			analytics.POST("/overview", r.analyticsController.Overview)
		}

		// AI-assisted routes, rate limited because they can fan out to a
		// metered external service
		ai := v1.Group("/ai")
		if r.aiRateLimiter != nil {
			ai.Use(r.aiRateLimiter.Middleware())
		}
		{
			ai.POST("/classify", r.aiController.Classify)
			ai.POST("/enrich", r.aiController.Enrich)
			ai.POST("/insights", r.aiController.Insights)
			ai.POST("/predictions", r.aiController.Predictions)
			ai.POST("/actions", r.aiController.Actions)
			ai.POST("/budget-recommendations", r.aiController.Recommendations)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
