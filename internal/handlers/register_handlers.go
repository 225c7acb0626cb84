package handlers

import (
	portssvc "github.com/lmorales/salon_dashboard_app/internal/core/ports/services"
	"github.com/lmorales/salon_dashboard_app/internal/middleware"
	"github.com/lmorales/salon_dashboard_app/internal/platform/config"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	v1.GET("/", getHome)

	registerSummaryRoutes(v1, services.Summary, services.Edit, cfg.DefaultSede)
	registerChartRoutes(v1, services.Charts, cfg.DefaultSede)
}
