package main

import (
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/lmorales/salon_dashboard_app/internal/adapters/gateway/salonapi"
	"github.com/lmorales/salon_dashboard_app/internal/core/services"
	"github.com/lmorales/salon_dashboard_app/internal/handlers"
	"github.com/lmorales/salon_dashboard_app/internal/middleware"
	"github.com/lmorales/salon_dashboard_app/internal/platform/config"
	"github.com/lmorales/salon_dashboard_app/internal/utils"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Upstream salon API client and gateways
	client := salonapi.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout,
		salonapi.WithAPIToken(cfg.UpstreamAPIToken),
	)
	summaryGateway := salonapi.NewSummaryGateway(client)
	chartGateway := salonapi.NewChartGateway(client)

	serviceContainer := services.NewServiceContainer(summaryGateway, chartGateway)

	// Posthog analytics (nil-safe when no API key is configured)
	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Global rate limit per client IP
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	r.Use(middleware.PosthogMiddleware(posthogClient))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
