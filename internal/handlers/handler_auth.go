package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/gin-gonic/gin"
	"github.com/lmorales/salon_dashboard_app/internal/dto"
	"github.com/lmorales/salon_dashboard_app/internal/middleware"
	"github.com/lmorales/salon_dashboard_app/internal/platform/config"
	"github.com/lmorales/salon_dashboard_app/internal/utils"
)

// AuthHandler handles dashboard login requests.
type AuthHandler struct {
	adminUser         string
	adminPasswordHash string
	jwtSecret         string
	jwtDuration       time.Duration
	jwtIssuer         string
}

// NewAuthHandler creates a new AuthHandler from the configured credentials.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		adminUser:         cfg.AdminUser,
		adminPasswordHash: cfg.AdminPasswordHash,
		jwtSecret:         cfg.JWTSecret,
		jwtDuration:       cfg.JWTExpiryDuration,
		jwtIssuer:         cfg.JWTIssuer,
	}
}

// registerAuthRoutes sets up the login route with its own rate limit.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config) {
	h := NewAuthHandler(cfg)

	// 5 login attempts per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := r.Group("/auth", limitMiddleware)
	auth.POST("/login", h.Login)
}

// Login validates credentials and issues a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Usuario y contraseña requeridos"})
		return
	}

	if req.Username != h.adminUser || !utils.CheckPasswordHash(req.Password, h.adminPasswordHash) {
		logger.Warn("Login failed", slog.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Credenciales inválidas"})
		return
	}

	token, err := utils.GenerateSessionToken(req.Username, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger.Error("Failed to generate session token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Error interno"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(h.jwtDuration.Seconds()),
	})
}
