package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lmorales/salon_dashboard_app/internal/apperrors"
)

// respondError maps the error taxonomy to HTTP responses. Session expiry
// carries a reload hint so the client forces a full page reload; upstream
// error messages are shown to the user verbatim.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrAuthExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Sesión expirada", "reload": true})
	case errors.Is(err, apperrors.ErrNetwork):
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Error de conexión"})
	case errors.Is(err, apperrors.ErrDecode):
		c.JSON(http.StatusBadGateway, gin.H{"status": "error", "message": "Respuesta inválida del servidor"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "No encontrado"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
	case errors.Is(err, apperrors.ErrSuperseded):
		c.JSON(http.StatusConflict, gin.H{"status": "error", "message": "La vista fue actualizada por otra consulta, intenta de nuevo"})
	default:
		if se, ok := apperrors.AsServerError(err); ok {
			c.JSON(http.StatusBadGateway, gin.H{"status": "error", "message": se.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Error interno"})
	}
}
