package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lmorales/salon_dashboard_app/internal/core/domain"
	portssvc "github.com/lmorales/salon_dashboard_app/internal/core/ports/services"
	"github.com/lmorales/salon_dashboard_app/internal/dto"
)

// chartHandler handles the dashboard chart rendering routes.
type chartHandler struct {
	chartService portssvc.ChartSvcFacade
	defaultSede  string
}

// newChartHandler creates a new chartHandler.
func newChartHandler(cs portssvc.ChartSvcFacade, defaultSede string) *chartHandler {
	return &chartHandler{
		chartService: cs,
		defaultSede:  defaultSede,
	}
}

// registerChartRoutes registers the chart board and per-slot routes.
func registerChartRoutes(rg *gin.RouterGroup, cs portssvc.ChartSvcFacade, defaultSede string) {
	h := newChartHandler(cs, defaultSede)

	charts := rg.Group("/dashboard/charts")
	{
		charts.GET("", h.getBoard)
		charts.GET("/:slot", h.getChart)
	}
}

// getBoard renders every chart slot concurrently. A failed slot reports its
// error without blocking the others.
func (h *chartHandler) getBoard(c *gin.Context) {
	var query dto.ChartQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Parámetros inválidos"})
		return
	}

	board := h.chartService.RenderAll(c.Request.Context(), h.scopeOf(query))

	resp := dto.ChartBoardResponse{
		Charts:   make(map[string]dto.ChartResponse, len(board.Charts)),
		Failures: make(map[string]string, len(board.Failures)),
	}
	for slot, instance := range board.Charts {
		resp.Charts[string(slot)] = toChartResponse(instance)
	}
	for slot, msg := range board.Failures {
		resp.Failures[string(slot)] = msg
	}

	c.JSON(http.StatusOK, resp)
}

// getChart renders one chart slot.
func (h *chartHandler) getChart(c *gin.Context) {
	slot := domain.ChartSlot(c.Param("slot"))
	if !validSlot(slot) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Gráfico desconocido"})
		return
	}

	var query dto.ChartQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Parámetros inválidos"})
		return
	}

	instance, err := h.chartService.Render(c.Request.Context(), slot, h.scopeOf(query))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toChartResponse(instance))
}

func (h *chartHandler) scopeOf(query dto.ChartQuery) domain.ReportScope {
	date := query.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	sede := query.Sede
	if sede == "" {
		sede = h.defaultSede
	}
	return domain.ReportScope{Date: date, Sede: sede}
}

func validSlot(slot domain.ChartSlot) bool {
	for _, s := range domain.AllChartSlots() {
		if s == slot {
			return true
		}
	}
	return false
}

func toChartResponse(instance *domain.ChartInstance) dto.ChartResponse {
	return dto.ChartResponse{
		InstanceID: instance.InstanceID,
		Slot:       string(instance.ChartSlot),
		RenderedAt: instance.RenderedAt,
		Data:       instance.Data,
	}
}
