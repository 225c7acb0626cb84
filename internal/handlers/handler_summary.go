package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lmorales/salon_dashboard_app/internal/core/domain"
	portssvc "github.com/lmorales/salon_dashboard_app/internal/core/ports/services"
	"github.com/lmorales/salon_dashboard_app/internal/dto"
	"github.com/lmorales/salon_dashboard_app/internal/utils"
)

// summaryHandler handles the dashboard summary view and inline edits.
type summaryHandler struct {
	summaryService portssvc.SummarySvcFacade
	editService    portssvc.InlineEditSvcFacade
	defaultSede    string
}

// newSummaryHandler creates a new summaryHandler.
func newSummaryHandler(ss portssvc.SummarySvcFacade, es portssvc.InlineEditSvcFacade, defaultSede string) *summaryHandler {
	return &summaryHandler{
		summaryService: ss,
		editService:    es,
		defaultSede:    defaultSede,
	}
}

// registerSummaryRoutes registers the summary view and inline edit routes.
func registerSummaryRoutes(rg *gin.RouterGroup, ss portssvc.SummarySvcFacade, es portssvc.InlineEditSvcFacade, defaultSede string) {
	h := newSummaryHandler(ss, es, defaultSede)

	summary := rg.Group("/dashboard/summary")
	{
		summary.GET("", h.getSummary)
		summary.POST("/refresh", h.refreshSummary)
		summary.POST("/items/edit", h.beginEdit)
		summary.POST("/items/cancel", h.cancelEdit)
		summary.POST("/items/update", h.updateItem)
	}
}

// getSummary serves the filtered summary view for one date/sede scope.
func (h *summaryHandler) getSummary(c *gin.Context) {
	var query dto.SummaryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Parámetros inválidos"})
		return
	}

	scope := h.scopeOf(query.Date, query.Sede)
	result, err := h.summaryService.View(c.Request.Context(), scope, query.Criteria())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.buildView(scope, result))
}

// refreshSummary forces a fresh snapshot fetch for the scope.
func (h *summaryHandler) refreshSummary(c *gin.Context) {
	var query dto.SummaryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Parámetros inválidos"})
		return
	}

	scope := h.scopeOf(query.Date, query.Sede)
	if err := h.summaryService.Refresh(c.Request.Context(), scope); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Resumen actualizado"})
}

// beginEdit opens an inline edit session for one row.
func (h *summaryHandler) beginEdit(c *gin.Context) {
	var req dto.EditRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Fila inválida"})
		return
	}

	session, err := h.editService.BeginEdit(domain.RecordKey{Sheet: domain.Sheet(req.Sheet), ID: req.ID})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEditSessionResponse(session))
}

// cancelEdit discards an edit session and returns the pre-edit snapshot so
// the client restores the displayed values exactly.
func (h *summaryHandler) cancelEdit(c *gin.Context) {
	var req dto.EditRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Fila inválida"})
		return
	}

	session, err := h.editService.CancelEdit(domain.RecordKey{Sheet: domain.Sheet(req.Sheet), ID: req.ID})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEditSessionResponse(session))
}

// updateItem commits an inline edit upstream and re-fetches the summary.
func (h *summaryHandler) updateItem(c *gin.Context) {
	var req dto.UpdateRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Dato numérico inválido"})
		return
	}

	key := domain.RecordKey{Sheet: domain.Sheet(req.Sheet), ID: req.ID}
	if err := h.editService.CommitEdit(c.Request.Context(), key, req.Valor, req.Comision); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Item actualizado"})
}

func (h *summaryHandler) scopeOf(date, sede string) domain.ReportScope {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if sede == "" {
		sede = h.defaultSede
	}
	return domain.ReportScope{Date: date, Sede: sede}
}

// buildView projects the filter result into the view response: table rows,
// metric cards, payment subtotal cards, and the cash sufficiency indicator.
func (h *summaryHandler) buildView(scope domain.ReportScope, result *domain.FilterResult) dto.SummaryViewResponse {
	rows := make([]dto.SummaryRowResponse, len(result.Rows))
	for i, r := range result.Rows {
		row := dto.SummaryRowResponse{
			Sheet:        string(r.Sheet),
			ID:           r.ID,
			Estilista:    r.Stylist,
			Descripcion:  r.Description,
			Tipo:         string(r.Kind),
			Valor:        r.Amount,
			ValorDisplay: utils.FormatMoney(r.Amount),
			Comision:     r.Commission,
			MetodoPago:   string(r.PaymentMethod),
		}
		if session, ok := h.editService.Session(r.Key()); ok {
			row.EstadoEdicion = string(session.State)
		}
		rows[i] = row
	}

	metrics := result.Metrics
	subtotals := make([]dto.PaymentSubtotalResponse, 0, len(metrics.PaymentSubtotals))
	for _, method := range domain.KnownPaymentMethods() {
		total := metrics.PaymentSubtotals[method]
		subtotals = append(subtotals, dto.PaymentSubtotalResponse{
			Metodo:  string(method),
			Total:   total,
			Visible: total.IsPositive(),
		})
	}

	sufficiency := dto.CashSufficiencyResponse{
		Sufficient: metrics.CashSufficiency.Sufficient,
		Delta:      metrics.CashSufficiency.Delta,
	}
	if sufficiency.Sufficient {
		sufficiency.Detail = fmt.Sprintf("Efectivo Suficiente para Comisiones (Sobran %s)", utils.FormatMoney(sufficiency.Delta))
	} else {
		sufficiency.Detail = fmt.Sprintf("Efectivo INSUFICIENTE para Comisiones (Faltan %s)", utils.FormatMoney(sufficiency.Delta))
	}

	return dto.SummaryViewResponse{
		Date:             scope.Date,
		Sede:             scope.Sede,
		Rows:             rows,
		TotalValor:       metrics.TotalAmount,
		TotalComision:    metrics.TotalCommission,
		TotalGastos:      metrics.TotalExpenses,
		Utilidad:         metrics.Profit,
		PaymentSubtotals: subtotals,
		CashSufficiency:  sufficiency,
	}
}

func toEditSessionResponse(session *domain.EditSession) dto.EditSessionResponse {
	return dto.EditSessionResponse{
		Sheet:    string(session.Key.Sheet),
		ID:       session.Key.ID,
		Valor:    session.OriginalAmount,
		Comision: session.OriginalCommission,
		State:    string(session.State),
	}
}
