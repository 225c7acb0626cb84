package dto

import (
	"time"

	"github.com/lmorales/salon_dashboard_app/internal/core/domain"
)

// ChartQuery are the query parameters of the chart endpoints.
type ChartQuery struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Sede string `form:"sede"`
}

// ChartResponse is one rendered chart instance.
type ChartResponse struct {
	InstanceID string           `json:"instanceID"`
	Slot       string           `json:"slot"`
	RenderedAt time.Time        `json:"renderedAt"`
	Data       domain.ChartData `json:"data"`
}

// ChartBoardResponse is the outcome of rendering every slot: per-slot
// charts plus per-slot failure messages for the ones that did not render.
type ChartBoardResponse struct {
	Charts   map[string]ChartResponse `json:"charts"`
	Failures map[string]string        `json:"failures"`
}
