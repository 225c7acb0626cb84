package services

import (
	portsgw "github.com/lmorales/salon_dashboard_app/internal/core/ports/gateways"
	portssvc "github.com/lmorales/salon_dashboard_app/internal/core/ports/services"
)

// NewServiceContainer wires the view-state store and services over the
// upstream gateways and returns the container handed to the HTTP layer.
func NewServiceContainer(summaryGW portsgw.SummaryGateway, chartGW portsgw.ChartGateway) *portssvc.ServiceContainer {
	store := NewViewStateStore(summaryGW)
	summary := NewSummaryService(store)

	return &portssvc.ServiceContainer{
		Summary: summary,
		Edit:    NewInlineEditService(summaryGW, summary),
		Charts:  NewChartService(chartGW),
	}
}
