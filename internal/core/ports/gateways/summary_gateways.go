// Package gateways defines the outbound interfaces to the salon backend
// API. Implementations live under internal/adapters/gateway.
package gateways

import (
	"context"

	"github.com/lmorales/salon_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummaryGateway fetches and mutates the daily sales/service report.
type SummaryGateway interface {
	// FetchSummary retrieves the full report snapshot (rows + totals) for
	// one date/sede scope. Rows and totals come from a single upstream
	// response so they are mutually consistent.
	FetchSummary(ctx context.Context, scope domain.ReportScope) (*domain.ReportSnapshot, error)

	// UpdateSummaryItem patches one record's amount and commission, keyed
	// by (sheet, id). The caller is expected to re-fetch the snapshot
	// afterwards; the patch is never applied locally.
	UpdateSummaryItem(ctx context.Context, key domain.RecordKey, amount, commission decimal.Decimal) error
}

// ChartGateway fetches the analytical datasets feeding the dashboard
// charts. Each fetch is independent; failures do not affect other slots.
type ChartGateway interface {
	FetchStatistics(ctx context.Context, month, sede string) (*domain.StatisticsData, error)
	FetchPrediction(ctx context.Context, sede string) (*domain.PredictionData, error)
	FetchRevenuePatterns(ctx context.Context, sede string) (*domain.RevenuePatternsData, error)
	FetchServiceDemand(ctx context.Context, sede string) (*domain.ServiceDemandData, error)
}
