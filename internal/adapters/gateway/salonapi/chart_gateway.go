package salonapi

import (
	"context"
	"net/url"

	"github.com/lmorales/salon_dashboard_app/internal/core/domain"
	portsgw "github.com/lmorales/salon_dashboard_app/internal/core/ports/gateways"
	"github.com/lmorales/salon_dashboard_app/internal/models"
	"github.com/lmorales/salon_dashboard_app/internal/utils/mapping"
)

// ChartGateway fetches the analytical chart datasets via the salon API.
type ChartGateway struct {
	client *Client
}

// NewChartGateway creates a chart gateway over the shared client.
func NewChartGateway(client *Client) *ChartGateway {
	return &ChartGateway{client: client}
}

// Ensure ChartGateway implements the port
var _ portsgw.ChartGateway = (*ChartGateway)(nil)

// FetchStatistics retrieves the month's statistics board data.
func (g *ChartGateway) FetchStatistics(ctx context.Context, month, sede string) (*domain.StatisticsData, error) {
	query := url.Values{}
	query.Set("month", month)
	query.Set("sede", sede)

	var resp models.StatisticsResponse
	if err := g.client.getJSON(ctx, "/api/statistics", query, &resp); err != nil {
		return nil, err
	}

	data := mapping.ToDomainStatistics(resp.Data)
	return &data, nil
}

// FetchPrediction retrieves the revenue forecast series.
func (g *ChartGateway) FetchPrediction(ctx context.Context, sede string) (*domain.PredictionData, error) {
	query := url.Values{}
	query.Set("sede", sede)

	var resp models.PredictionResponse
	if err := g.client.getJSON(ctx, "/api/prediction", query, &resp); err != nil {
		return nil, err
	}

	data := mapping.ToDomainPrediction(resp)
	return &data, nil
}

// FetchRevenuePatterns retrieves the weekday revenue heatmap data.
func (g *ChartGateway) FetchRevenuePatterns(ctx context.Context, sede string) (*domain.RevenuePatternsData, error) {
	query := url.Values{}
	query.Set("sede", sede)

	var resp models.RevenuePatternsResponse
	if err := g.client.getJSON(ctx, "/api/revenue-patterns", query, &resp); err != nil {
		return nil, err
	}

	data := mapping.ToDomainRevenuePatterns(resp)
	return &data, nil
}

// FetchServiceDemand retrieves the per-service demand series.
func (g *ChartGateway) FetchServiceDemand(ctx context.Context, sede string) (*domain.ServiceDemandData, error) {
	query := url.Values{}
	query.Set("sede", sede)

	var resp models.ServiceDemandResponse
	if err := g.client.getJSON(ctx, "/api/service-demand", query, &resp); err != nil {
		return nil, err
	}

	data := mapping.ToDomainServiceDemand(resp)
	return &data, nil
}
