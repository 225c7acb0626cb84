package salonapi

import (
	"context"
	"net/url"

	"github.com/lmorales/salon_dashboard_app/internal/core/domain"
	portsgw "github.com/lmorales/salon_dashboard_app/internal/core/ports/gateways"
	"github.com/lmorales/salon_dashboard_app/internal/models"
	"github.com/lmorales/salon_dashboard_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// SummaryGateway fetches and mutates the daily report via the salon API.
type SummaryGateway struct {
	client *Client
}

// NewSummaryGateway creates a summary gateway over the shared client.
func NewSummaryGateway(client *Client) *SummaryGateway {
	return &SummaryGateway{client: client}
}

// Ensure SummaryGateway implements the port
var _ portsgw.SummaryGateway = (*SummaryGateway)(nil)

// FetchSummary retrieves the rows and totals for one date/sede in a single
// request, so the returned snapshot is internally consistent.
func (g *SummaryGateway) FetchSummary(ctx context.Context, scope domain.ReportScope) (*domain.ReportSnapshot, error) {
	query := url.Values{}
	query.Set("date", scope.Date)
	query.Set("sede", scope.Sede)

	var resp models.SummaryResponse
	if err := g.client.getJSON(ctx, "/api/summary", query, &resp); err != nil {
		return nil, err
	}

	return &domain.ReportSnapshot{
		Scope:   scope,
		Records: mapping.ToDomainRecordSlice(resp.Data),
		Totals:  mapping.ToDomainTotals(resp.Totals),
	}, nil
}

// UpdateSummaryItem patches one record's amount and commission keyed by
// (sheet, id).
func (g *SummaryGateway) UpdateSummaryItem(ctx context.Context, key domain.RecordKey, amount, commission decimal.Decimal) error {
	body := mapping.ToModelUpdateRequest(key, amount, commission)

	var resp models.Envelope
	return g.client.postJSON(ctx, "/api/summary/update", body, &resp)
}
