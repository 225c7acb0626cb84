package services

import (
	"context"

	"github.com/lmorales/salon_dashboard_app/internal/core/domain"
)

// SummarySvcFacade serves the dashboard summary view: the filtered rows and
// derived metrics for one report scope.
type SummarySvcFacade interface {
	// View returns the filtered view for scope. When scope differs from the
	// committed snapshot (or nothing is committed yet) the snapshot is
	// refreshed first; filter-only changes re-use the committed snapshot.
	View(ctx context.Context, scope domain.ReportScope, criteria domain.FilterCriteria) (*domain.FilterResult, error)

	// Refresh forces a fresh fetch of the snapshot for scope.
	Refresh(ctx context.Context, scope domain.ReportScope) error

	// Current returns the committed snapshot, if any.
	Current() (domain.ReportSnapshot, bool)
}
