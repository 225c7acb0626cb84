package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lmorales/salon_dashboard_app/internal/apperrors"
	"github.com/lmorales/salon_dashboard_app/internal/core/domain"
	portssvc "github.com/lmorales/salon_dashboard_app/internal/core/ports/services"
)

// summaryService implements the SummarySvcFacade interface
type summaryService struct {
	BaseService
	store  *ViewStateStore
	engine FilterEngine
}

// SummaryServiceOption is a functional option for configuring the summary service
type SummaryServiceOption func(*summaryService)

// WithFilterEngine overrides the default filter engine.
func WithFilterEngine(engine FilterEngine) SummaryServiceOption {
	return func(s *summaryService) {
		s.engine = engine
	}
}

// NewSummaryService creates a new summary service over the given store.
func NewSummaryService(store *ViewStateStore, options ...SummaryServiceOption) portssvc.SummarySvcFacade {
	svc := &summaryService{
		store:  store,
		engine: NewFilterEngine(),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure summaryService implements the SummarySvcFacade interface
var _ portssvc.SummarySvcFacade = (*summaryService)(nil)

// View returns the filtered summary for scope. A scope change (or an empty
// store) triggers a refresh first; a filter-only change re-uses the
// committed snapshot, so the table and its totals always derive from one
// consistent rows+totals pair.
func (s *summaryService) View(ctx context.Context, scope domain.ReportScope, criteria domain.FilterCriteria) (*domain.FilterResult, error) {
	snapshot, ok := s.store.Current()
	if !ok || snapshot.Scope != scope {
		if err := s.Refresh(ctx, scope); err != nil {
			return nil, err
		}
		snapshot, ok = s.store.Current()
		if !ok || snapshot.Scope != scope {
			// A concurrent scope switch won the fence; this request's scope
			// is no longer current.
			return nil, apperrors.ErrSuperseded
		}
	}

	result := s.engine.Apply(snapshot.Records, criteria, snapshot.Totals)
	s.LogDebug(ctx, "Summary view computed",
		slog.String("date", scope.Date),
		slog.String("sede", scope.Sede),
		slog.String("stylist_filter", criteria.Stylist),
		slog.String("service_filter", criteria.Service),
		slog.Int("rows", len(result.Rows)))
	return &result, nil
}

// Refresh forces a fresh snapshot fetch for scope.
func (s *summaryService) Refresh(ctx context.Context, scope domain.ReportScope) error {
	err := s.store.Refresh(ctx, scope)
	if err != nil && !errors.Is(err, apperrors.ErrSuperseded) {
		s.LogError(ctx, err, "Failed to refresh summary snapshot",
			slog.String("date", scope.Date),
			slog.String("sede", scope.Sede))
		return fmt.Errorf("failed to refresh summary for %s/%s: %w", scope.Sede, scope.Date, err)
	}
	return err
}

// Current returns the committed snapshot, if any.
func (s *summaryService) Current() (domain.ReportSnapshot, bool) {
	return s.store.Current()
}
