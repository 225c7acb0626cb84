package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/lmorales/salon_dashboard_app/internal/apperrors"
	"github.com/lmorales/salon_dashboard_app/internal/core/domain"
	portsgw "github.com/lmorales/salon_dashboard_app/internal/core/ports/gateways"
)

// StoreState is the lifecycle state of the view-state store.
type StoreState string

const (
	StoreIdle    StoreState = "IDLE"
	StoreLoading StoreState = "LOADING"
	StoreReady   StoreState = "READY"
	StoreFailed  StoreState = "FAILED"
)

// ViewStateStore owns the single committed report snapshot the dashboard
// renders from. Snapshots are replaced wholesale on successful refresh,
// never mutated in place, so readers only ever see a complete rows+totals
// pair. A failed refresh keeps the previous snapshot (last-good-data) and
// surfaces the error to the caller.
//
// Concurrent refreshes are fenced with a monotonic sequence: when a
// response arrives for a request that has been superseded by a newer one,
// it is discarded instead of overwriting newer state.
type ViewStateStore struct {
	BaseService
	gateway portsgw.SummaryGateway

	mu        sync.Mutex
	state     StoreState
	snapshot  domain.ReportSnapshot
	committed bool
	seq       uint64
}

// NewViewStateStore creates a store backed by the given gateway.
func NewViewStateStore(gateway portsgw.SummaryGateway) *ViewStateStore {
	return &ViewStateStore{
		gateway: gateway,
		state:   StoreIdle,
	}
}

// Refresh fetches a fresh snapshot for scope and commits it atomically.
// Returns apperrors.ErrSuperseded when a newer refresh started while this
// one was in flight; the caller's result was discarded.
func (s *ViewStateStore) Refresh(ctx context.Context, scope domain.ReportScope) error {
	s.mu.Lock()
	s.seq++
	token := s.seq
	s.state = StoreLoading
	s.mu.Unlock()

	snapshot, err := s.gateway.FetchSummary(ctx, scope)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.seq {
		s.LogDebug(ctx, "Discarding superseded refresh",
			slog.String("date", scope.Date),
			slog.String("sede", scope.Sede))
		return apperrors.ErrSuperseded
	}

	if err != nil {
		// Last-good-data policy: the previous snapshot stays committed and
		// visible; only the state flips to Failed.
		if s.committed {
			s.state = StoreFailed
		} else {
			s.state = StoreIdle
		}
		return err
	}

	s.snapshot = *snapshot
	s.committed = true
	s.state = StoreReady
	s.LogDebug(ctx, "Snapshot committed",
		slog.String("date", scope.Date),
		slog.String("sede", scope.Sede),
		slog.Int("records", len(snapshot.Records)))
	return nil
}

// Current returns the committed snapshot, if any. The read is synchronous
// and never observes a partially-applied refresh.
func (s *ViewStateStore) Current() (domain.ReportSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot, s.committed
}

// State reports the store's lifecycle state.
func (s *ViewStateStore) State() StoreState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
