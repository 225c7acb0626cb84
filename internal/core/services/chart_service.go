package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lmorales/salon_dashboard_app/internal/core/domain"
	portsgw "github.com/lmorales/salon_dashboard_app/internal/core/ports/gateways"
	portssvc "github.com/lmorales/salon_dashboard_app/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// chartService implements the ChartSvcFacade interface. It guarantees at
// most one live instance per slot by destroying any prior instance before
// installing a new one.
type chartService struct {
	BaseService
	gateway portsgw.ChartGateway

	mu        sync.Mutex
	instances map[domain.ChartSlot]*domain.ChartInstance
}

// NewChartService creates a new chart orchestration service.
func NewChartService(gateway portsgw.ChartGateway) portssvc.ChartSvcFacade {
	return &chartService{
		gateway:   gateway,
		instances: make(map[domain.ChartSlot]*domain.ChartInstance),
	}
}

// Ensure chartService implements the ChartSvcFacade interface
var _ portssvc.ChartSvcFacade = (*chartService)(nil)

// Render fetches the slot's dataset and installs a fresh instance. The
// prior instance, if any, is destroyed before the new one becomes visible.
func (s *chartService) Render(ctx context.Context, slot domain.ChartSlot, scope domain.ReportScope) (*domain.ChartInstance, error) {
	data, err := s.fetch(ctx, slot, scope)
	if err != nil {
		s.LogError(ctx, err, "Chart dataset fetch failed",
			slog.String("slot", string(slot)),
			slog.String("sede", scope.Sede))
		return nil, err
	}

	instance := &domain.ChartInstance{
		InstanceID: uuid.NewString(),
		ChartSlot:  slot,
		RenderedAt: time.Now(),
		Data:       data,
	}

	s.mu.Lock()
	if prior, ok := s.instances[slot]; ok {
		s.LogDebug(ctx, "Destroying prior chart instance",
			slog.String("slot", string(slot)),
			slog.String("instance_id", prior.InstanceID))
		delete(s.instances, slot)
	}
	s.instances[slot] = instance
	s.mu.Unlock()

	return instance, nil
}

// RenderAll renders every slot concurrently. Failures are isolated per
// slot: a failed fetch lands in Failures while the other slots still
// render, and the previously live instance of a failed slot is left intact.
func (s *chartService) RenderAll(ctx context.Context, scope domain.ReportScope) *domain.ChartBoard {
	board := &domain.ChartBoard{
		Charts:   make(map[domain.ChartSlot]*domain.ChartInstance),
		Failures: make(map[domain.ChartSlot]string),
	}

	var boardMu sync.Mutex
	g := new(errgroup.Group)

	for _, slot := range domain.AllChartSlots() {
		slot := slot
		g.Go(func() error {
			instance, err := s.Render(ctx, slot, scope)
			boardMu.Lock()
			defer boardMu.Unlock()
			if err != nil {
				board.Failures[slot] = err.Error()
				return nil
			}
			board.Charts[slot] = instance
			return nil
		})
	}

	// Goroutines report through the board, never through the group error.
	_ = g.Wait()
	return board
}

// Instance returns the live instance for a slot, if any.
func (s *chartService) Instance(slot domain.ChartSlot) (*domain.ChartInstance, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	instance, ok := s.instances[slot]
	return instance, ok
}

func (s *chartService) fetch(ctx context.Context, slot domain.ChartSlot, scope domain.ReportScope) (domain.ChartData, error) {
	switch slot {
	case domain.SlotStatistics:
		data, err := s.gateway.FetchStatistics(ctx, monthOf(scope.Date), scope.Sede)
		if err != nil {
			return nil, err
		}
		return *data, nil
	case domain.SlotPrediction:
		data, err := s.gateway.FetchPrediction(ctx, scope.Sede)
		if err != nil {
			return nil, err
		}
		return *data, nil
	case domain.SlotRevenuePatterns:
		data, err := s.gateway.FetchRevenuePatterns(ctx, scope.Sede)
		if err != nil {
			return nil, err
		}
		return *data, nil
	case domain.SlotServiceDemand:
		data, err := s.gateway.FetchServiceDemand(ctx, scope.Sede)
		if err != nil {
			return nil, err
		}
		return *data, nil
	default:
		return nil, fmt.Errorf("unknown chart slot %q", slot)
	}
}

// monthOf reduces a YYYY-MM-DD date to the YYYY-MM month the statistics
// endpoint expects.
func monthOf(date string) string {
	if len(date) >= 7 {
		return date[:7]
	}
	return date
}
