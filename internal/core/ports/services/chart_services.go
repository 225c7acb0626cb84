package services

import (
	"context"

	"github.com/lmorales/salon_dashboard_app/internal/core/domain"
)

// ChartSvcFacade materializes dashboard charts. Each slot holds at most one
// live instance; re-rendering destroys the prior instance first.
type ChartSvcFacade interface {
	// Render fetches the slot's dataset for scope and installs a fresh
	// instance, destroying any prior one.
	Render(ctx context.Context, slot domain.ChartSlot, scope domain.ReportScope) (*domain.ChartInstance, error)

	// RenderAll renders every slot concurrently with per-slot failure
	// isolation: one slot's error never blocks the others.
	RenderAll(ctx context.Context, scope domain.ReportScope) *domain.ChartBoard

	// Instance returns the live instance for a slot, if any.
	Instance(slot domain.ChartSlot) (*domain.ChartInstance, bool)
}
