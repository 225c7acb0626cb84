package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/lmorales/salon_dashboard_app/internal/apperrors"
	"github.com/lmorales/salon_dashboard_app/internal/core/domain"
	portsgw "github.com/lmorales/salon_dashboard_app/internal/core/ports/gateways"
	portssvc "github.com/lmorales/salon_dashboard_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// inlineEditService implements the InlineEditSvcFacade interface. Each row's
// edit session is independent and keyed by its own (sheet, id) snapshot;
// there is no shared edit buffer across rows.
type inlineEditService struct {
	BaseService
	gateway portsgw.SummaryGateway
	summary portssvc.SummarySvcFacade

	mu       sync.Mutex
	sessions map[domain.RecordKey]*domain.EditSession
}

// NewInlineEditService creates a new inline edit service.
func NewInlineEditService(gateway portsgw.SummaryGateway, summary portssvc.SummarySvcFacade) portssvc.InlineEditSvcFacade {
	return &inlineEditService{
		gateway:  gateway,
		summary:  summary,
		sessions: make(map[domain.RecordKey]*domain.EditSession),
	}
}

// Ensure inlineEditService implements the InlineEditSvcFacade interface
var _ portssvc.InlineEditSvcFacade = (*inlineEditService)(nil)

// BeginEdit captures the row's pre-edit (amount, commission) from the
// committed snapshot and opens a session. Re-beginning an already open
// session returns the existing one so the original snapshot survives.
func (s *inlineEditService) BeginEdit(key domain.RecordKey) (*domain.EditSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.sessions[key]; ok {
		return existing, nil
	}

	snapshot, ok := s.summary.Current()
	if !ok {
		return nil, fmt.Errorf("no summary loaded: %w", apperrors.ErrNotFound)
	}

	var record *domain.TransactionRecord
	for i := range snapshot.Records {
		if snapshot.Records[i].Key() == key {
			record = &snapshot.Records[i]
			break
		}
	}
	if record == nil {
		return nil, fmt.Errorf("record %s/%d: %w", key.Sheet, key.ID, apperrors.ErrNotFound)
	}

	session := &domain.EditSession{
		Key:                key,
		OriginalAmount:     record.Amount,
		OriginalCommission: record.Commission,
		State:              domain.RowEditing,
	}
	s.sessions[key] = session
	return session, nil
}

// CancelEdit closes the session without any network call and returns the
// captured snapshot verbatim so the caller restores the displayed values.
func (s *inlineEditService) CancelEdit(key domain.RecordKey) (*domain.EditSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[key]
	if !ok {
		return nil, fmt.Errorf("no edit session for %s/%d: %w", key.Sheet, key.ID, apperrors.ErrNotFound)
	}
	delete(s.sessions, key)

	restored := *session
	restored.State = domain.RowDisplay
	return &restored, nil
}

// CommitEdit patches the record upstream. The patched values are never
// applied to the local row: on success the whole snapshot is re-fetched so
// the table, totals, and any server-recomputed aggregates stay consistent.
// On failure the session returns to Editing so typed values survive.
func (s *inlineEditService) CommitEdit(ctx context.Context, key domain.RecordKey, amount, commission decimal.Decimal) error {
	s.mu.Lock()
	session, ok := s.sessions[key]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("no edit session for %s/%d: %w", key.Sheet, key.ID, apperrors.ErrNotFound)
	}
	session.State = domain.RowSaving
	s.mu.Unlock()

	if err := s.gateway.UpdateSummaryItem(ctx, key, amount, commission); err != nil {
		s.mu.Lock()
		session.State = domain.RowEditing
		s.mu.Unlock()
		s.LogError(ctx, err, "Failed to save inline edit",
			slog.String("sheet", string(key.Sheet)),
			slog.Int64("id", key.ID))
		return err
	}

	s.mu.Lock()
	delete(s.sessions, key)
	s.mu.Unlock()

	s.LogInfo(ctx, "Inline edit saved",
		slog.String("sheet", string(key.Sheet)),
		slog.Int64("id", key.ID))

	// Source of truth is the next full re-fetch, not the local row.
	snapshot, ok := s.summary.Current()
	if !ok {
		return nil
	}
	if err := s.summary.Refresh(ctx, snapshot.Scope); err != nil && !errors.Is(err, apperrors.ErrSuperseded) {
		return fmt.Errorf("saved, but refreshing the summary failed: %w", err)
	}
	return nil
}

// Session returns the open session for a row, if any.
func (s *inlineEditService) Session(key domain.RecordKey) (*domain.EditSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[key]
	if !ok {
		return nil, false
	}
	copied := *session
	return &copied, true
}
