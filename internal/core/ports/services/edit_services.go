package services

import (
	"context"

	"github.com/lmorales/salon_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InlineEditSvcFacade drives the per-row inline edit lifecycle:
// Display -> Editing -> {Saving -> Display, Editing}.
type InlineEditSvcFacade interface {
	// BeginEdit snapshots the row's current amount and commission and opens
	// an edit session keyed by (sheet, id).
	BeginEdit(key domain.RecordKey) (*domain.EditSession, error)

	// CancelEdit discards the session and returns the captured snapshot so
	// the caller can restore the displayed values verbatim. No network call.
	CancelEdit(key domain.RecordKey) (*domain.EditSession, error)

	// CommitEdit patches the record upstream. On success the session is
	// closed and the summary snapshot is re-fetched; on failure the session
	// stays open (back to Editing) so typed values survive for retry.
	CommitEdit(ctx context.Context, key domain.RecordKey, amount, commission decimal.Decimal) error

	// Session returns the open session for a row, if any.
	Session(key domain.RecordKey) (*domain.EditSession, bool)
}
