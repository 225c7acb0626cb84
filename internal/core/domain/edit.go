package domain

import (
	"github.com/shopspring/decimal"
)

// RowEditState tracks where a row is in its inline-edit lifecycle.
type RowEditState string

const (
	RowDisplay RowEditState = "DISPLAY"
	RowEditing RowEditState = "EDITING"
	RowSaving  RowEditState = "SAVING"
)

// EditSession is one row's inline-edit buffer, keyed by the record's
// (sheet, id). Sessions are independent across rows; the captured snapshot
// is restored verbatim on cancel.
type EditSession struct {
	Key                RecordKey       `json:"key"`
	OriginalAmount     decimal.Decimal `json:"originalAmount"`
	OriginalCommission decimal.Decimal `json:"originalCommission"`
	State              RowEditState    `json:"state"`
}
