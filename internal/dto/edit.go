package dto

import (
	"github.com/shopspring/decimal"
)

// EditRowRequest identifies one row for beginning or cancelling an inline
// edit session.
type EditRowRequest struct {
	Sheet string `json:"sheet" binding:"required,oneof=servicios productos"`
	ID    int64  `json:"id" binding:"required"`
}

// UpdateRowRequest commits an inline edit: the new amount and commission
// for the row keyed by (sheet, id).
type UpdateRowRequest struct {
	Sheet    string          `json:"sheet" binding:"required,oneof=servicios productos"`
	ID       int64           `json:"id" binding:"required"`
	Valor    decimal.Decimal `json:"valor" binding:"required"`
	Comision decimal.Decimal `json:"comision"`
}

// EditSessionResponse reports an edit session's snapshot and state.
type EditSessionResponse struct {
	Sheet    string          `json:"sheet"`
	ID       int64           `json:"id"`
	Valor    decimal.Decimal `json:"valor"`
	Comision decimal.Decimal `json:"comision"`
	State    string          `json:"state"`
}
