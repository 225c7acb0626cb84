// Package models holds the wire-format structs served by the salon API.
// Field names follow the upstream JSON (Spanish) and are converted to
// domain types via internal/utils/mapping.
package models

import "github.com/shopspring/decimal"

// Envelope is the response wrapper shared by every upstream endpoint.
// Status is "success" or "error"; Message accompanies errors and update
// confirmations.
type Envelope struct {
	Status  string `json:"status" validate:"required,oneof=success error"`
	Message string `json:"message"`
}

// Result exposes the envelope fields to the gateway's shared decode path.
func (e Envelope) Result() (status, message string) {
	return e.Status, e.Message
}

// SummaryItem is one ledger row as served by GET /api/summary.
type SummaryItem struct {
	ID          int64           `json:"id" validate:"required"`
	Sheet       string          `json:"sheet" validate:"required,oneof=servicios productos"`
	Estilista   string          `json:"estilista"`
	Descripcion string          `json:"descripcion"`
	Valor       decimal.Decimal `json:"valor"`
	Comision    decimal.Decimal `json:"comision"`
	Tipo        string          `json:"tipo"`
	MetodoPago  string          `json:"metodo_pago"`
}

// SummaryTotals are the server-side totals attached to a summary batch.
// Gastos is scoped to the unfiltered date/sede and is never recomputed
// from the rows.
type SummaryTotals struct {
	Valor    decimal.Decimal `json:"valor"`
	Comision decimal.Decimal `json:"comision"`
	Gastos   decimal.Decimal `json:"gastos"`
	Utilidad decimal.Decimal `json:"utilidad"`
}

// SummaryResponse is the full GET /api/summary payload.
type SummaryResponse struct {
	Envelope
	Data   []SummaryItem `json:"data"`
	Totals SummaryTotals `json:"totals"`
}

// UpdateSummaryRequest is the POST /api/summary/update body. The (sheet, id)
// pair is the sole update key; only valor and comision are mutable.
type UpdateSummaryRequest struct {
	Sheet    string          `json:"sheet"`
	ID       int64           `json:"id"`
	Valor    decimal.Decimal `json:"valor"`
	Comision decimal.Decimal `json:"comision"`
}
