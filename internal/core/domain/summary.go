package domain

import (
	"github.com/shopspring/decimal"
)

// Sheet identifies the upstream ledger a record originates from. Together
// with the record ID it forms the sole key used for update requests.
type Sheet string

const (
	SheetServices Sheet = "servicios"
	SheetProducts Sheet = "productos"
)

// RecordKind tags a ledger row as a service or a product sale.
type RecordKind string

const (
	KindService RecordKind = "Servicio"
	KindProduct RecordKind = "Producto"
)

// PaymentMethod names how a sale was collected. The set of known methods is
// fixed; rows carrying anything else are tolerated but excluded from
// per-method subtotaling.
type PaymentMethod string

const (
	PaymentCash      PaymentMethod = "Efectivo"
	PaymentCard      PaymentMethod = "Tarjeta"
	PaymentNequi     PaymentMethod = "NEQUI"
	PaymentDaviplata PaymentMethod = "Daviplata"
)

// KnownPaymentMethods lists the methods that participate in subtotaling,
// in display order.
func KnownPaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCash, PaymentCard, PaymentNequi, PaymentDaviplata}
}

// TransactionRecord is one row of the sales/service ledger for a report day.
// (Sheet, ID) uniquely identifies a record for update purposes.
type TransactionRecord struct {
	Sheet         Sheet           `json:"sheet"`
	ID            int64           `json:"id"`
	Stylist       string          `json:"stylist"`
	Description   string          `json:"description"`
	Kind          RecordKind      `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	Commission    decimal.Decimal `json:"commission"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
}

// Key returns the (sheet, id) update key of the record.
func (r TransactionRecord) Key() RecordKey {
	return RecordKey{Sheet: r.Sheet, ID: r.ID}
}

// RecordKey is the composite update key of a TransactionRecord.
type RecordKey struct {
	Sheet Sheet
	ID    int64
}

// AggregateTotals are server-computed totals accompanying a record batch.
// They are authoritative and never recomputed client-side: Expenses stays
// fixed to the unfiltered date/sede scope no matter which rows a filter
// selects.
type AggregateTotals struct {
	Amount     decimal.Decimal `json:"amount"`
	Commission decimal.Decimal `json:"commission"`
	Expenses   decimal.Decimal `json:"expenses"`
	Profit     decimal.Decimal `json:"profit"`
}

// ReportScope identifies which daily report a snapshot belongs to: one
// calendar date at one sede (branch).
type ReportScope struct {
	Date string `json:"date"` // YYYY-MM-DD
	Sede string `json:"sede"`
}

// ReportSnapshot is one atomically-fetched report: the raw rows plus the
// totals computed alongside them. Rows and totals always come from the same
// upstream response, so derived views stay internally consistent.
type ReportSnapshot struct {
	Scope   ReportScope
	Records []TransactionRecord
	Totals  AggregateTotals
}
