package dto

import (
	"github.com/lmorales/salon_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummaryQuery are the query parameters of the summary view endpoint.
// Date and sede pick the report scope; estilista and servicio are the
// optional exact-match filters.
type SummaryQuery struct {
	Date      string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Sede      string `form:"sede"`
	Estilista string `form:"estilista"`
	Servicio  string `form:"servicio"`
}

// SummaryRowResponse is one table row of the summary view.
type SummaryRowResponse struct {
	Sheet         string          `json:"sheet"`
	ID            int64           `json:"id"`
	Estilista     string          `json:"estilista"`
	Descripcion   string          `json:"descripcion"`
	Tipo          string          `json:"tipo"`
	Valor         decimal.Decimal `json:"valor"`
	ValorDisplay  string          `json:"valorDisplay"`
	Comision      decimal.Decimal `json:"comision"`
	MetodoPago    string          `json:"metodoPago"`
	EstadoEdicion string          `json:"estadoEdicion,omitempty"`
}

// PaymentSubtotalResponse is one payment-method subtotal card. Visible
// mirrors the display policy (only methods with a positive subtotal are
// shown), while the entry itself is always present.
type PaymentSubtotalResponse struct {
	Metodo  string          `json:"metodo"`
	Total   decimal.Decimal `json:"total"`
	Visible bool            `json:"visible"`
}

// CashSufficiencyResponse is the liquidity indicator of the summary view.
type CashSufficiencyResponse struct {
	Sufficient bool            `json:"sufficient"`
	Delta      decimal.Decimal `json:"delta"`
	Detail     string          `json:"detail"`
}

// SummaryViewResponse is the full summary view: filtered rows plus the
// derived metric cards.
type SummaryViewResponse struct {
	Date             string                    `json:"date"`
	Sede             string                    `json:"sede"`
	Rows             []SummaryRowResponse      `json:"rows"`
	TotalValor       decimal.Decimal           `json:"totalValor"`
	TotalComision    decimal.Decimal           `json:"totalComision"`
	TotalGastos      decimal.Decimal           `json:"totalGastos"`
	Utilidad         decimal.Decimal           `json:"utilidad"`
	PaymentSubtotals []PaymentSubtotalResponse `json:"paymentSubtotals"`
	CashSufficiency  CashSufficiencyResponse   `json:"cashSufficiency"`
}

// Criteria converts the query's filter fields to domain criteria.
func (q SummaryQuery) Criteria() domain.FilterCriteria {
	return domain.FilterCriteria{
		Stylist: q.Estilista,
		Service: q.Servicio,
	}
}
