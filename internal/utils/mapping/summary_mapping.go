package mapping

import (
	"github.com/lmorales/salon_dashboard_app/internal/core/domain"
	"github.com/lmorales/salon_dashboard_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToDomainRecord converts a wire SummaryItem to a domain TransactionRecord.
func ToDomainRecord(m models.SummaryItem) domain.TransactionRecord {
	return domain.TransactionRecord{
		Sheet:         domain.Sheet(m.Sheet),
		ID:            m.ID,
		Stylist:       m.Estilista,
		Description:   m.Descripcion,
		Kind:          domain.RecordKind(m.Tipo),
		Amount:        m.Valor,
		Commission:    m.Comision,
		PaymentMethod: domain.PaymentMethod(m.MetodoPago),
	}
}

// ToDomainRecordSlice converts a batch of wire SummaryItems.
func ToDomainRecordSlice(ms []models.SummaryItem) []domain.TransactionRecord {
	ds := make([]domain.TransactionRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRecord(m)
	}
	return ds
}

// ToDomainTotals converts wire SummaryTotals to domain AggregateTotals.
func ToDomainTotals(m models.SummaryTotals) domain.AggregateTotals {
	return domain.AggregateTotals{
		Amount:     m.Valor,
		Commission: m.Comision,
		Expenses:   m.Gastos,
		Profit:     m.Utilidad,
	}
}

// ToModelUpdateRequest builds the upstream update body for a record patch.
func ToModelUpdateRequest(key domain.RecordKey, amount, commission decimal.Decimal) models.UpdateSummaryRequest {
	return models.UpdateSummaryRequest{
		Sheet:    string(key.Sheet),
		ID:       key.ID,
		Valor:    amount,
		Comision: commission,
	}
}
