package services

import (
	"github.com/lmorales/salon_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FilterEngine derives the summary view from a report snapshot: the rows
// matching the user's filter plus the financial projections computed over
// them. It is a pure function of its inputs; the source records are never
// mutated and identical inputs always produce identical output.
type FilterEngine struct{}

// NewFilterEngine creates a filter engine.
func NewFilterEngine() FilterEngine {
	return FilterEngine{}
}

// Apply filters records by criteria and computes the derived metrics
// against the (filter-invariant) aggregate totals.
//
// TotalAmount and TotalCommission are summed over passing rows only.
// Payment subtotals bucket row amounts by method for the fixed known set;
// rows with an unknown method still count toward TotalAmount but feed no
// bucket. TotalExpenses is always totals.Expenses: expenses are scoped to
// the unfiltered date/sede and deliberately not re-derived. Profit is
// TotalAmount - TotalExpenses - TotalCommission, unclamped.
func (FilterEngine) Apply(records []domain.TransactionRecord, criteria domain.FilterCriteria, totals domain.AggregateTotals) domain.FilterResult {
	rows := make([]domain.TransactionRecord, 0, len(records))
	totalAmount := decimal.Zero
	totalCommission := decimal.Zero

	subtotals := make(map[domain.PaymentMethod]decimal.Decimal, len(domain.KnownPaymentMethods()))
	for _, method := range domain.KnownPaymentMethods() {
		subtotals[method] = decimal.Zero
	}

	for _, r := range records {
		if !criteria.Matches(r) {
			continue
		}
		rows = append(rows, r)
		totalAmount = totalAmount.Add(r.Amount)
		totalCommission = totalCommission.Add(r.Commission)
		if bucket, known := subtotals[r.PaymentMethod]; known {
			subtotals[r.PaymentMethod] = bucket.Add(r.Amount)
		}
	}

	totalExpenses := totals.Expenses
	profit := totalAmount.Sub(totalExpenses).Sub(totalCommission)

	cash := subtotals[domain.PaymentCash]
	sufficiency := domain.CashSufficiency{
		Sufficient: cash.GreaterThanOrEqual(totalCommission),
	}
	delta := cash.Sub(totalCommission)
	if delta.IsNegative() {
		// shortfall reported as magnitude
		delta = delta.Neg()
	}
	sufficiency.Delta = delta

	return domain.FilterResult{
		Rows: rows,
		Metrics: domain.DerivedMetrics{
			TotalAmount:      totalAmount,
			TotalCommission:  totalCommission,
			TotalExpenses:    totalExpenses,
			Profit:           profit,
			PaymentSubtotals: subtotals,
			CashSufficiency:  sufficiency,
		},
	}
}
