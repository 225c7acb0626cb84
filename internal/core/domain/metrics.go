package domain

import (
	"github.com/shopspring/decimal"
)

// FilterCriteria narrows a report to one stylist and/or one service.
// Empty fields mean "no constraint"; both predicates are exact-match and
// applied conjunctively.
type FilterCriteria struct {
	Stylist string `json:"stylist"`
	Service string `json:"service"`
}

// IsZero reports whether no constraint is set.
func (c FilterCriteria) IsZero() bool {
	return c.Stylist == "" && c.Service == ""
}

// Matches applies the filter predicate to a single record.
func (c FilterCriteria) Matches(r TransactionRecord) bool {
	if c.Stylist != "" && r.Stylist != c.Stylist {
		return false
	}
	if c.Service != "" && r.Description != c.Service {
		return false
	}
	return true
}

// CashSufficiency is the liquidity check: whether cash collected covers the
// commissions owed. Delta is the surplus when sufficient and the shortfall
// magnitude when not (always non-negative).
type CashSufficiency struct {
	Sufficient bool            `json:"sufficient"`
	Delta      decimal.Decimal `json:"delta"`
}

// DerivedMetrics are the financial projections computed from a filtered row
// set. TotalExpenses is copied from the unfiltered AggregateTotals; every
// known payment method has an entry in PaymentSubtotals even when zero, so
// callers can decide display policy.
type DerivedMetrics struct {
	TotalAmount      decimal.Decimal                   `json:"totalAmount"`
	TotalCommission  decimal.Decimal                   `json:"totalCommission"`
	TotalExpenses    decimal.Decimal                   `json:"totalExpenses"`
	Profit           decimal.Decimal                   `json:"profit"`
	PaymentSubtotals map[PaymentMethod]decimal.Decimal `json:"paymentSubtotals"`
	CashSufficiency  CashSufficiency                   `json:"cashSufficiency"`
}

// FilterResult pairs the rows that passed a filter with the metrics derived
// from them.
type FilterResult struct {
	Rows    []TransactionRecord `json:"rows"`
	Metrics DerivedMetrics      `json:"metrics"`
}
