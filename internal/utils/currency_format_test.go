package utils_test

import (
	"testing"

	"github.com/lmorales/salon_dashboard_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{name: "zero", amount: decimal.Zero, want: "$0"},
		{name: "under a thousand", amount: decimal.NewFromInt(950), want: "$950"},
		{name: "thousands", amount: decimal.NewFromInt(50000), want: "$50.000"},
		{name: "millions", amount: decimal.NewFromInt(2500000), want: "$2.500.000"},
		{name: "negative", amount: decimal.NewFromInt(-15000), want: "-$15.000"},
		{name: "fractions rounded away", amount: decimal.NewFromFloat(1999.6), want: "$2.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatMoney(tt.amount))
		})
	}
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "1234.57", utils.FormatWithPrecision(decimal.NewFromFloat(1234.5678), 2))
	assert.Equal(t, "1235", utils.FormatWithPrecision(decimal.NewFromFloat(1234.5678), 0))
}
