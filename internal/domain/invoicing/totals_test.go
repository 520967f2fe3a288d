package invoicing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	items := LineItems{
		NewLineItem("Design", decimal.NewFromInt(400), 1),
		NewLineItem("Revisions", decimal.NewFromInt(50), 2),
	}

	tests := []struct {
		name             string
		discount         decimal.Decimal
		tax              decimal.Decimal
		paid             decimal.Decimal
		expectedSubtotal string
		expectedNetSales string
		expectedTotal    string
		expectedBalance  string
	}{
		{
			name:             "no adjustments",
			discount:         decimal.Zero,
			tax:              decimal.Zero,
			paid:             decimal.Zero,
			expectedSubtotal: "500",
			expectedNetSales: "500",
			expectedTotal:    "500",
			expectedBalance:  "500",
		},
		{
			name:             "discount and tax",
			discount:         decimal.NewFromInt(50),
			tax:              decimal.NewFromInt(25),
			paid:             decimal.Zero,
			expectedSubtotal: "500",
			expectedNetSales: "450",
			expectedTotal:    "475",
			expectedBalance:  "475",
		},
		{
			name:             "part paid",
			discount:         decimal.Zero,
			tax:              decimal.Zero,
			paid:             decimal.NewFromInt(200),
			expectedSubtotal: "500",
			expectedNetSales: "500",
			expectedTotal:    "500",
			expectedBalance:  "300",
		},
		{
			name:             "overpayment yields negative balance",
			discount:         decimal.Zero,
			tax:              decimal.Zero,
			paid:             decimal.NewFromInt(600),
			expectedSubtotal: "500",
			expectedNetSales: "500",
			expectedTotal:    "500",
			expectedBalance:  "-100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := ComputeTotals(items, tt.discount, tt.tax, tt.paid)
			assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString(tt.expectedSubtotal)))
			assert.True(t, totals.NetSales.Equal(decimal.RequireFromString(tt.expectedNetSales)))
			assert.True(t, totals.Total.Equal(decimal.RequireFromString(tt.expectedTotal)))
			assert.True(t, totals.Balance.Equal(decimal.RequireFromString(tt.expectedBalance)))
		})
	}
}

func TestComputeTotals_Deterministic(t *testing.T) {
	items := LineItems{NewLineItem("Retainer", decimal.NewFromFloat(1234.56), 3)}
	discount := decimal.NewFromFloat(10.10)
	tax := decimal.NewFromFloat(99.99)
	paid := decimal.NewFromFloat(500.00)

	first := ComputeTotals(items, discount, tax, paid)
	second := ComputeTotals(items, discount, tax, paid)

	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.NetSales.Equal(second.NetSales))
	assert.True(t, first.Total.Equal(second.Total))
	assert.True(t, first.Balance.Equal(second.Balance))
}
