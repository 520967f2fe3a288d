package invoicing

import "github.com/shopspring/decimal"

// Totals holds the derived monetary fields of an invoice.
// All four values are pure functions of the item list and the
// discount/tax/paid adjustments; they are persisted for read
// efficiency but never mutated independently.
type Totals struct {
	Subtotal decimal.Decimal
	NetSales decimal.Decimal
	Total    decimal.Decimal
	Balance  decimal.Decimal
}

// ComputeTotals derives subtotal, net sales, total and balance from a
// line-item list and the adjustment fields. Calling it twice with the
// same inputs yields identical outputs; display rounding is a
// presentation concern and happens elsewhere.
func ComputeTotals(items LineItems, discount, tax, paid decimal.Decimal) Totals {
	subtotal := items.SubtotalOf()
	netSales := subtotal.Sub(discount)
	total := netSales.Add(tax)
	return Totals{
		Subtotal: subtotal,
		NetSales: netSales,
		Total:    total,
		Balance:  total.Sub(paid),
	}
}
