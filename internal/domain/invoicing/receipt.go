package invoicing

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptSnapshot is a display-ready view of a payment receipt. It is
// derived from the invoice and its recorded history, never from the
// stored paid/balance fields alone, so the figures on the document
// cannot drift from the payment log. Deriving a receipt does not
// mutate the invoice.
type ReceiptSnapshot struct {
	InvoiceNumber    string
	ClientName       string
	ReceiptAmount    decimal.Decimal
	TotalPaidToDate  decimal.Decimal
	RemainingBalance decimal.Decimal
	Date             time.Time
	Method           string
	Notes            string
}

// DeriveReceipt computes the receipt for one recorded payment, or the
// full-settlement receipt when entry is nil.
//
// For a specific entry the total paid to date is reproduced from the
// full payment history, which already includes the entry (entries are
// appended before the receipt is derived). For the full-settlement
// receipt a PAID invoice counts its whole total as paid even when the
// stored paid field was never raised through recorded payments.
//
// The remaining balance is floored at zero: a deliberate defensive
// clamp on the printed document, not a correction of stored state.
func DeriveReceipt(inv *Invoice, entry *PaymentEntry) ReceiptSnapshot {
	snap := ReceiptSnapshot{
		InvoiceNumber: inv.InvoiceNumber,
		ClientName:    inv.ClientName,
	}

	if entry == nil {
		snap.ReceiptAmount = inv.Total
		if inv.Status == StatusPaid {
			snap.TotalPaidToDate = inv.Total
		} else {
			snap.TotalPaidToDate = inv.Paid
		}
		snap.Date = inv.SavedDate
		snap.Method = inv.PaymentMethod
	} else {
		snap.ReceiptAmount = entry.Amount
		snap.TotalPaidToDate = inv.PaymentHistory.Sum()
		snap.Date = entry.PaymentDate
		snap.Method = entry.Method
		snap.Notes = entry.Notes
	}

	remaining := inv.Total.Sub(snap.TotalPaidToDate)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	snap.RemainingBalance = remaining

	return snap
}
