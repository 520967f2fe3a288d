package invoicing

import "fmt"

// FormatInvoiceNumber builds the human-facing invoice number from the
// issue year and the owner's counter, e.g. INV-2026-007. The counter
// is zero-padded to three digits and grows past 999 unpadded.
func FormatInvoiceNumber(year, counter int) string {
	return fmt.Sprintf("INV-%d-%03d", year, counter)
}
