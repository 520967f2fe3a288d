package invoicing

import (
	"strings"

	"github.com/curio/backend/internal/domain/shared"
)

// Validation rule codes, surfaced to the operator with the first rule
// that failed. Checks run in a fixed order and short-circuit so the
// user always sees a single deterministic message.
const (
	RuleClientNameRequired  = "CLIENT_NAME_REQUIRED"
	RuleNoBillableItems     = "NO_BILLABLE_ITEMS"
	RulePaymentInfoRequired = "PAYMENT_INFO_REQUIRED"
	RuleZeroTotal           = "ZERO_TOTAL"
)

// ValidateDraft checks a draft against the save rules and returns the
// cleaned item list (blank or zero-amount lines removed). The cleaned
// list is what gets persisted; the draft itself is not modified.
func ValidateDraft(d Draft) (LineItems, error) {
	if strings.TrimSpace(d.ClientName) == "" {
		return nil, shared.NewDomainError(RuleClientNameRequired, "Client name is required")
	}

	billable := make(LineItems, 0, len(d.Items))
	for _, item := range d.Items {
		if item.IsBillable() {
			billable = append(billable, item)
		}
	}
	if len(billable) == 0 {
		return nil, shared.NewDomainError(RuleNoBillableItems, "At least one item with a description and a positive amount is required")
	}

	if strings.TrimSpace(d.PaymentMethod) == "" &&
		strings.TrimSpace(d.PaymentAccountNumber) == "" &&
		strings.TrimSpace(d.PaymentLink) == "" {
		return nil, shared.NewDomainError(RulePaymentInfoRequired, "Provide a payment method, account number or payment link")
	}

	totals := ComputeTotals(billable, d.Discount, d.Tax, d.Paid)
	if !totals.Total.IsPositive() {
		return nil, shared.NewDomainError(RuleZeroTotal, "Invoice total must be greater than zero")
	}

	return billable, nil
}
