package invoicing

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/curio/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the payment status of an invoice
type InvoiceStatus string

const (
	StatusUnpaid  InvoiceStatus = "UNPAID"  // No payment recorded
	StatusPending InvoiceStatus = "PENDING" // Partially paid, 0 < paid < total
	StatusPaid    InvoiceStatus = "PAID"    // Fully settled, balance = 0
)

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case StatusUnpaid, StatusPending, StatusPaid:
		return true
	}
	return false
}

// String returns the string representation of InvoiceStatus
func (s InvoiceStatus) String() string {
	return string(s)
}

// PaymentEntry represents one recorded payment against an invoice.
// Entries are append-only: once recorded they are never mutated or
// deleted, so the history doubles as an audit log.
type PaymentEntry struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	PaymentDate time.Time       `json:"payment_date"`
	Notes       string          `json:"notes,omitempty"`
	RecordedAt  time.Time       `json:"recorded_at"`
}

// PaymentEntries is a slice of PaymentEntry that implements GORM
// Scanner/Valuer for JSONB storage
type PaymentEntries []PaymentEntry

// Value implements driver.Valuer interface for GORM to store as JSONB
func (p PaymentEntries) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner interface for GORM to read from JSONB
func (p *PaymentEntries) Scan(value interface{}) error {
	if value == nil {
		*p = PaymentEntries{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan PaymentEntries: unsupported type")
	}

	if len(bytes) == 0 {
		*p = PaymentEntries{}
		return nil
	}

	return json.Unmarshal(bytes, p)
}

// Sum returns the total of all recorded payment amounts
func (p PaymentEntries) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, entry := range p {
		sum = sum.Add(entry.Amount)
	}
	return sum
}

// Invoice is the central aggregate: a persisted invoice with its
// derived monetary fields and append-only payment history. The id and
// invoice number are assigned at first save and never change; edits
// overwrite every other field except the payment history.
type Invoice struct {
	shared.OwnedEntity
	InvoiceNumber string
	InvoiceDate   time.Time
	PurchaseDate  time.Time

	ClientName    string
	ClientAddress string
	ClientCity    string
	ClientPO      string
	ClientVAT     string

	OrderNo    string
	CheckoutNo string

	Items    LineItems
	Discount decimal.Decimal
	Tax      decimal.Decimal

	// Derived fields, recomputed at every save and persisted for reads
	Subtotal decimal.Decimal
	NetSales decimal.Decimal
	Total    decimal.Decimal
	Paid     decimal.Decimal
	Balance  decimal.Decimal

	Status InvoiceStatus

	PaymentMethod        string
	PaymentAccountNumber string
	PaymentInstitution   string
	PaymentBeneficiary   string
	PaymentLink          string

	PaymentHistory PaymentEntries
	SavedDate      time.Time
}

// NewInvoice creates an invoice from a validated draft. The caller
// supplies the invoice number allocated from the owner's counter.
// If the operator set the status to PAID at save time, paid is forced
// to the computed total and the balance to zero regardless of the
// entered paid value.
func NewInvoice(ownerID, invoiceNumber string, d Draft) (*Invoice, error) {
	if ownerID == "" {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	if invoiceNumber == "" {
		return nil, shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot be empty")
	}

	items, err := ValidateDraft(d)
	if err != nil {
		return nil, err
	}

	inv := &Invoice{
		OwnedEntity:    shared.NewOwnedEntity(ownerID),
		InvoiceNumber:  invoiceNumber,
		PaymentHistory: PaymentEntries{},
	}
	inv.applyDraft(d, items)
	return inv, nil
}

// ApplyEdit overwrites the invoice with the edited draft. The id,
// invoice number, creation time and payment history are preserved;
// everything else is a destructive overwrite.
func (inv *Invoice) ApplyEdit(d Draft) error {
	items, err := ValidateDraft(d)
	if err != nil {
		return err
	}
	inv.applyDraft(d, items)
	return nil
}

// applyDraft copies the draft fields onto the invoice and recomputes
// the derived totals, including the forced-PAID override.
func (inv *Invoice) applyDraft(d Draft, items LineItems) {
	now := time.Now()

	inv.InvoiceDate = d.InvoiceDate
	inv.PurchaseDate = d.PurchaseDate
	inv.ClientName = strings.TrimSpace(d.ClientName)
	inv.ClientAddress = d.ClientAddress
	inv.ClientCity = d.ClientCity
	inv.ClientPO = d.ClientPO
	inv.ClientVAT = d.ClientVAT
	inv.OrderNo = d.OrderNo
	inv.CheckoutNo = d.CheckoutNo
	inv.Items = items
	inv.Discount = d.Discount
	inv.Tax = d.Tax
	inv.PaymentMethod = d.PaymentMethod
	inv.PaymentAccountNumber = d.PaymentAccountNumber
	inv.PaymentInstitution = d.PaymentInstitution
	inv.PaymentBeneficiary = d.PaymentBeneficiary
	inv.PaymentLink = d.PaymentLink

	status := d.Status
	if !status.IsValid() {
		status = StatusUnpaid
	}

	totals := ComputeTotals(items, d.Discount, d.Tax, d.Paid)
	inv.Subtotal = totals.Subtotal
	inv.NetSales = totals.NetSales
	inv.Total = totals.Total

	if status == StatusPaid {
		// Marking an invoice PAID at save time settles it in full,
		// overriding whatever paid amount was entered. No payment
		// entry is appended; see RecordPayment for tracked payments.
		inv.Paid = totals.Total
		inv.Balance = decimal.Zero
	} else {
		inv.Paid = d.Paid
		inv.Balance = totals.Balance
	}
	inv.Status = status

	inv.SavedDate = now
	inv.UpdatedAt = now
}

// RecordPayment records a part payment against the invoice. The
// payment is rejected, with no state change, if the amount is not
// positive, the method is blank, or the amount exceeds the remaining
// balance (a settled invoice has balance zero, so any further payment
// is rejected on that same rule).
func (inv *Invoice) RecordPayment(amount decimal.Decimal, method string, paymentDate time.Time, notes string) (*PaymentEntry, error) {
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("PAYMENT_REJECTED", "Payment amount must be positive")
	}
	if strings.TrimSpace(method) == "" {
		return nil, shared.NewDomainError("PAYMENT_REJECTED", "Payment method is required")
	}

	balance := inv.Balance
	if amount.GreaterThan(balance) {
		return nil, shared.NewDomainError("PAYMENT_REJECTED",
			fmt.Sprintf("Payment amount %s exceeds remaining balance of %s", amount.StringFixed(2), balance.StringFixed(2)))
	}

	entry := PaymentEntry{
		ID:          uuid.New(),
		Amount:      amount,
		Method:      method,
		PaymentDate: paymentDate,
		Notes:       notes,
		RecordedAt:  time.Now(),
	}
	inv.PaymentHistory = append(inv.PaymentHistory, entry)

	inv.Paid = inv.Paid.Add(amount)
	inv.Balance = inv.Total.Sub(inv.Paid)

	if inv.Balance.LessThanOrEqual(decimal.Zero) {
		inv.Status = StatusPaid
	} else if inv.Paid.IsPositive() {
		inv.Status = StatusPending
	}

	inv.UpdatedAt = time.Now()
	return &entry, nil
}

// IsPaid returns true if the invoice is fully settled
func (inv *Invoice) IsPaid() bool {
	return inv.Status == StatusPaid
}

// HasOutstandingBalance returns true if money is still owed
func (inv *Invoice) HasOutstandingBalance() bool {
	return inv.Balance.IsPositive()
}
