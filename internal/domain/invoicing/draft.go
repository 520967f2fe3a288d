package invoicing

import (
	"time"

	"github.com/curio/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Draft is the editable, not-yet-persisted form of an invoice. It is a
// plain value the presentation layer mutates through ApplyItemPatch and
// direct field assignment; it only becomes an Invoice by passing
// through ValidateDraft and the invoice service's save path.
type Draft struct {
	InvoiceDate  time.Time
	PurchaseDate time.Time

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
	Paid     decimal.Decimal
	Status   InvoiceStatus

	PaymentMethod        string
	PaymentAccountNumber string
	PaymentInstitution   string
	PaymentBeneficiary   string
	PaymentLink          string
}

// NewDraft creates a fresh blank draft: one empty line, zero
// adjustments, status UNPAID.
func NewDraft() Draft {
	now := time.Now()
	return Draft{
		InvoiceDate:  now,
		PurchaseDate: now,
		Items:        LineItems{NewBlankLineItem()},
		Discount:     decimal.Zero,
		Tax:          decimal.Zero,
		Paid:         decimal.Zero,
		Status:       StatusUnpaid,
	}
}

// NextDraft returns the blank draft that follows a successful save.
// Paid, discount and tax reset to zero; the payment default fields
// carry over because they rarely change between invoices.
func (d Draft) NextDraft() Draft {
	next := NewDraft()
	next.PaymentAccountNumber = d.PaymentAccountNumber
	next.PaymentInstitution = d.PaymentInstitution
	next.PaymentBeneficiary = d.PaymentBeneficiary
	next.PaymentLink = d.PaymentLink
	return next
}

// ItemPatch is a tagged partial update for one line item. Nil fields
// are left untouched; any change to rate or quantity recomputes the
// line amount.
type ItemPatch struct {
	Description *string
	UnitRate    *decimal.Decimal
	Quantity    *int64
}

// ApplyItemPatch applies a partial update to the item at index
func (d *Draft) ApplyItemPatch(index int, patch ItemPatch) error {
	if index < 0 || index >= len(d.Items) {
		return shared.NewDomainError("INVALID_ITEM_INDEX", "Line item index out of range")
	}
	item := &d.Items[index]
	if patch.Description != nil {
		item.SetDescription(*patch.Description)
	}
	if patch.UnitRate != nil {
		item.SetUnitRate(*patch.UnitRate)
	}
	if patch.Quantity != nil {
		item.SetQuantity(*patch.Quantity)
	}
	return nil
}

// AddItem appends a blank line item to the draft
func (d *Draft) AddItem() {
	d.Items = append(d.Items, NewBlankLineItem())
}

// RemoveItem removes the line item at index
func (d *Draft) RemoveItem(index int) error {
	if index < 0 || index >= len(d.Items) {
		return shared.NewDomainError("INVALID_ITEM_INDEX", "Line item index out of range")
	}
	d.Items = append(d.Items[:index], d.Items[index+1:]...)
	return nil
}

// Totals computes the draft's derived monetary fields as currently
// entered, before any save-time cleaning.
func (d Draft) Totals() Totals {
	return ComputeTotals(d.Items, d.Discount, d.Tax, d.Paid)
}
