package invoicing

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem represents a billable service line on an invoice.
// Amount is always derived from UnitRate and Quantity and is never
// editable on its own.
type LineItem struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	UnitRate    decimal.Decimal `json:"unit_rate"`
	Quantity    int64           `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
}

// ComputeAmount derives a line amount from unit rate and quantity.
// Negative inputs are coerced to zero before multiplying so that bad
// form input can never push a negative amount into stored state.
func ComputeAmount(unitRate decimal.Decimal, quantity int64) decimal.Decimal {
	if unitRate.IsNegative() {
		unitRate = decimal.Zero
	}
	if quantity < 0 {
		quantity = 0
	}
	return unitRate.Mul(decimal.NewFromInt(quantity))
}

// NewLineItem creates a line item with its amount computed
func NewLineItem(description string, unitRate decimal.Decimal, quantity int64) LineItem {
	if unitRate.IsNegative() {
		unitRate = decimal.Zero
	}
	if quantity < 0 {
		quantity = 0
	}
	return LineItem{
		ID:          uuid.New(),
		Description: description,
		UnitRate:    unitRate,
		Quantity:    quantity,
		Amount:      ComputeAmount(unitRate, quantity),
	}
}

// NewBlankLineItem creates the empty row a fresh draft starts with
func NewBlankLineItem() LineItem {
	return NewLineItem("", decimal.Zero, 1)
}

// SetUnitRate updates the rate and recomputes the amount
func (i *LineItem) SetUnitRate(unitRate decimal.Decimal) {
	if unitRate.IsNegative() {
		unitRate = decimal.Zero
	}
	i.UnitRate = unitRate
	i.Amount = ComputeAmount(i.UnitRate, i.Quantity)
}

// SetQuantity updates the quantity and recomputes the amount
func (i *LineItem) SetQuantity(quantity int64) {
	if quantity < 0 {
		quantity = 0
	}
	i.Quantity = quantity
	i.Amount = ComputeAmount(i.UnitRate, i.Quantity)
}

// SetDescription updates the service description
func (i *LineItem) SetDescription(description string) {
	i.Description = description
}

// IsBillable reports whether the line survives the save-time filter:
// a non-blank description and a positive amount.
func (i *LineItem) IsBillable() bool {
	return strings.TrimSpace(i.Description) != "" && i.Amount.IsPositive()
}

// LineItems is a slice of LineItem that implements GORM Scanner/Valuer
// for JSONB storage
type LineItems []LineItem

// Value implements driver.Valuer interface for GORM to store as JSONB
func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner interface for GORM to read from JSONB
func (l *LineItems) Scan(value interface{}) error {
	if value == nil {
		*l = LineItems{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan LineItems: unsupported type")
	}

	if len(bytes) == 0 {
		*l = LineItems{}
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// SubtotalOf sums the amounts of all items
func (l LineItems) SubtotalOf() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range l {
		subtotal = subtotal.Add(item.Amount)
	}
	return subtotal
}
