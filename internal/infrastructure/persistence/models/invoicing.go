package models

import (
	"time"

	"github.com/curio/backend/internal/domain/invoicing"
	"github.com/shopspring/decimal"
)

// InvoiceModel is the persistence model for the Invoice aggregate.
// Line items and the payment history are stored as JSONB documents
// rather than joined tables; both are small, owner-private lists that
// are always read and written with their invoice.
type InvoiceModel struct {
	BaseModel
	// The owner id is an opaque identity-provider subject, stored as
	// text. Invoice numbers repeat across owners, so uniqueness holds
	// only over (owner_id, invoice_number).
	OwnerID       string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_invoice_owner_number,priority:1"`
	InvoiceNumber string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_invoice_owner_number,priority:2"`
	InvoiceDate   time.Time `gorm:"not null;index"`
	PurchaseDate  time.Time

	ClientName    string `gorm:"type:varchar(200);not null;index"`
	ClientAddress string `gorm:"type:varchar(500)"`
	ClientCity    string `gorm:"type:varchar(100)"`
	ClientPO      string `gorm:"type:varchar(100)"`
	ClientVAT     string `gorm:"type:varchar(100)"`

	OrderNo    string `gorm:"type:varchar(100)"`
	CheckoutNo string `gorm:"type:varchar(100)"`

	Items    invoicing.LineItems `gorm:"type:jsonb;default:'[]'"`
	Discount decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	Tax      decimal.Decimal     `gorm:"type:decimal(18,4);not null"`

	Subtotal decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	NetSales decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Total    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Paid     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Balance  decimal.Decimal `gorm:"type:decimal(18,4);not null;index"`

	Status invoicing.InvoiceStatus `gorm:"type:varchar(20);not null;default:'UNPAID';index"`

	PaymentMethod        string `gorm:"type:varchar(100)"`
	PaymentAccountNumber string `gorm:"type:varchar(100)"`
	PaymentInstitution   string `gorm:"type:varchar(200)"`
	PaymentBeneficiary   string `gorm:"type:varchar(200)"`
	PaymentLink          string `gorm:"type:varchar(500)"`

	PaymentHistory invoicing.PaymentEntries `gorm:"type:jsonb;default:'[]'"`
	SavedDate      time.Time                `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice
func (m *InvoiceModel) ToDomain() *invoicing.Invoice {
	inv := &invoicing.Invoice{
		InvoiceNumber:        m.InvoiceNumber,
		InvoiceDate:          m.InvoiceDate,
		PurchaseDate:         m.PurchaseDate,
		ClientName:           m.ClientName,
		ClientAddress:        m.ClientAddress,
		ClientCity:           m.ClientCity,
		ClientPO:             m.ClientPO,
		ClientVAT:            m.ClientVAT,
		OrderNo:              m.OrderNo,
		CheckoutNo:           m.CheckoutNo,
		Items:                m.Items,
		Discount:             m.Discount,
		Tax:                  m.Tax,
		Subtotal:             m.Subtotal,
		NetSales:             m.NetSales,
		Total:                m.Total,
		Paid:                 m.Paid,
		Balance:              m.Balance,
		Status:               m.Status,
		PaymentMethod:        m.PaymentMethod,
		PaymentAccountNumber: m.PaymentAccountNumber,
		PaymentInstitution:   m.PaymentInstitution,
		PaymentBeneficiary:   m.PaymentBeneficiary,
		PaymentLink:          m.PaymentLink,
		PaymentHistory:       m.PaymentHistory,
		SavedDate:            m.SavedDate,
	}
	m.PopulateBaseEntity(&inv.BaseEntity)
	inv.OwnerID = m.OwnerID
	return inv
}

// FromDomain populates the persistence model from a domain Invoice
func (m *InvoiceModel) FromDomain(inv *invoicing.Invoice) {
	m.FromDomainBaseEntity(inv.BaseEntity)
	m.OwnerID = inv.OwnerID
	m.InvoiceNumber = inv.InvoiceNumber
	m.InvoiceDate = inv.InvoiceDate
	m.PurchaseDate = inv.PurchaseDate
	m.ClientName = inv.ClientName
	m.ClientAddress = inv.ClientAddress
	m.ClientCity = inv.ClientCity
	m.ClientPO = inv.ClientPO
	m.ClientVAT = inv.ClientVAT
	m.OrderNo = inv.OrderNo
	m.CheckoutNo = inv.CheckoutNo
	m.Items = inv.Items
	m.Discount = inv.Discount
	m.Tax = inv.Tax
	m.Subtotal = inv.Subtotal
	m.NetSales = inv.NetSales
	m.Total = inv.Total
	m.Paid = inv.Paid
	m.Balance = inv.Balance
	m.Status = inv.Status
	m.PaymentMethod = inv.PaymentMethod
	m.PaymentAccountNumber = inv.PaymentAccountNumber
	m.PaymentInstitution = inv.PaymentInstitution
	m.PaymentBeneficiary = inv.PaymentBeneficiary
	m.PaymentLink = inv.PaymentLink
	m.PaymentHistory = inv.PaymentHistory
	m.SavedDate = inv.SavedDate
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice
func InvoiceModelFromDomain(inv *invoicing.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(inv)
	return m
}

// CounterModel is the per-owner document counter row. One row per
// owner and scope; the value is the NEXT number to hand out.
type CounterModel struct {
	OwnerID   string    `gorm:"type:varchar(128);primaryKey"`
	Scope     string    `gorm:"type:varchar(30);primaryKey"`
	Value     int       `gorm:"not null;default:1"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CounterModel) TableName() string {
	return "document_counters"
}
