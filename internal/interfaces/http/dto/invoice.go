package dto

import (
	"time"

	"github.com/curio/backend/internal/domain/invoicing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one editable invoice line
type LineItemRequest struct {
	Description string          `json:"description"`
	UnitRate    decimal.Decimal `json:"unit_rate"`
	Quantity    int64           `json:"quantity"`
}

// SaveInvoiceRequest is the draft as submitted for saving. The same
// payload serves create and edit; the route decides which.
type SaveInvoiceRequest struct {
	InvoiceDate  time.Time `json:"invoice_date" binding:"required"`
	PurchaseDate time.Time `json:"purchase_date"`

	ClientName    string `json:"client_name"`
	ClientAddress string `json:"client_address"`
	ClientCity    string `json:"client_city"`
	ClientPO      string `json:"client_po"`
	ClientVAT     string `json:"client_vat"`

	OrderNo    string `json:"order_no"`
	CheckoutNo string `json:"checkout_no"`

	Items    []LineItemRequest `json:"items" binding:"required,min=1"`
	Discount decimal.Decimal   `json:"discount"`
	Tax      decimal.Decimal   `json:"tax"`
	Paid     decimal.Decimal   `json:"paid"`
	Status   string            `json:"status" binding:"omitempty,oneof=UNPAID PENDING PAID"`

	PaymentMethod        string `json:"payment_method"`
	PaymentAccountNumber string `json:"payment_account_number"`
	PaymentInstitution   string `json:"payment_institution"`
	PaymentBeneficiary   string `json:"payment_beneficiary"`
	PaymentLink          string `json:"payment_link"`
}

// ToDraft converts the request into a domain draft. Line amounts are
// recomputed here; client-sent amounts are never trusted.
func (r *SaveInvoiceRequest) ToDraft() invoicing.Draft {
	items := make(invoicing.LineItems, len(r.Items))
	for i, item := range r.Items {
		items[i] = invoicing.NewLineItem(item.Description, item.UnitRate, item.Quantity)
	}

	status := invoicing.InvoiceStatus(r.Status)
	if r.Status == "" {
		status = invoicing.StatusUnpaid
	}

	return invoicing.Draft{
		InvoiceDate:          r.InvoiceDate,
		PurchaseDate:         r.PurchaseDate,
		ClientName:           r.ClientName,
		ClientAddress:        r.ClientAddress,
		ClientCity:           r.ClientCity,
		ClientPO:             r.ClientPO,
		ClientVAT:            r.ClientVAT,
		OrderNo:              r.OrderNo,
		CheckoutNo:           r.CheckoutNo,
		Items:                items,
		Discount:             r.Discount,
		Tax:                  r.Tax,
		Paid:                 r.Paid,
		Status:               status,
		PaymentMethod:        r.PaymentMethod,
		PaymentAccountNumber: r.PaymentAccountNumber,
		PaymentInstitution:   r.PaymentInstitution,
		PaymentBeneficiary:   r.PaymentBeneficiary,
		PaymentLink:          r.PaymentLink,
	}
}

// RecordPaymentRequest is one payment against an invoice
type RecordPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required,dgt0"`
	Method      string          `json:"method" binding:"required"`
	PaymentDate time.Time       `json:"payment_date" binding:"required"`
	Notes       string          `json:"notes"`
}

// LineItemResponse is one invoice line as returned to clients
type LineItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	UnitRate    decimal.Decimal `json:"unit_rate"`
	Quantity    int64           `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
}

// PaymentEntryResponse is one recorded payment as returned to clients
type PaymentEntryResponse struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	PaymentDate time.Time       `json:"payment_date"`
	Notes       string          `json:"notes,omitempty"`
	RecordedAt  time.Time       `json:"recorded_at"`
}

// InvoiceResponse is the full invoice representation
type InvoiceResponse struct {
	ID            uuid.UUID `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	InvoiceDate   time.Time `json:"invoice_date"`
	PurchaseDate  time.Time `json:"purchase_date"`

	ClientName    string `json:"client_name"`
	ClientAddress string `json:"client_address,omitempty"`
	ClientCity    string `json:"client_city,omitempty"`
	ClientPO      string `json:"client_po,omitempty"`
	ClientVAT     string `json:"client_vat,omitempty"`

	OrderNo    string `json:"order_no,omitempty"`
	CheckoutNo string `json:"checkout_no,omitempty"`

	Items    []LineItemResponse `json:"items"`
	Discount decimal.Decimal    `json:"discount"`
	Tax      decimal.Decimal    `json:"tax"`

	Subtotal decimal.Decimal `json:"subtotal"`
	NetSales decimal.Decimal `json:"net_sales"`
	Total    decimal.Decimal `json:"total"`
	Paid     decimal.Decimal `json:"paid"`
	Balance  decimal.Decimal `json:"balance"`

	Status string `json:"status"`

	PaymentMethod        string `json:"payment_method,omitempty"`
	PaymentAccountNumber string `json:"payment_account_number,omitempty"`
	PaymentInstitution   string `json:"payment_institution,omitempty"`
	PaymentBeneficiary   string `json:"payment_beneficiary,omitempty"`
	PaymentLink          string `json:"payment_link,omitempty"`

	PaymentHistory []PaymentEntryResponse `json:"payment_history"`
	SavedDate      time.Time              `json:"saved_date"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// InvoiceResponseFromDomain converts a domain invoice to its response
func InvoiceResponseFromDomain(inv *invoicing.Invoice) InvoiceResponse {
	items := make([]LineItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = LineItemResponse{
			ID:          item.ID,
			Description: item.Description,
			UnitRate:    item.UnitRate,
			Quantity:    item.Quantity,
			Amount:      item.Amount,
		}
	}

	history := make([]PaymentEntryResponse, len(inv.PaymentHistory))
	for i, entry := range inv.PaymentHistory {
		history[i] = PaymentEntryResponse{
			ID:          entry.ID,
			Amount:      entry.Amount,
			Method:      entry.Method,
			PaymentDate: entry.PaymentDate,
			Notes:       entry.Notes,
			RecordedAt:  entry.RecordedAt,
		}
	}

	return InvoiceResponse{
		ID:                   inv.ID,
		InvoiceNumber:        inv.InvoiceNumber,
		InvoiceDate:          inv.InvoiceDate,
		PurchaseDate:         inv.PurchaseDate,
		ClientName:           inv.ClientName,
		ClientAddress:        inv.ClientAddress,
		ClientCity:           inv.ClientCity,
		ClientPO:             inv.ClientPO,
		ClientVAT:            inv.ClientVAT,
		OrderNo:              inv.OrderNo,
		CheckoutNo:           inv.CheckoutNo,
		Items:                items,
		Discount:             inv.Discount,
		Tax:                  inv.Tax,
		Subtotal:             inv.Subtotal,
		NetSales:             inv.NetSales,
		Total:                inv.Total,
		Paid:                 inv.Paid,
		Balance:              inv.Balance,
		Status:               inv.Status.String(),
		PaymentMethod:        inv.PaymentMethod,
		PaymentAccountNumber: inv.PaymentAccountNumber,
		PaymentInstitution:   inv.PaymentInstitution,
		PaymentBeneficiary:   inv.PaymentBeneficiary,
		PaymentLink:          inv.PaymentLink,
		PaymentHistory:       history,
		SavedDate:            inv.SavedDate,
		CreatedAt:            inv.CreatedAt,
		UpdatedAt:            inv.UpdatedAt,
	}
}

// InvoiceListResponse is the list view of invoices
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Count    int               `json:"count"`
}

// SaveInvoiceResponse is the outcome of a save. NextDraft is only
// present on create.
type SaveInvoiceResponse struct {
	Invoice   InvoiceResponse `json:"invoice"`
	NextDraft *DraftResponse  `json:"next_draft,omitempty"`
}

// DraftResponse is the blank follow-up draft returned after a create
type DraftResponse struct {
	PaymentAccountNumber string `json:"payment_account_number,omitempty"`
	PaymentInstitution   string `json:"payment_institution,omitempty"`
	PaymentBeneficiary   string `json:"payment_beneficiary,omitempty"`
	PaymentLink          string `json:"payment_link,omitempty"`
}

// ReceiptResponse is a derived receipt
type ReceiptResponse struct {
	InvoiceNumber    string          `json:"invoice_number"`
	ClientName       string          `json:"client_name"`
	ReceiptAmount    decimal.Decimal `json:"receipt_amount"`
	TotalPaidToDate  decimal.Decimal `json:"total_paid_to_date"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	Date             time.Time       `json:"date"`
	Method           string          `json:"method,omitempty"`
	Notes            string          `json:"notes,omitempty"`
}

// ReceiptResponseFromDomain converts a receipt snapshot to its response
func ReceiptResponseFromDomain(snap invoicing.ReceiptSnapshot) ReceiptResponse {
	return ReceiptResponse{
		InvoiceNumber:    snap.InvoiceNumber,
		ClientName:       snap.ClientName,
		ReceiptAmount:    snap.ReceiptAmount,
		TotalPaidToDate:  snap.TotalPaidToDate,
		RemainingBalance: snap.RemainingBalance,
		Date:             snap.Date,
		Method:           snap.Method,
		Notes:            snap.Notes,
	}
}

// RecordPaymentResponse is the outcome of a recorded payment
type RecordPaymentResponse struct {
	Invoice InvoiceResponse      `json:"invoice"`
	Entry   PaymentEntryResponse `json:"entry"`
	Receipt ReceiptResponse      `json:"receipt"`
}

// ClientRevenueResponse is one row of the top-clients breakdown
type ClientRevenueResponse struct {
	ClientName   string          `json:"client_name"`
	InvoiceCount int             `json:"invoice_count"`
	Total        decimal.Decimal `json:"total"`
}

// StatisticsResponse is the dashboard snapshot
type StatisticsResponse struct {
	TotalRevenue     decimal.Decimal         `json:"total_revenue"`
	TotalPaid        decimal.Decimal         `json:"total_paid"`
	TotalOutstanding decimal.Decimal         `json:"total_outstanding"`
	TotalInvoices    int                     `json:"total_invoices"`
	PaidInvoices     int                     `json:"paid_invoices"`
	UnpaidInvoices   int                     `json:"unpaid_invoices"`
	MonthInvoices    int                     `json:"month_invoices"`
	MonthRevenue     decimal.Decimal         `json:"month_revenue"`
	TopClients       []ClientRevenueResponse `json:"top_clients"`
}

// StatisticsResponseFromDomain converts domain statistics to its response
func StatisticsResponseFromDomain(stats *invoicing.Statistics) StatisticsResponse {
	topClients := make([]ClientRevenueResponse, len(stats.TopClients))
	for i, client := range stats.TopClients {
		topClients[i] = ClientRevenueResponse{
			ClientName:   client.ClientName,
			InvoiceCount: client.InvoiceCount,
			Total:        client.Total,
		}
	}
	return StatisticsResponse{
		TotalRevenue:     stats.TotalRevenue,
		TotalPaid:        stats.TotalPaid,
		TotalOutstanding: stats.TotalOutstanding,
		TotalInvoices:    stats.TotalInvoices,
		PaidInvoices:     stats.PaidInvoices,
		UnpaidInvoices:   stats.UnpaidInvoices,
		MonthInvoices:    stats.MonthInvoices,
		MonthRevenue:     stats.MonthRevenue,
		TopClients:       topClients,
	}
}

// NextNumberResponse is the preview of the next document number
type NextNumberResponse struct {
	Number string `json:"number"`
}
