package printing

import (
	"testing"
	"time"

	"github.com/curio/backend/internal/domain/contract"
	"github.com/curio/backend/internal/domain/invoicing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStudio() StudioInfo {
	return StudioInfo{
		Name:     "Curio Studio",
		Tagline:  "Photography and design",
		Address:  "12 Ring Road",
		City:     "Accra",
		Phone:    "+233 24 000 0000",
		Email:    "hello@curio.studio",
		Currency: "GHS",
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{"0", "GHS 0.00"},
		{"1500", "GHS 1,500.00"},
		{"1234567.5", "GHS 1,234,567.50"},
		{"999", "GHS 999.00"},
		{"-250.75", "GHS -250.75"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			assert.Equal(t, tt.expected, formatMoney("GHS", amount))
		})
	}
}

func TestTemplateEngine_RenderInvoice(t *testing.T) {
	engine, err := NewTemplateEngine()
	require.NoError(t, err)

	d := invoicing.NewDraft()
	d.ClientName = "Akosua Mensah"
	d.Items = invoicing.LineItems{invoicing.NewLineItem("Wedding shoot", decimal.NewFromInt(1500), 1)}
	d.PaymentMethod = "Mobile Money"
	inv, err := invoicing.NewInvoice("owner-1", "INV-2026-001", d)
	require.NoError(t, err)

	html, err := engine.Render(TemplateInvoice, InvoiceDocument{Studio: testStudio(), Invoice: inv})
	require.NoError(t, err)

	assert.Contains(t, html, "CURIO STUDIO")
	assert.Contains(t, html, "INV-2026-001")
	assert.Contains(t, html, "Akosua Mensah")
	assert.Contains(t, html, "Wedding shoot")
	assert.Contains(t, html, "GHS 1,500.00")
	assert.Contains(t, html, "UNPAID")
}

func TestTemplateEngine_RenderInvoice_EscapesClientInput(t *testing.T) {
	engine, err := NewTemplateEngine()
	require.NoError(t, err)

	d := invoicing.NewDraft()
	d.ClientName = "<script>alert(1)</script>"
	d.Items = invoicing.LineItems{invoicing.NewLineItem("Shoot", decimal.NewFromInt(100), 1)}
	d.PaymentMethod = "Cash"
	inv, err := invoicing.NewInvoice("owner-1", "INV-2026-002", d)
	require.NoError(t, err)

	html, err := engine.Render(TemplateInvoice, InvoiceDocument{Studio: testStudio(), Invoice: inv})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
}

func TestTemplateEngine_RenderReceipt(t *testing.T) {
	engine, err := NewTemplateEngine()
	require.NoError(t, err)

	snap := invoicing.ReceiptSnapshot{
		InvoiceNumber:    "INV-2026-003",
		ClientName:       "Kwame Boateng",
		ReceiptAmount:    decimal.NewFromInt(200),
		TotalPaidToDate:  decimal.NewFromInt(200),
		RemainingBalance: decimal.NewFromInt(300),
		Date:             time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		Method:           "Mobile Money",
		Notes:            "deposit",
	}

	html, err := engine.Render(TemplateReceipt, ReceiptDocument{Studio: testStudio(), Receipt: snap})
	require.NoError(t, err)

	assert.Contains(t, html, "Payment Receipt")
	assert.Contains(t, html, "INV-2026-003")
	assert.Contains(t, html, "GHS 200.00")
	assert.Contains(t, html, "GHS 300.00")
	assert.Contains(t, html, "10 August 2026")
	assert.Contains(t, html, "deposit")
}

func TestTemplateEngine_RenderAgreement(t *testing.T) {
	engine, err := NewTemplateEngine()
	require.NoError(t, err)

	c, err := contract.NewContract("owner-1", "CTR-2026-001", "Akosua Mensah", "Wedding photography",
		decimal.NewFromInt(5000), decimal.NewFromInt(30))
	require.NoError(t, err)
	c.Terms = "Deposit is non-refundable."
	require.NoError(t, c.TransitionTo(contract.StatusSent))
	require.NoError(t, c.TransitionTo(contract.StatusSigned))

	html, err := engine.Render(TemplateAgreement, AgreementDocument{Studio: testStudio(), Contract: c})
	require.NoError(t, err)

	assert.Contains(t, html, "Service Agreement CTR-2026-001")
	assert.Contains(t, html, "Wedding photography")
	assert.Contains(t, html, "GHS 5,000.00")
	assert.Contains(t, html, "GHS 1,500.00")
	assert.Contains(t, html, "GHS 3,500.00")
	assert.Contains(t, html, "Deposit is non-refundable.")
	assert.Contains(t, html, "SIGNED")
}

func TestTemplateEngine_RenderUnknownTemplate(t *testing.T) {
	engine, err := NewTemplateEngine()
	require.NoError(t, err)

	_, err = engine.Render("unknown", nil)
	assert.Error(t, err)
}
