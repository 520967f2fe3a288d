package printing

import (
	"github.com/curio/backend/internal/domain/contract"
	"github.com/curio/backend/internal/domain/invoicing"
	"github.com/curio/backend/internal/infrastructure/config"
)

// StudioInfo is the issuer block printed at the top of every document
type StudioInfo struct {
	Name     string
	Tagline  string
	Address  string
	City     string
	Phone    string
	Email    string
	Currency string
}

// StudioInfoFromConfig builds the issuer block from configuration
func StudioInfoFromConfig(cfg config.StudioConfig) StudioInfo {
	return StudioInfo{
		Name:     cfg.Name,
		Tagline:  cfg.Tagline,
		Address:  cfg.Address,
		City:     cfg.City,
		Phone:    cfg.Phone,
		Email:    cfg.Email,
		Currency: cfg.Currency,
	}
}

// InvoiceDocument is the data bound to the invoice template
type InvoiceDocument struct {
	Studio  StudioInfo
	Invoice *invoicing.Invoice
}

// ReceiptDocument is the data bound to the receipt template
type ReceiptDocument struct {
	Studio  StudioInfo
	Receipt invoicing.ReceiptSnapshot
}

// AgreementDocument is the data bound to the agreement template
type AgreementDocument struct {
	Studio   StudioInfo
	Contract *contract.Contract
}

// Template names accepted by TemplateEngine.Render
const (
	TemplateInvoice   = "invoice"
	TemplateReceipt   = "receipt"
	TemplateAgreement = "agreement"
)

var defaultTemplates = map[string]string{
	TemplateInvoice: `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Invoice.InvoiceNumber}}</title>
<style>
body { font-family: Georgia, serif; color: #222; margin: 40px; }
h1 { letter-spacing: 2px; }
.meta { color: #666; font-size: 0.9em; }
table { width: 100%; border-collapse: collapse; margin-top: 24px; }
th, td { text-align: left; padding: 8px 4px; border-bottom: 1px solid #ddd; }
td.num, th.num { text-align: right; }
.totals { margin-top: 16px; width: 40%; margin-left: auto; }
.totals td { border: none; padding: 4px; }
.balance { font-weight: bold; border-top: 2px solid #222; }
.status { display: inline-block; padding: 2px 10px; border: 1px solid #222; }
</style>
</head>
<body>
<h1>{{upper .Studio.Name}}</h1>
<p class="meta">{{.Studio.Tagline}}<br>{{.Studio.Address}}{{if .Studio.City}}, {{.Studio.City}}{{end}}<br>{{.Studio.Phone}} &middot; {{.Studio.Email}}</p>

<h2>Invoice {{.Invoice.InvoiceNumber}}</h2>
<p class="meta">Issued {{formatDate .Invoice.InvoiceDate}} &middot; <span class="status">{{.Invoice.Status}}</span></p>

<p><strong>Billed to</strong><br>
{{.Invoice.ClientName}}<br>
{{if .Invoice.ClientAddress}}{{.Invoice.ClientAddress}}<br>{{end}}
{{if .Invoice.ClientCity}}{{.Invoice.ClientCity}}<br>{{end}}
{{if .Invoice.ClientPO}}PO: {{.Invoice.ClientPO}}<br>{{end}}
{{if .Invoice.ClientVAT}}VAT: {{.Invoice.ClientVAT}}{{end}}</p>

<table>
<tr><th>Description</th><th class="num">Rate</th><th class="num">Qty</th><th class="num">Amount</th></tr>
{{range .Invoice.Items}}
<tr><td>{{.Description}}</td><td class="num">{{formatMoney $.Studio.Currency .UnitRate}}</td><td class="num">{{.Quantity}}</td><td class="num">{{formatMoney $.Studio.Currency .Amount}}</td></tr>
{{end}}
</table>

<table class="totals">
<tr><td>Subtotal</td><td class="num">{{formatMoney .Studio.Currency .Invoice.Subtotal}}</td></tr>
<tr><td>Discount</td><td class="num">{{formatMoney .Studio.Currency .Invoice.Discount}}</td></tr>
<tr><td>Net sales</td><td class="num">{{formatMoney .Studio.Currency .Invoice.NetSales}}</td></tr>
<tr><td>Tax</td><td class="num">{{formatMoney .Studio.Currency .Invoice.Tax}}</td></tr>
<tr><td>Total</td><td class="num">{{formatMoney .Studio.Currency .Invoice.Total}}</td></tr>
<tr><td>Paid</td><td class="num">{{formatMoney .Studio.Currency .Invoice.Paid}}</td></tr>
<tr class="balance"><td>Balance due</td><td class="num">{{formatMoney .Studio.Currency .Invoice.Balance}}</td></tr>
</table>

{{if .Invoice.PaymentMethod}}<p class="meta">Payment: {{.Invoice.PaymentMethod}}{{if .Invoice.PaymentInstitution}} via {{.Invoice.PaymentInstitution}}{{end}}{{if .Invoice.PaymentAccountNumber}} &middot; {{.Invoice.PaymentAccountNumber}}{{end}}{{if .Invoice.PaymentBeneficiary}} &middot; {{.Invoice.PaymentBeneficiary}}{{end}}</p>{{end}}
{{if .Invoice.PaymentLink}}<p class="meta">Pay online: {{.Invoice.PaymentLink}}</p>{{end}}
</body>
</html>`,

	TemplateReceipt: `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Receipt {{.Receipt.InvoiceNumber}}</title>
<style>
body { font-family: Georgia, serif; color: #222; margin: 40px; }
h1 { letter-spacing: 2px; }
.meta { color: #666; font-size: 0.9em; }
table { width: 60%; border-collapse: collapse; margin-top: 24px; }
td { padding: 6px 4px; border-bottom: 1px solid #eee; }
td.num { text-align: right; }
.highlight { font-weight: bold; }
</style>
</head>
<body>
<h1>{{upper .Studio.Name}}</h1>
<p class="meta">{{.Studio.Address}}{{if .Studio.City}}, {{.Studio.City}}{{end}}<br>{{.Studio.Phone}} &middot; {{.Studio.Email}}</p>

<h2>Payment Receipt</h2>
<p class="meta">Invoice {{.Receipt.InvoiceNumber}} &middot; {{formatDate .Receipt.Date}}</p>
<p>Received from <strong>{{.Receipt.ClientName}}</strong></p>

<table>
<tr class="highlight"><td>Amount received</td><td class="num">{{formatMoney .Studio.Currency .Receipt.ReceiptAmount}}</td></tr>
<tr><td>Payment method</td><td class="num">{{default "-" .Receipt.Method}}</td></tr>
<tr><td>Total paid to date</td><td class="num">{{formatMoney .Studio.Currency .Receipt.TotalPaidToDate}}</td></tr>
<tr><td>Remaining balance</td><td class="num">{{formatMoney .Studio.Currency .Receipt.RemainingBalance}}</td></tr>
</table>

{{if .Receipt.Notes}}<p class="meta">Notes: {{.Receipt.Notes}}</p>{{end}}
<p class="meta">Thank you for your business.</p>
</body>
</html>`,

	TemplateAgreement: `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Contract.ContractNumber}}</title>
<style>
body { font-family: Georgia, serif; color: #222; margin: 40px; line-height: 1.5; }
h1 { letter-spacing: 2px; }
.meta { color: #666; font-size: 0.9em; }
.section { margin-top: 24px; }
.sign { margin-top: 60px; display: flex; justify-content: space-between; }
.sign div { width: 40%; border-top: 1px solid #222; padding-top: 6px; }
</style>
</head>
<body>
<h1>{{upper .Studio.Name}}</h1>
<p class="meta">{{.Studio.Address}}{{if .Studio.City}}, {{.Studio.City}}{{end}}</p>

<h2>Service Agreement {{.Contract.ContractNumber}}</h2>
<p class="meta">Status: {{.Contract.Status}}{{if .Contract.SignedAt}} &middot; Signed {{formatDate .Contract.SignedAt}}{{end}}</p>

<div class="section">
<p>This agreement is between <strong>{{.Studio.Name}}</strong> and <strong>{{.Contract.ClientName}}</strong>{{if .Contract.ClientAddress}} of {{.Contract.ClientAddress}}{{end}} for the project <strong>{{.Contract.ProjectTitle}}</strong>.</p>
{{if .Contract.ProjectDescription}}<p>{{.Contract.ProjectDescription}}</p>{{end}}
</div>

{{if .Contract.Deliverables}}<div class="section"><h3>Deliverables</h3><p>{{.Contract.Deliverables}}</p></div>{{end}}

{{if .Contract.LicenseType}}<div class="section"><h3>Usage License</h3><p>The deliverables are licensed for <strong>{{.Contract.LicenseType}}</strong> use.</p></div>{{end}}

<div class="section">
<h3>Fees</h3>
<p>Agreed fee: <strong>{{formatMoney .Studio.Currency .Contract.AgreedAmount}}</strong></p>
<p>Deposit ({{.Contract.DepositPercent}}%): {{formatMoney .Studio.Currency .Contract.DepositAmount}} due on signing.<br>
Balance: {{formatMoney .Studio.Currency .Contract.BalanceAmount}} due on completion.</p>
{{if not .Contract.StartDate.IsZero}}<p>Engagement period: {{formatDate .Contract.StartDate}} to {{formatDate .Contract.EndDate}}.</p>{{end}}
</div>

{{if .Contract.Terms}}<div class="section"><h3>Terms</h3><p>{{.Contract.Terms}}</p></div>{{end}}

<div class="sign">
<div>{{.Studio.Name}}</div>
<div>{{.Contract.ClientName}}</div>
</div>
</body>
</html>`,
}
