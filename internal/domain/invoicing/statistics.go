package invoicing

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ClientRevenue is one row of the top-clients breakdown
type ClientRevenue struct {
	ClientName   string
	InvoiceCount int
	Total        decimal.Decimal
}

// Statistics is the dashboard snapshot folded from an owner's full
// invoice collection. It is recomputed on every call; there is no
// incremental aggregation state to go stale.
type Statistics struct {
	TotalRevenue     decimal.Decimal
	TotalPaid        decimal.Decimal
	TotalOutstanding decimal.Decimal

	TotalInvoices  int
	PaidInvoices   int
	UnpaidInvoices int

	MonthInvoices int
	MonthRevenue  decimal.Decimal

	TopClients []ClientRevenue
}

// topClientLimit caps the top-clients breakdown
const topClientLimit = 5

// ComputeStatistics folds the invoice collection into dashboard
// metrics. A PAID invoice counts its full total as paid regardless of
// the literal paid field (consistent with the forced-PAID save
// behavior), and contributes nothing to outstanding. The input slice
// is never modified.
func ComputeStatistics(invoices []Invoice, now time.Time) Statistics {
	stats := Statistics{
		TotalRevenue:     decimal.Zero,
		TotalPaid:        decimal.Zero,
		TotalOutstanding: decimal.Zero,
		MonthRevenue:     decimal.Zero,
		TopClients:       []ClientRevenue{},
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	byClient := make(map[string]*ClientRevenue)

	for i := range invoices {
		inv := &invoices[i]
		stats.TotalInvoices++
		stats.TotalRevenue = stats.TotalRevenue.Add(inv.Total)

		if inv.Status == StatusPaid {
			stats.PaidInvoices++
			stats.TotalPaid = stats.TotalPaid.Add(inv.Total)
		} else {
			stats.UnpaidInvoices++
			stats.TotalPaid = stats.TotalPaid.Add(inv.Paid)
			stats.TotalOutstanding = stats.TotalOutstanding.Add(inv.Balance)
		}

		if !inv.InvoiceDate.Before(monthStart) {
			stats.MonthInvoices++
			stats.MonthRevenue = stats.MonthRevenue.Add(inv.Total)
		}

		name := strings.TrimSpace(inv.ClientName)
		if name == "" {
			continue
		}
		entry, ok := byClient[name]
		if !ok {
			entry = &ClientRevenue{ClientName: name, Total: decimal.Zero}
			byClient[name] = entry
		}
		entry.InvoiceCount++
		entry.Total = entry.Total.Add(inv.Total)
	}

	clients := make([]ClientRevenue, 0, len(byClient))
	for _, entry := range byClient {
		clients = append(clients, *entry)
	}
	sort.Slice(clients, func(i, j int) bool {
		if !clients[i].Total.Equal(clients[j].Total) {
			return clients[i].Total.GreaterThan(clients[j].Total)
		}
		return clients[i].ClientName < clients[j].ClientName
	})
	if len(clients) > topClientLimit {
		clients = clients[:topClientLimit]
	}
	stats.TopClients = clients

	return stats
}
