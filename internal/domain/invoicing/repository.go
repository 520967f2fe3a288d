package invoicing

import (
	"context"

	"github.com/google/uuid"
)

// CounterScope names the per-owner counter being allocated from
type CounterScope string

const (
	CounterScopeInvoice  CounterScope = "invoice"
	CounterScopeContract CounterScope = "contract"
)

// InvoiceRepository defines the interface for invoice persistence.
// Every operation is scoped by the owner id so one principal can never
// see or touch another's records.
type InvoiceRepository interface {
	// FindByIDForOwner finds an invoice by ID for a specific owner
	FindByIDForOwner(ctx context.Context, ownerID string, id uuid.UUID) (*Invoice, error)

	// FindAllForOwner returns the owner's invoices, most recently saved first
	FindAllForOwner(ctx context.Context, ownerID string) ([]Invoice, error)

	// Save creates or updates an invoice
	Save(ctx context.Context, invoice *Invoice) error

	// DeleteForOwner removes an invoice entirely; irreversible
	DeleteForOwner(ctx context.Context, ownerID string, id uuid.UUID) error

	// CountForOwner counts the owner's invoices
	CountForOwner(ctx context.Context, ownerID string) (int64, error)
}

// CounterRepository defines the per-owner sequential counter used for
// document numbering. Get returns 1 for an owner with no counter yet.
type CounterRepository interface {
	// Get reads the current counter value without mutating it
	Get(ctx context.Context, ownerID string, scope CounterScope) (int, error)

	// Set stores the counter value for an owner
	Set(ctx context.Context, ownerID string, scope CounterScope, value int) error
}
