package contract

import (
	"context"

	"github.com/google/uuid"
)

// ContractRepository defines the interface for contract persistence,
// scoped by owner like every other store in the system.
type ContractRepository interface {
	// FindByIDForOwner finds a contract by ID for a specific owner
	FindByIDForOwner(ctx context.Context, ownerID string, id uuid.UUID) (*Contract, error)

	// FindAllForOwner returns the owner's contracts, most recently saved first
	FindAllForOwner(ctx context.Context, ownerID string) ([]Contract, error)

	// Save creates or updates a contract
	Save(ctx context.Context, contract *Contract) error

	// DeleteForOwner removes a contract entirely
	DeleteForOwner(ctx context.Context, ownerID string, id uuid.UUID) error
}
