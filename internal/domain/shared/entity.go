package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uuid.UUID
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
}

// BaseEntity provides common fields for all entities
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uuid.UUID {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// GetUpdatedAt returns the last update timestamp
func (e *BaseEntity) GetUpdatedAt() time.Time {
	return e.UpdatedAt
}

// NewBaseEntity creates a new base entity with generated ID
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// OwnedEntity extends BaseEntity with the owning principal.
// The owner id comes from the identity provider and is treated as an
// opaque stable string; every query is scoped by it.
type OwnedEntity struct {
	BaseEntity
	OwnerID string `gorm:"not null;index"`
}

// NewOwnedEntity creates a new entity scoped to an owner
func NewOwnedEntity(ownerID string) OwnedEntity {
	return OwnedEntity{
		BaseEntity: NewBaseEntity(),
		OwnerID:    ownerID,
	}
}

// GetOwnerID returns the owning principal's identifier
func (e *OwnedEntity) GetOwnerID() string {
	return e.OwnerID
}
