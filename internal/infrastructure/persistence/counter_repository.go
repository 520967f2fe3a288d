package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/curio/backend/internal/domain/invoicing"
	"github.com/curio/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCounterRepository implements invoicing.CounterRepository using
// GORM. A missing row reads as 1, so new owners start numbering from
// 001 without any provisioning step.
type GormCounterRepository struct {
	db *gorm.DB
}

// NewGormCounterRepository creates a new GormCounterRepository
func NewGormCounterRepository(db *gorm.DB) *GormCounterRepository {
	return &GormCounterRepository{db: db}
}

// Get reads the owner's counter for the scope, defaulting to 1
func (r *GormCounterRepository) Get(ctx context.Context, ownerID string, scope invoicing.CounterScope) (int, error) {
	var model models.CounterModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND scope = ?", ownerID, string(scope)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 1, nil
		}
		return 0, err
	}
	return model.Value, nil
}

// Set stores the counter value for an owner, inserting the row on
// first use.
func (r *GormCounterRepository) Set(ctx context.Context, ownerID string, scope invoicing.CounterScope, value int) error {
	model := models.CounterModel{
		OwnerID:   ownerID,
		Scope:     string(scope),
		Value:     value,
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}, {Name: "scope"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&model).Error
}
