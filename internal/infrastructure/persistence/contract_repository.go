package persistence

import (
	"context"
	"errors"

	"github.com/curio/backend/internal/domain/contract"
	"github.com/curio/backend/internal/domain/shared"
	"github.com/curio/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormContractRepository implements contract.ContractRepository using GORM
type GormContractRepository struct {
	db *gorm.DB
}

// NewGormContractRepository creates a new GormContractRepository
func NewGormContractRepository(db *gorm.DB) *GormContractRepository {
	return &GormContractRepository{db: db}
}

// FindByIDForOwner finds a contract by ID for a specific owner
func (r *GormContractRepository) FindByIDForOwner(ctx context.Context, ownerID string, id uuid.UUID) (*contract.Contract, error) {
	var model models.ContractModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForOwner returns the owner's contracts, most recently saved first
func (r *GormContractRepository) FindAllForOwner(ctx context.Context, ownerID string) ([]contract.Contract, error) {
	var contractModels []models.ContractModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("saved_date DESC").
		Find(&contractModels).Error; err != nil {
		return nil, err
	}
	contracts := make([]contract.Contract, len(contractModels))
	for i, model := range contractModels {
		contracts[i] = *model.ToDomain()
	}
	return contracts, nil
}

// Save creates or updates a contract
func (r *GormContractRepository) Save(ctx context.Context, c *contract.Contract) error {
	model := models.ContractModelFromDomain(c)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(model).Error
}

// DeleteForOwner removes a contract entirely
func (r *GormContractRepository) DeleteForOwner(ctx context.Context, ownerID string, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Delete(&models.ContractModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
