package contract

import (
	"context"
	"fmt"
	"time"

	"github.com/curio/backend/internal/domain/contract"
	"github.com/curio/backend/internal/domain/invoicing"
	"github.com/curio/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ContractService coordinates the contract lifecycle. Contract numbers
// come from the same per-owner counter store as invoice numbers, under
// their own scope.
type ContractService struct {
	contractRepo contract.ContractRepository
	counterRepo  invoicing.CounterRepository
	logger       *zap.Logger
}

// NewContractService creates a new ContractService
func NewContractService(
	contractRepo contract.ContractRepository,
	counterRepo invoicing.CounterRepository,
	logger *zap.Logger,
) *ContractService {
	return &ContractService{
		contractRepo: contractRepo,
		counterRepo:  counterRepo,
		logger:       logger,
	}
}

// CreateContractRequest carries the fields of a new draft contract
type CreateContractRequest struct {
	OwnerID            string
	ClientName         string
	ClientAddress      string
	ClientEmail        string
	ProjectTitle       string
	ProjectDescription string
	Deliverables       string
	Terms              string
	LicenseType        string
	AgreedAmount       decimal.Decimal
	DepositPercent     decimal.Decimal
	StartDate          time.Time
	EndDate            time.Time
}

// CreateContract allocates the owner's next contract number and
// persists a new draft contract.
func (s *ContractService) CreateContract(ctx context.Context, req CreateContractRequest) (*contract.Contract, error) {
	counter, err := s.counterRepo.Get(ctx, req.OwnerID, invoicing.CounterScopeContract)
	if err != nil {
		s.logger.Error("Failed to read contract counter", zap.Error(err))
		return nil, fmt.Errorf("failed to read contract counter: %w", err)
	}

	number := contract.FormatContractNumber(time.Now().Year(), counter)
	c, err := contract.NewContract(req.OwnerID, number, req.ClientName, req.ProjectTitle, req.AgreedAmount, req.DepositPercent)
	if err != nil {
		return nil, err
	}
	c.ClientAddress = req.ClientAddress
	c.ClientEmail = req.ClientEmail
	c.ProjectDescription = req.ProjectDescription
	c.Deliverables = req.Deliverables
	c.Terms = req.Terms
	c.LicenseType = req.LicenseType
	c.StartDate = req.StartDate
	c.EndDate = req.EndDate

	if err := s.contractRepo.Save(ctx, c); err != nil {
		s.logger.Error("Failed to save contract", zap.Error(err))
		return nil, fmt.Errorf("failed to save contract: %w", err)
	}

	if err := s.counterRepo.Set(ctx, req.OwnerID, invoicing.CounterScopeContract, counter+1); err != nil {
		s.logger.Error("Failed to advance contract counter",
			zap.String("contract_number", number), zap.Error(err))
		return nil, fmt.Errorf("failed to advance contract counter: %w", err)
	}

	s.logger.Info("Contract created",
		zap.String("contract_number", number),
		zap.String("contract_id", c.ID.String()))
	return c, nil
}

// UpdateContractRequest carries an edit to a draft contract
type UpdateContractRequest struct {
	OwnerID            string
	ContractID         uuid.UUID
	ClientName         string
	ProjectTitle       string
	ProjectDescription string
	Deliverables       string
	Terms              string
	LicenseType        string
	AgreedAmount       decimal.Decimal
	DepositPercent     decimal.Decimal
	StartDate          time.Time
	EndDate            time.Time
}

// UpdateContract edits a draft contract in place
func (s *ContractService) UpdateContract(ctx context.Context, req UpdateContractRequest) (*contract.Contract, error) {
	c, err := s.loadContract(ctx, req.OwnerID, req.ContractID)
	if err != nil {
		return nil, err
	}

	if err := c.UpdateDetails(contract.Details{
		ClientName:         req.ClientName,
		ProjectTitle:       req.ProjectTitle,
		ProjectDescription: req.ProjectDescription,
		Deliverables:       req.Deliverables,
		Terms:              req.Terms,
		LicenseType:        req.LicenseType,
		AgreedAmount:       req.AgreedAmount,
		DepositPercent:     req.DepositPercent,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
	}); err != nil {
		return nil, err
	}

	if err := s.contractRepo.Save(ctx, c); err != nil {
		s.logger.Error("Failed to save contract", zap.Error(err))
		return nil, fmt.Errorf("failed to save contract: %w", err)
	}

	s.logger.Info("Contract updated", zap.String("contract_number", c.ContractNumber))
	return c, nil
}

// TransitionContract moves a contract to the target lifecycle state
func (s *ContractService) TransitionContract(ctx context.Context, ownerID string, id uuid.UUID, target contract.ContractStatus) (*contract.Contract, error) {
	c, err := s.loadContract(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := c.TransitionTo(target); err != nil {
		return nil, err
	}

	if err := s.contractRepo.Save(ctx, c); err != nil {
		s.logger.Error("Failed to save contract", zap.Error(err))
		return nil, fmt.Errorf("failed to save contract: %w", err)
	}

	s.logger.Info("Contract transitioned",
		zap.String("contract_number", c.ContractNumber),
		zap.String("status", c.Status.String()))
	return c, nil
}

// DuplicateContract copies an existing contract into a new draft under
// a freshly allocated number.
func (s *ContractService) DuplicateContract(ctx context.Context, ownerID string, id uuid.UUID) (*contract.Contract, error) {
	source, err := s.loadContract(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	counter, err := s.counterRepo.Get(ctx, ownerID, invoicing.CounterScopeContract)
	if err != nil {
		s.logger.Error("Failed to read contract counter", zap.Error(err))
		return nil, fmt.Errorf("failed to read contract counter: %w", err)
	}

	number := contract.FormatContractNumber(time.Now().Year(), counter)
	dup, err := source.Duplicate(number)
	if err != nil {
		return nil, err
	}

	if err := s.contractRepo.Save(ctx, dup); err != nil {
		s.logger.Error("Failed to save contract", zap.Error(err))
		return nil, fmt.Errorf("failed to save contract: %w", err)
	}

	if err := s.counterRepo.Set(ctx, ownerID, invoicing.CounterScopeContract, counter+1); err != nil {
		s.logger.Error("Failed to advance contract counter",
			zap.String("contract_number", number), zap.Error(err))
		return nil, fmt.Errorf("failed to advance contract counter: %w", err)
	}

	s.logger.Info("Contract duplicated",
		zap.String("source_number", source.ContractNumber),
		zap.String("contract_number", number))
	return dup, nil
}

// GetContract returns one contract owned by the caller
func (s *ContractService) GetContract(ctx context.Context, ownerID string, id uuid.UUID) (*contract.Contract, error) {
	return s.loadContract(ctx, ownerID, id)
}

// ListContracts returns the owner's contracts, most recently saved first
func (s *ContractService) ListContracts(ctx context.Context, ownerID string) ([]contract.Contract, error) {
	contracts, err := s.contractRepo.FindAllForOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("Failed to list contracts", zap.Error(err))
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	return contracts, nil
}

// GetStatistics folds the owner's contracts into the dashboard snapshot
func (s *ContractService) GetStatistics(ctx context.Context, ownerID string) (*contract.Statistics, error) {
	contracts, err := s.contractRepo.FindAllForOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("Failed to list contracts", zap.Error(err))
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	stats := contract.ComputeStatistics(contracts)
	return &stats, nil
}

// DeleteContract removes a contract permanently
func (s *ContractService) DeleteContract(ctx context.Context, ownerID string, id uuid.UUID) error {
	c, err := s.loadContract(ctx, ownerID, id)
	if err != nil {
		return err
	}

	if err := s.contractRepo.DeleteForOwner(ctx, ownerID, id); err != nil {
		s.logger.Error("Failed to delete contract", zap.Error(err))
		return fmt.Errorf("failed to delete contract: %w", err)
	}

	s.logger.Info("Contract deleted", zap.String("contract_number", c.ContractNumber))
	return nil
}

func (s *ContractService) loadContract(ctx context.Context, ownerID string, id uuid.UUID) (*contract.Contract, error) {
	c, err := s.contractRepo.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		s.logger.Error("Failed to find contract", zap.Error(err))
		return nil, fmt.Errorf("failed to find contract: %w", err)
	}
	if c == nil {
		return nil, shared.NewDomainError("CONTRACT_NOT_FOUND", "Contract not found")
	}
	return c, nil
}
