package contract

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/curio/backend/internal/domain/contract"
	"github.com/curio/backend/internal/domain/invoicing"
	"github.com/curio/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockContractRepository is a mock implementation of contract.ContractRepository
type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) FindByIDForOwner(ctx context.Context, ownerID string, id uuid.UUID) (*contract.Contract, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contract.Contract), args.Error(1)
}

func (m *MockContractRepository) FindAllForOwner(ctx context.Context, ownerID string) ([]contract.Contract, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]contract.Contract), args.Error(1)
}

func (m *MockContractRepository) Save(ctx context.Context, c *contract.Contract) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContractRepository) DeleteForOwner(ctx context.Context, ownerID string, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

// MockCounterRepository is a mock implementation of invoicing.CounterRepository
type MockCounterRepository struct {
	mock.Mock
}

func (m *MockCounterRepository) Get(ctx context.Context, ownerID string, scope invoicing.CounterScope) (int, error) {
	args := m.Called(ctx, ownerID, scope)
	return args.Int(0), args.Error(1)
}

func (m *MockCounterRepository) Set(ctx context.Context, ownerID string, scope invoicing.CounterScope, value int) error {
	args := m.Called(ctx, ownerID, scope, value)
	return args.Error(0)
}

func newService(contractRepo *MockContractRepository, counterRepo *MockCounterRepository) *ContractService {
	return NewContractService(contractRepo, counterRepo, zap.NewNop())
}

func createRequest() CreateContractRequest {
	return CreateContractRequest{
		OwnerID:        "owner-1",
		ClientName:     "Akosua Mensah",
		ProjectTitle:   "Wedding photography",
		AgreedAmount:   decimal.NewFromInt(5000),
		DepositPercent: decimal.NewFromInt(30),
		Terms:          "Deposit due on signing",
		StartDate:      time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestContractService_CreateContract(t *testing.T) {
	contractRepo := new(MockContractRepository)
	counterRepo := new(MockCounterRepository)

	counterRepo.On("Get", mock.Anything, "owner-1", invoicing.CounterScopeContract).Return(3, nil)
	contractRepo.On("Save", mock.Anything, mock.AnythingOfType("*contract.Contract")).Return(nil)
	counterRepo.On("Set", mock.Anything, "owner-1", invoicing.CounterScopeContract, 4).Return(nil)

	service := newService(contractRepo, counterRepo)
	c, err := service.CreateContract(context.Background(), createRequest())

	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("CTR-%d-003", time.Now().Year()), c.ContractNumber)
	assert.Equal(t, contract.StatusDraft, c.Status)
	assert.Equal(t, "Deposit due on signing", c.Terms)
	contractRepo.AssertExpectations(t)
	counterRepo.AssertExpectations(t)
}

func TestContractService_CreateContract_InvalidSkipsStore(t *testing.T) {
	contractRepo := new(MockContractRepository)
	counterRepo := new(MockCounterRepository)
	counterRepo.On("Get", mock.Anything, "owner-1", invoicing.CounterScopeContract).Return(1, nil)

	service := newService(contractRepo, counterRepo)
	req := createRequest()
	req.AgreedAmount = decimal.Zero

	_, err := service.CreateContract(context.Background(), req)

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_AMOUNT", domainErr.Code)
	contractRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	counterRepo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestContractService_TransitionContract(t *testing.T) {
	existing, err := contract.NewContract("owner-1", "CTR-2026-001", "Ama", "Shoot",
		decimal.NewFromInt(1000), decimal.NewFromInt(50))
	require.NoError(t, err)
	id := existing.ID

	contractRepo := new(MockContractRepository)
	counterRepo := new(MockCounterRepository)
	contractRepo.On("FindByIDForOwner", mock.Anything, "owner-1", id).Return(existing, nil)
	contractRepo.On("Save", mock.Anything, existing).Return(nil)

	service := newService(contractRepo, counterRepo)
	c, err := service.TransitionContract(context.Background(), "owner-1", id, contract.StatusSent)

	require.NoError(t, err)
	assert.Equal(t, contract.StatusSent, c.Status)
	contractRepo.AssertExpectations(t)
}

func TestContractService_TransitionContract_InvalidNotPersisted(t *testing.T) {
	existing, err := contract.NewContract("owner-1", "CTR-2026-001", "Ama", "Shoot",
		decimal.NewFromInt(1000), decimal.NewFromInt(50))
	require.NoError(t, err)
	id := existing.ID

	contractRepo := new(MockContractRepository)
	counterRepo := new(MockCounterRepository)
	contractRepo.On("FindByIDForOwner", mock.Anything, "owner-1", id).Return(existing, nil)

	service := newService(contractRepo, counterRepo)
	_, err = service.TransitionContract(context.Background(), "owner-1", id, contract.StatusCompleted)

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_TRANSITION", domainErr.Code)
	contractRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestContractService_DuplicateContract(t *testing.T) {
	existing, err := contract.NewContract("owner-1", "CTR-2026-001", "Ama", "Shoot",
		decimal.NewFromInt(1000), decimal.NewFromInt(50))
	require.NoError(t, err)
	require.NoError(t, existing.TransitionTo(contract.StatusSent))
	id := existing.ID

	contractRepo := new(MockContractRepository)
	counterRepo := new(MockCounterRepository)
	contractRepo.On("FindByIDForOwner", mock.Anything, "owner-1", id).Return(existing, nil)
	counterRepo.On("Get", mock.Anything, "owner-1", invoicing.CounterScopeContract).Return(2, nil)
	contractRepo.On("Save", mock.Anything, mock.AnythingOfType("*contract.Contract")).Return(nil)
	counterRepo.On("Set", mock.Anything, "owner-1", invoicing.CounterScopeContract, 3).Return(nil)

	service := newService(contractRepo, counterRepo)
	dup, err := service.DuplicateContract(context.Background(), "owner-1", id)

	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("CTR-%d-002", time.Now().Year()), dup.ContractNumber)
	assert.Equal(t, contract.StatusDraft, dup.Status)
	assert.NotEqual(t, existing.ID, dup.ID)
	contractRepo.AssertExpectations(t)
	counterRepo.AssertExpectations(t)
}

func TestContractService_GetStatistics(t *testing.T) {
	first, err := contract.NewContract("owner-1", "CTR-2026-001", "Ama", "Shoot",
		decimal.NewFromInt(1000), decimal.NewFromInt(50))
	require.NoError(t, err)
	second, err := contract.NewContract("owner-1", "CTR-2026-002", "Kofi", "Rebrand",
		decimal.NewFromInt(4000), decimal.NewFromInt(30))
	require.NoError(t, err)
	require.NoError(t, second.TransitionTo(contract.StatusSent))
	require.NoError(t, second.TransitionTo(contract.StatusSigned))

	contractRepo := new(MockContractRepository)
	counterRepo := new(MockCounterRepository)
	contractRepo.On("FindAllForOwner", mock.Anything, "owner-1").
		Return([]contract.Contract{*first, *second}, nil)

	service := newService(contractRepo, counterRepo)
	stats, err := service.GetStatistics(context.Background(), "owner-1")

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalContracts)
	assert.Equal(t, 1, stats.DraftCount)
	assert.Equal(t, 1, stats.SignedCount)
	assert.Equal(t, "4000", stats.SignedValue.String())
}

func TestContractService_GetContract_NotFound(t *testing.T) {
	contractRepo := new(MockContractRepository)
	counterRepo := new(MockCounterRepository)
	id := uuid.New()
	contractRepo.On("FindByIDForOwner", mock.Anything, "owner-1", id).Return(nil, nil)

	service := newService(contractRepo, counterRepo)
	_, err := service.GetContract(context.Background(), "owner-1", id)

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONTRACT_NOT_FOUND", domainErr.Code)
}
