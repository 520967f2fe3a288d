package dto

import (
	"time"

	"github.com/curio/backend/internal/domain/contract"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateContractRequest is the payload for creating a draft contract
type CreateContractRequest struct {
	ClientName    string `json:"client_name" binding:"required"`
	ClientAddress string `json:"client_address"`
	ClientEmail   string `json:"client_email" binding:"omitempty,email"`

	ProjectTitle       string `json:"project_title" binding:"required"`
	ProjectDescription string `json:"project_description"`
	Deliverables       string `json:"deliverables"`
	Terms              string `json:"terms"`
	LicenseType        string `json:"license_type"`

	AgreedAmount   decimal.Decimal `json:"agreed_amount" binding:"required,dgt0"`
	DepositPercent decimal.Decimal `json:"deposit_percent" binding:"dgte0"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// UpdateContractRequest is the payload for editing a draft contract
type UpdateContractRequest struct {
	ClientName         string          `json:"client_name" binding:"required"`
	ProjectTitle       string          `json:"project_title" binding:"required"`
	ProjectDescription string          `json:"project_description"`
	Deliverables       string          `json:"deliverables"`
	Terms              string          `json:"terms"`
	LicenseType        string          `json:"license_type"`
	AgreedAmount       decimal.Decimal `json:"agreed_amount" binding:"required,dgt0"`
	DepositPercent     decimal.Decimal `json:"deposit_percent" binding:"dgte0"`
	StartDate          time.Time       `json:"start_date"`
	EndDate            time.Time       `json:"end_date"`
}

// TransitionContractRequest moves a contract to a new lifecycle state
type TransitionContractRequest struct {
	Status string `json:"status" binding:"required,oneof=DRAFT SENT SIGNED ACTIVE COMPLETED CANCELLED"`
}

// ContractResponse is the full contract representation
type ContractResponse struct {
	ID             uuid.UUID `json:"id"`
	ContractNumber string    `json:"contract_number"`

	ClientName    string `json:"client_name"`
	ClientAddress string `json:"client_address,omitempty"`
	ClientEmail   string `json:"client_email,omitempty"`

	ProjectTitle       string `json:"project_title"`
	ProjectDescription string `json:"project_description,omitempty"`
	Deliverables       string `json:"deliverables,omitempty"`
	Terms              string `json:"terms,omitempty"`
	LicenseType        string `json:"license_type,omitempty"`

	AgreedAmount   decimal.Decimal `json:"agreed_amount"`
	DepositPercent decimal.Decimal `json:"deposit_percent"`
	DepositAmount  decimal.Decimal `json:"deposit_amount"`
	BalanceAmount  decimal.Decimal `json:"balance_amount"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	Status    string     `json:"status"`
	SignedAt  *time.Time `json:"signed_at,omitempty"`
	SavedDate time.Time  `json:"saved_date"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ContractResponseFromDomain converts a domain contract to its response
func ContractResponseFromDomain(c *contract.Contract) ContractResponse {
	return ContractResponse{
		ID:                 c.ID,
		ContractNumber:     c.ContractNumber,
		ClientName:         c.ClientName,
		ClientAddress:      c.ClientAddress,
		ClientEmail:        c.ClientEmail,
		ProjectTitle:       c.ProjectTitle,
		ProjectDescription: c.ProjectDescription,
		Deliverables:       c.Deliverables,
		Terms:              c.Terms,
		LicenseType:        c.LicenseType,
		AgreedAmount:       c.AgreedAmount,
		DepositPercent:     c.DepositPercent,
		DepositAmount:      c.DepositAmount(),
		BalanceAmount:      c.BalanceAmount(),
		StartDate:          c.StartDate,
		EndDate:            c.EndDate,
		Status:             c.Status.String(),
		SignedAt:           c.SignedAt,
		SavedDate:          c.SavedDate,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

// ContractListResponse is the list view of contracts
type ContractListResponse struct {
	Contracts []ContractResponse `json:"contracts"`
	Count     int                `json:"count"`
}

// ContractStatisticsResponse is the contract dashboard snapshot
type ContractStatisticsResponse struct {
	TotalContracts int             `json:"total_contracts"`
	DraftCount     int             `json:"draft_count"`
	SentCount      int             `json:"sent_count"`
	SignedCount    int             `json:"signed_count"`
	ActiveCount    int             `json:"active_count"`
	CompletedCount int             `json:"completed_count"`
	CancelledCount int             `json:"cancelled_count"`
	SignedValue    decimal.Decimal `json:"signed_value"`
}

// ContractStatisticsResponseFromDomain converts domain contract
// statistics to its response
func ContractStatisticsResponseFromDomain(stats *contract.Statistics) ContractStatisticsResponse {
	return ContractStatisticsResponse{
		TotalContracts: stats.TotalContracts,
		DraftCount:     stats.DraftCount,
		SentCount:      stats.SentCount,
		SignedCount:    stats.SignedCount,
		ActiveCount:    stats.ActiveCount,
		CompletedCount: stats.CompletedCount,
		CancelledCount: stats.CancelledCount,
		SignedValue:    stats.SignedValue,
	}
}
