package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/curio/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ContractStatus represents the lifecycle state of a client agreement
type ContractStatus string

const (
	StatusDraft     ContractStatus = "DRAFT"     // Being written, not yet shared
	StatusSent      ContractStatus = "SENT"      // Delivered to the client
	StatusSigned    ContractStatus = "SIGNED"    // Client has signed
	StatusActive    ContractStatus = "ACTIVE"    // Work underway
	StatusCompleted ContractStatus = "COMPLETED" // Work delivered, terminal
	StatusCancelled ContractStatus = "CANCELLED" // Abandoned, terminal
)

// IsValid checks if the status is a valid ContractStatus
func (s ContractStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusSigned, StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed
func (s ContractStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo checks whether the move to target is allowed. The
// lifecycle is strictly linear; the only branch is cancellation, which
// is allowed from any non-terminal state.
func (s ContractStatus) CanTransitionTo(target ContractStatus) bool {
	if !target.IsValid() || s.IsTerminal() {
		return false
	}
	if target == StatusCancelled {
		return true
	}
	switch s {
	case StatusDraft:
		return target == StatusSent
	case StatusSent:
		return target == StatusSigned
	case StatusSigned:
		return target == StatusActive
	case StatusActive:
		return target == StatusCompleted
	}
	return false
}

// String returns the string representation of ContractStatus
func (s ContractStatus) String() string {
	return string(s)
}

// Contract is a client service agreement with an agreed fee split into
// a deposit and a completion balance. Like invoices, contracts carry a
// sequential per-owner number assigned at creation.
type Contract struct {
	shared.OwnedEntity
	ContractNumber string

	ClientName    string
	ClientAddress string
	ClientEmail   string

	ProjectTitle       string
	ProjectDescription string
	Deliverables       string
	Terms              string
	LicenseType        string

	AgreedAmount   decimal.Decimal
	DepositPercent decimal.Decimal

	StartDate time.Time
	EndDate   time.Time

	Status    ContractStatus
	SignedAt  *time.Time
	SavedDate time.Time
}

// NewContract creates a draft contract. The deposit percent must lie in
// [0, 100]; the agreed amount must be positive.
func NewContract(ownerID, contractNumber, clientName, projectTitle string, agreedAmount, depositPercent decimal.Decimal) (*Contract, error) {
	if ownerID == "" {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	if contractNumber == "" {
		return nil, shared.NewDomainError("INVALID_CONTRACT_NUMBER", "Contract number cannot be empty")
	}
	if strings.TrimSpace(clientName) == "" {
		return nil, shared.NewDomainError("CLIENT_NAME_REQUIRED", "Client name is required")
	}
	if strings.TrimSpace(projectTitle) == "" {
		return nil, shared.NewDomainError("PROJECT_TITLE_REQUIRED", "Project title is required")
	}
	if !agreedAmount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Agreed amount must be greater than zero")
	}
	if depositPercent.IsNegative() || depositPercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_DEPOSIT_PERCENT", "Deposit percent must be between 0 and 100")
	}

	now := time.Now()
	return &Contract{
		OwnedEntity:    shared.NewOwnedEntity(ownerID),
		ContractNumber: contractNumber,
		ClientName:     strings.TrimSpace(clientName),
		ProjectTitle:   strings.TrimSpace(projectTitle),
		AgreedAmount:   agreedAmount,
		DepositPercent: depositPercent,
		Status:         StatusDraft,
		SavedDate:      now,
	}, nil
}

// DepositAmount is the up-front portion of the agreed fee
func (c *Contract) DepositAmount() decimal.Decimal {
	return c.AgreedAmount.Mul(c.DepositPercent).Div(decimal.NewFromInt(100)).Round(2)
}

// BalanceAmount is the remainder due on completion
func (c *Contract) BalanceAmount() decimal.Decimal {
	return c.AgreedAmount.Sub(c.DepositAmount())
}

// TransitionTo moves the contract to the target status. Signing stamps
// the signed-at time.
func (c *Contract) TransitionTo(target ContractStatus) error {
	if !c.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_TRANSITION",
			fmt.Sprintf("Cannot move contract from %s to %s", c.Status, target))
	}
	if target == StatusSigned {
		now := time.Now()
		c.SignedAt = &now
	}
	c.Status = target
	c.UpdatedAt = time.Now()
	return nil
}

// Details are the fields an operator may edit while a contract is a
// draft.
type Details struct {
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

// UpdateDetails overwrites the editable fields. Only draft contracts
// may be edited; once sent, the text is what the client saw.
func (c *Contract) UpdateDetails(d Details) error {
	if c.Status != StatusDraft {
		return shared.NewDomainError("NOT_EDITABLE", "Only draft contracts can be edited")
	}
	if strings.TrimSpace(d.ClientName) == "" {
		return shared.NewDomainError("CLIENT_NAME_REQUIRED", "Client name is required")
	}
	if strings.TrimSpace(d.ProjectTitle) == "" {
		return shared.NewDomainError("PROJECT_TITLE_REQUIRED", "Project title is required")
	}
	if !d.AgreedAmount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Agreed amount must be greater than zero")
	}
	if d.DepositPercent.IsNegative() || d.DepositPercent.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_DEPOSIT_PERCENT", "Deposit percent must be between 0 and 100")
	}

	c.ClientName = strings.TrimSpace(d.ClientName)
	c.ProjectTitle = strings.TrimSpace(d.ProjectTitle)
	c.ProjectDescription = d.ProjectDescription
	c.Deliverables = d.Deliverables
	c.Terms = d.Terms
	c.LicenseType = d.LicenseType
	c.AgreedAmount = d.AgreedAmount
	c.DepositPercent = d.DepositPercent
	c.StartDate = d.StartDate
	c.EndDate = d.EndDate
	c.SavedDate = time.Now()
	c.UpdatedAt = c.SavedDate
	return nil
}

// Duplicate returns a fresh draft copy under a newly allocated number.
// Status, signature and timestamps reset; the commercial terms carry
// over so a repeat engagement starts from the previous wording.
func (c *Contract) Duplicate(contractNumber string) (*Contract, error) {
	if contractNumber == "" {
		return nil, shared.NewDomainError("INVALID_CONTRACT_NUMBER", "Contract number cannot be empty")
	}
	dup, err := NewContract(c.OwnerID, contractNumber, c.ClientName, c.ProjectTitle, c.AgreedAmount, c.DepositPercent)
	if err != nil {
		return nil, err
	}
	dup.ClientAddress = c.ClientAddress
	dup.ClientEmail = c.ClientEmail
	dup.ProjectDescription = c.ProjectDescription
	dup.Deliverables = c.Deliverables
	dup.Terms = c.Terms
	dup.LicenseType = c.LicenseType
	dup.StartDate = c.StartDate
	dup.EndDate = c.EndDate
	return dup, nil
}

// FormatContractNumber builds the human-facing contract number from the
// issue year and the owner's counter, e.g. CTR-2026-012.
func FormatContractNumber(year, counter int) string {
	return fmt.Sprintf("CTR-%d-%03d", year, counter)
}
