package models

import (
	"time"

	"github.com/curio/backend/internal/domain/contract"
	"github.com/shopspring/decimal"
)

// ContractModel is the persistence model for the Contract aggregate
type ContractModel struct {
	BaseModel
	// Contract numbers repeat across owners, same as invoice numbers
	OwnerID        string `gorm:"type:varchar(128);not null;uniqueIndex:idx_contract_owner_number,priority:1"`
	ContractNumber string `gorm:"type:varchar(50);not null;uniqueIndex:idx_contract_owner_number,priority:2"`

	ClientName    string `gorm:"type:varchar(200);not null;index"`
	ClientAddress string `gorm:"type:varchar(500)"`
	ClientEmail   string `gorm:"type:varchar(200)"`

	ProjectTitle       string `gorm:"type:varchar(300);not null"`
	ProjectDescription string `gorm:"type:text"`
	Deliverables       string `gorm:"type:text"`
	Terms              string `gorm:"type:text"`
	LicenseType        string `gorm:"type:varchar(100)"`

	AgreedAmount   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	DepositPercent decimal.Decimal `gorm:"type:decimal(5,2);not null"`

	StartDate time.Time
	EndDate   time.Time

	Status    contract.ContractStatus `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	SignedAt  *time.Time
	SavedDate time.Time `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (ContractModel) TableName() string {
	return "contracts"
}

// ToDomain converts the persistence model to a domain Contract
func (m *ContractModel) ToDomain() *contract.Contract {
	c := &contract.Contract{
		ContractNumber:     m.ContractNumber,
		ClientName:         m.ClientName,
		ClientAddress:      m.ClientAddress,
		ClientEmail:        m.ClientEmail,
		ProjectTitle:       m.ProjectTitle,
		ProjectDescription: m.ProjectDescription,
		Deliverables:       m.Deliverables,
		Terms:              m.Terms,
		LicenseType:        m.LicenseType,
		AgreedAmount:       m.AgreedAmount,
		DepositPercent:     m.DepositPercent,
		StartDate:          m.StartDate,
		EndDate:            m.EndDate,
		Status:             m.Status,
		SignedAt:           m.SignedAt,
		SavedDate:          m.SavedDate,
	}
	m.PopulateBaseEntity(&c.BaseEntity)
	c.OwnerID = m.OwnerID
	return c
}

// FromDomain populates the persistence model from a domain Contract
func (m *ContractModel) FromDomain(c *contract.Contract) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.OwnerID = c.OwnerID
	m.ContractNumber = c.ContractNumber
	m.ClientName = c.ClientName
	m.ClientAddress = c.ClientAddress
	m.ClientEmail = c.ClientEmail
	m.ProjectTitle = c.ProjectTitle
	m.ProjectDescription = c.ProjectDescription
	m.Deliverables = c.Deliverables
	m.Terms = c.Terms
	m.LicenseType = c.LicenseType
	m.AgreedAmount = c.AgreedAmount
	m.DepositPercent = c.DepositPercent
	m.StartDate = c.StartDate
	m.EndDate = c.EndDate
	m.Status = c.Status
	m.SignedAt = c.SignedAt
	m.SavedDate = c.SavedDate
}

// ContractModelFromDomain creates a new persistence model from a domain Contract
func ContractModelFromDomain(c *contract.Contract) *ContractModel {
	m := &ContractModel{}
	m.FromDomain(c)
	return m
}
