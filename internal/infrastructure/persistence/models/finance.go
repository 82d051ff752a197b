package models

import (
	"time"

	"github.com/gadogest/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FinancialRecordModel is the persistence model for the FinancialRecord domain entity.
type FinancialRecordModel struct {
	BaseModel
	Type           finance.RecordType    `gorm:"type:varchar(10);not null;index"`
	Category       string                `gorm:"type:varchar(100);not null;index"`
	Description    string                `gorm:"type:varchar(200);not null"`
	Amount         decimal.Decimal       `gorm:"type:decimal(14,2);not null;default:0"`
	Date           time.Time             `gorm:"not null;index"`
	PaymentMethod  finance.PaymentMethod `gorm:"type:varchar(30);not null;default:'Dinheiro'"`
	Status         finance.RecordStatus  `gorm:"type:varchar(20);not null;default:'Pago';index"`
	AnimalID       *uuid.UUID            `gorm:"type:uuid"`
	FiscalDocument string                `gorm:"type:varchar(100)"`
	Attachment     string                `gorm:"type:varchar(255)"`
	Farm           string                `gorm:"type:varchar(100);not null;index"`
	Responsible    string                `gorm:"type:varchar(100);not null"`
	Notes          string                `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (FinancialRecordModel) TableName() string {
	return "financial_records"
}

// ToDomain converts the persistence model to a domain FinancialRecord entity.
func (m *FinancialRecordModel) ToDomain() *finance.FinancialRecord {
	return &finance.FinancialRecord{
		BaseEntity:     m.BaseModel.ToDomain(),
		Type:           m.Type,
		Category:       m.Category,
		Description:    m.Description,
		Amount:         m.Amount,
		Date:           m.Date,
		PaymentMethod:  m.PaymentMethod,
		Status:         m.Status,
		AnimalID:       m.AnimalID,
		FiscalDocument: m.FiscalDocument,
		Attachment:     m.Attachment,
		Farm:           m.Farm,
		Responsible:    m.Responsible,
		Notes:          m.Notes,
	}
}

// FromDomain populates the persistence model from a domain FinancialRecord entity.
func (m *FinancialRecordModel) FromDomain(r *finance.FinancialRecord) {
	m.FromDomainBaseEntity(r.BaseEntity)
	m.Type = r.Type
	m.Category = r.Category
	m.Description = r.Description
	m.Amount = r.Amount
	m.Date = r.Date
	m.PaymentMethod = r.PaymentMethod
	m.Status = r.Status
	m.AnimalID = r.AnimalID
	m.FiscalDocument = r.FiscalDocument
	m.Attachment = r.Attachment
	m.Farm = r.Farm
	m.Responsible = r.Responsible
	m.Notes = r.Notes
}

// FinancialRecordModelFromDomain creates a new persistence model from a domain FinancialRecord entity.
func FinancialRecordModelFromDomain(r *finance.FinancialRecord) *FinancialRecordModel {
	m := &FinancialRecordModel{}
	m.FromDomain(r)
	return m
}
