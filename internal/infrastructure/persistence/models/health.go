package models

import (
	"time"

	"github.com/gadogest/backend/internal/domain/health"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HealthRecordModel is the persistence model for the HealthRecord domain entity.
type HealthRecordModel struct {
	BaseModel
	AnimalID        uuid.UUID           `gorm:"type:uuid;not null;index"`
	Type            health.RecordType   `gorm:"type:varchar(20);not null;index"`
	Date            time.Time           `gorm:"not null;index"`
	Product         string              `gorm:"type:varchar(200)"`
	Dosage          string              `gorm:"type:varchar(100)"`
	Applicator      string              `gorm:"type:varchar(100);not null"`
	Veterinarian    string              `gorm:"type:varchar(100)"`
	Status          health.RecordStatus `gorm:"type:varchar(20);not null;default:'Realizado';index"`
	NextApplication *time.Time
	Cost            *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Notes           string           `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (HealthRecordModel) TableName() string {
	return "health_records"
}

// ToDomain converts the persistence model to a domain HealthRecord entity.
func (m *HealthRecordModel) ToDomain() *health.HealthRecord {
	return &health.HealthRecord{
		BaseEntity:      m.BaseModel.ToDomain(),
		AnimalID:        m.AnimalID,
		Type:            m.Type,
		Date:            m.Date,
		Product:         m.Product,
		Dosage:          m.Dosage,
		Applicator:      m.Applicator,
		Veterinarian:    m.Veterinarian,
		Status:          m.Status,
		NextApplication: m.NextApplication,
		Cost:            m.Cost,
		Notes:           m.Notes,
	}
}

// FromDomain populates the persistence model from a domain HealthRecord entity.
func (m *HealthRecordModel) FromDomain(r *health.HealthRecord) {
	m.FromDomainBaseEntity(r.BaseEntity)
	m.AnimalID = r.AnimalID
	m.Type = r.Type
	m.Date = r.Date
	m.Product = r.Product
	m.Dosage = r.Dosage
	m.Applicator = r.Applicator
	m.Veterinarian = r.Veterinarian
	m.Status = r.Status
	m.NextApplication = r.NextApplication
	m.Cost = r.Cost
	m.Notes = r.Notes
}

// HealthRecordModelFromDomain creates a new persistence model from a domain HealthRecord entity.
func HealthRecordModelFromDomain(r *health.HealthRecord) *HealthRecordModel {
	m := &HealthRecordModel{}
	m.FromDomain(r)
	return m
}
