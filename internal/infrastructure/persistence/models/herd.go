package models

import (
	"time"

	"github.com/gadogest/backend/internal/domain/herd"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AnimalModel is the persistence model for the Animal domain entity.
type AnimalModel struct {
	BaseModel
	Identification string            `gorm:"type:varchar(20);not null;uniqueIndex"`
	Type           herd.AnimalType   `gorm:"type:varchar(20);not null;index"`
	Breed          string            `gorm:"type:varchar(100);not null"`
	BirthDate      time.Time         `gorm:"not null"`
	Sex            herd.Sex          `gorm:"type:varchar(10);not null;default:'Macho'"`
	Weight         decimal.Decimal   `gorm:"type:decimal(10,2);not null;default:0"`
	Height         *decimal.Decimal  `gorm:"type:decimal(10,2)"`
	Status         herd.AnimalStatus `gorm:"type:varchar(20);not null;default:'Saudável';index"`
	MotherID       *uuid.UUID        `gorm:"type:uuid"`
	FatherID       *uuid.UUID        `gorm:"type:uuid"`
	Farm           string            `gorm:"type:varchar(100)"`
	Notes          string            `gorm:"type:text"`
	Active         bool              `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (AnimalModel) TableName() string {
	return "animals"
}

// ToDomain converts the persistence model to a domain Animal entity.
func (m *AnimalModel) ToDomain() *herd.Animal {
	return &herd.Animal{
		BaseEntity:     m.BaseModel.ToDomain(),
		Identification: m.Identification,
		Type:           m.Type,
		Breed:          m.Breed,
		BirthDate:      m.BirthDate,
		Sex:            m.Sex,
		Weight:         m.Weight,
		Height:         m.Height,
		Status:         m.Status,
		MotherID:       m.MotherID,
		FatherID:       m.FatherID,
		Farm:           m.Farm,
		Notes:          m.Notes,
		Active:         m.Active,
	}
}

// FromDomain populates the persistence model from a domain Animal entity.
func (m *AnimalModel) FromDomain(a *herd.Animal) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.Identification = a.Identification
	m.Type = a.Type
	m.Breed = a.Breed
	m.BirthDate = a.BirthDate
	m.Sex = a.Sex
	m.Weight = a.Weight
	m.Height = a.Height
	m.Status = a.Status
	m.MotherID = a.MotherID
	m.FatherID = a.FatherID
	m.Farm = a.Farm
	m.Notes = a.Notes
	m.Active = a.Active
}

// AnimalModelFromDomain creates a new persistence model from a domain Animal entity.
func AnimalModelFromDomain(a *herd.Animal) *AnimalModel {
	m := &AnimalModel{}
	m.FromDomain(a)
	return m
}
