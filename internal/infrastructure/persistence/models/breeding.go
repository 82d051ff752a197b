package models

import (
	"encoding/json"
	"time"

	"github.com/gadogest/backend/internal/domain/breeding"
	"github.com/google/uuid"
)

// ReproductionEventModel is the persistence model for the ReproductionEvent domain entity.
type ReproductionEventModel struct {
	BaseModel
	Type         breeding.EventType `gorm:"type:varchar(20);not null;index"`
	EventDate    time.Time          `gorm:"not null;index"`
	ExpectedDate *time.Time
	FemaleID     uuid.UUID            `gorm:"type:uuid;not null;index"`
	MaleID       *uuid.UUID           `gorm:"type:uuid"`
	Method       string               `gorm:"type:varchar(50)"`
	Responsible  string               `gorm:"type:varchar(100);not null"`
	Status       breeding.EventStatus `gorm:"type:varchar(20);not null;index"`
	CalfCount    int                  `gorm:"not null;default:0"`
	CalfTags     string               `gorm:"type:text"`
	Notes        string               `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ReproductionEventModel) TableName() string {
	return "reproduction_events"
}

// ToDomain converts the persistence model to a domain ReproductionEvent entity.
func (m *ReproductionEventModel) ToDomain() *breeding.ReproductionEvent {
	var tags []string
	if m.CalfTags != "" {
		_ = json.Unmarshal([]byte(m.CalfTags), &tags)
	}
	return &breeding.ReproductionEvent{
		BaseEntity:   m.BaseModel.ToDomain(),
		Type:         m.Type,
		EventDate:    m.EventDate,
		ExpectedDate: m.ExpectedDate,
		FemaleID:     m.FemaleID,
		MaleID:       m.MaleID,
		Method:       m.Method,
		Responsible:  m.Responsible,
		Status:       m.Status,
		CalfCount:    m.CalfCount,
		CalfTags:     tags,
		Notes:        m.Notes,
	}
}

// FromDomain populates the persistence model from a domain ReproductionEvent entity.
func (m *ReproductionEventModel) FromDomain(e *breeding.ReproductionEvent) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.Type = e.Type
	m.EventDate = e.EventDate
	m.ExpectedDate = e.ExpectedDate
	m.FemaleID = e.FemaleID
	m.MaleID = e.MaleID
	m.Method = e.Method
	m.Responsible = e.Responsible
	m.Status = e.Status
	m.CalfCount = e.CalfCount
	m.CalfTags = ""
	if len(e.CalfTags) > 0 {
		if raw, err := json.Marshal(e.CalfTags); err == nil {
			m.CalfTags = string(raw)
		}
	}
	m.Notes = e.Notes
}

// ReproductionEventModelFromDomain creates a new persistence model from a domain ReproductionEvent entity.
func ReproductionEventModelFromDomain(e *breeding.ReproductionEvent) *ReproductionEventModel {
	m := &ReproductionEventModel{}
	m.FromDomain(e)
	return m
}
