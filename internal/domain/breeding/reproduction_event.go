package breeding

import (
	"strings"
	"time"

	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EventType represents the kind of reproduction event
type EventType string

const (
	EventTypeMating    EventType = "Cobertura"
	EventTypeGestation EventType = "Gestação"
	EventTypeBirth     EventType = "Nascimento"
)

// EventTypes lists all valid event types
var EventTypes = []EventType{
	EventTypeMating,
	EventTypeGestation,
	EventTypeBirth,
}

// EventStatus represents the event lifecycle
type EventStatus string

const (
	EventStatusExpected   EventStatus = "Prevista"
	EventStatusConfirmed  EventStatus = "Confirmada"
	EventStatusInProgress EventStatus = "Em Andamento"
	EventStatusCompleted  EventStatus = "Concluída"
	EventStatusCancelled  EventStatus = "Cancelada"
)

// EventStatuses lists all valid event statuses
var EventStatuses = []EventStatus{
	EventStatusExpected,
	EventStatusConfirmed,
	EventStatusInProgress,
	EventStatusCompleted,
	EventStatusCancelled,
}

const maxNotesLength = 1000

// ReproductionEvent represents a mating, gestation or birth event
type ReproductionEvent struct {
	shared.BaseEntity
	Type         EventType
	EventDate    time.Time
	ExpectedDate *time.Time
	FemaleID     uuid.UUID
	MaleID       *uuid.UUID
	Method       string
	Responsible  string
	Status       EventStatus
	CalfCount    int
	CalfTags     []string
	Notes        string
}

// Summary aggregates reproduction counters over a set of events
type Summary struct {
	Matings    int64
	Gestations int64
	Births     int64
	CalvesBorn int64
}

// NewReproductionEvent creates a reproduction event with required fields
func NewReproductionEvent(eventType EventType, eventDate time.Time, femaleID uuid.UUID, responsible string) (*ReproductionEvent, error) {
	if err := ValidateEventType(eventType); err != nil {
		return nil, err
	}
	if eventDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_EVENT_DATE", "Por favor, informe a data do evento")
	}
	if femaleID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_FEMALE", "Por favor, informe a fêmea")
	}
	if strings.TrimSpace(responsible) == "" {
		return nil, shared.NewDomainError("INVALID_RESPONSIBLE", "Por favor, informe o responsável")
	}

	status := EventStatusConfirmed
	if eventType == EventTypeBirth {
		status = EventStatusCompleted
	}

	return &ReproductionEvent{
		BaseEntity:  shared.NewBaseEntity(),
		Type:        eventType,
		EventDate:   eventDate,
		FemaleID:    femaleID,
		Responsible: strings.TrimSpace(responsible),
		Status:      status,
	}, nil
}

// SetMale associates the sire with the event
func (e *ReproductionEvent) SetMale(maleID uuid.UUID) {
	e.MaleID = &maleID
	e.Touch()
}

// SetMethod sets the reproduction method used
func (e *ReproductionEvent) SetMethod(method string) {
	e.Method = strings.TrimSpace(method)
	e.Touch()
}

// SetExpectedDate sets the predicted date for the event outcome
func (e *ReproductionEvent) SetExpectedDate(expected time.Time) {
	e.ExpectedDate = &expected
	e.Touch()
}

// RecordCalves records the calves born in a birth event
func (e *ReproductionEvent) RecordCalves(count int, tags []string) error {
	if count < 0 {
		return shared.NewDomainError("INVALID_CALF_COUNT", "Quantidade de bezerros não pode ser negativa")
	}
	e.CalfCount = count
	e.CalfTags = tags
	e.Touch()
	return nil
}

// ChangeStatus moves the event to a new status
func (e *ReproductionEvent) ChangeStatus(status EventStatus) error {
	if err := ValidateEventStatus(status); err != nil {
		return err
	}
	e.Status = status
	e.Touch()
	return nil
}

// SetNotes sets free-form notes
func (e *ReproductionEvent) SetNotes(notes string) error {
	if len(notes) > maxNotesLength {
		return shared.NewDomainError("INVALID_NOTES", "Observações não podem ter mais de 1000 caracteres")
	}
	e.Notes = notes
	e.Touch()
	return nil
}

// ValidateEventType checks that the type is one of the known values
func ValidateEventType(eventType EventType) error {
	for _, t := range EventTypes {
		if t == eventType {
			return nil
		}
	}
	return shared.NewDomainError("INVALID_TYPE", "Tipo de evento reprodutivo inválido")
}

// ValidateEventStatus checks that the status is one of the known values
func ValidateEventStatus(status EventStatus) error {
	for _, s := range EventStatuses {
		if s == status {
			return nil
		}
	}
	return shared.NewDomainError("INVALID_STATUS", "Status do evento reprodutivo inválido")
}
