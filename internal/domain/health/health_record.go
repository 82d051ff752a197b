package health

import (
	"strings"
	"time"

	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordType represents the kind of health procedure
type RecordType string

const (
	RecordTypeVaccination RecordType = "Vacinação"
	RecordTypeMedication  RecordType = "Medicação"
	RecordTypeExam        RecordType = "Exame"
	RecordTypeSurgery     RecordType = "Cirurgia"
	RecordTypeOther       RecordType = "Outro"
)

// RecordTypes lists all valid record types
var RecordTypes = []RecordType{
	RecordTypeVaccination,
	RecordTypeMedication,
	RecordTypeExam,
	RecordTypeSurgery,
	RecordTypeOther,
}

// RecordStatus represents the record lifecycle
type RecordStatus string

const (
	RecordStatusScheduled RecordStatus = "Agendado"
	RecordStatusDone      RecordStatus = "Realizado"
	RecordStatusCancelled RecordStatus = "Cancelado"
)

// RecordStatuses lists all valid record statuses
var RecordStatuses = []RecordStatus{
	RecordStatusScheduled,
	RecordStatusDone,
	RecordStatusCancelled,
}

const maxNotesLength = 1000

// HealthRecord represents a health procedure applied or scheduled for an animal
type HealthRecord struct {
	shared.BaseEntity
	AnimalID        uuid.UUID
	Type            RecordType
	Date            time.Time
	Product         string
	Dosage          string
	Applicator      string
	Veterinarian    string
	Status          RecordStatus
	NextApplication *time.Time
	Cost            *decimal.Decimal
	Notes           string
}

// NewHealthRecord creates a health record for an animal
func NewHealthRecord(animalID uuid.UUID, recordType RecordType, date time.Time, applicator string) (*HealthRecord, error) {
	if animalID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ANIMAL", "Por favor, informe o animal")
	}
	if err := ValidateRecordType(recordType); err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Por favor, informe a data")
	}
	if strings.TrimSpace(applicator) == "" {
		return nil, shared.NewDomainError("INVALID_APPLICATOR", "Por favor, informe o aplicador")
	}

	return &HealthRecord{
		BaseEntity: shared.NewBaseEntity(),
		AnimalID:   animalID,
		Type:       recordType,
		Date:       date,
		Applicator: strings.TrimSpace(applicator),
		Status:     RecordStatusDone,
	}, nil
}

// SetProduct sets the medication or vaccine applied
func (r *HealthRecord) SetProduct(product, dosage string) {
	r.Product = strings.TrimSpace(product)
	r.Dosage = strings.TrimSpace(dosage)
	r.Touch()
}

// SetVeterinarian sets the responsible veterinarian
func (r *HealthRecord) SetVeterinarian(veterinarian string) {
	r.Veterinarian = strings.TrimSpace(veterinarian)
	r.Touch()
}

// SetCost sets the procedure cost
func (r *HealthRecord) SetCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Custo não pode ser negativo")
	}
	r.Cost = &cost
	r.Touch()
	return nil
}

// SetNextApplication schedules the next application date
func (r *HealthRecord) SetNextApplication(next time.Time) {
	r.NextApplication = &next
	r.Touch()
}

// SetNotes sets free-form notes
func (r *HealthRecord) SetNotes(notes string) error {
	if len(notes) > maxNotesLength {
		return shared.NewDomainError("INVALID_NOTES", "Observações não podem ter mais de 1000 caracteres")
	}
	r.Notes = notes
	r.Touch()
	return nil
}

// ChangeStatus moves the record to a new status
func (r *HealthRecord) ChangeStatus(status RecordStatus) error {
	if err := ValidateRecordStatus(status); err != nil {
		return err
	}
	r.Status = status
	r.Touch()
	return nil
}

// ValidateRecordType checks that the type is one of the known values
func ValidateRecordType(recordType RecordType) error {
	for _, t := range RecordTypes {
		if t == recordType {
			return nil
		}
	}
	return shared.NewDomainError("INVALID_TYPE", "Tipo de registro de saúde inválido")
}

// ValidateRecordStatus checks that the status is one of the known values
func ValidateRecordStatus(status RecordStatus) error {
	for _, s := range RecordStatuses {
		if s == status {
			return nil
		}
	}
	return shared.NewDomainError("INVALID_STATUS", "Status do registro de saúde inválido")
}
