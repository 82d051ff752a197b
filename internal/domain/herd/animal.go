package herd

import (
	"strings"
	"time"

	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AnimalType represents the kind of animal in the herd
type AnimalType string

const (
	AnimalTypeCalf  AnimalType = "Bezerro"
	AnimalTypeSteer AnimalType = "Novilho"
	AnimalTypeOx    AnimalType = "Boi"
	AnimalTypeCow   AnimalType = "Vaca"
	AnimalTypeBull  AnimalType = "Touro"
)

// AnimalTypes lists all valid animal types
var AnimalTypes = []AnimalType{
	AnimalTypeCalf,
	AnimalTypeSteer,
	AnimalTypeOx,
	AnimalTypeCow,
	AnimalTypeBull,
}

// Sex represents the animal's sex
type Sex string

const (
	SexMale   Sex = "Macho"
	SexFemale Sex = "Fêmea"
)

// AnimalStatus represents the current status of an animal.
// Transitions are unrestricted: any status may follow any status,
// since the field tracks observed facts rather than a workflow.
type AnimalStatus string

const (
	AnimalStatusHealthy     AnimalStatus = "Saudável"
	AnimalStatusInTreatment AnimalStatus = "Em tratamento"
	AnimalStatusPregnant    AnimalStatus = "Prenhe"
	AnimalStatusQuarantined AnimalStatus = "Em Quarentena"
	AnimalStatusSold        AnimalStatus = "Vendido"
	AnimalStatusSlaughtered AnimalStatus = "Abatido"
)

// AnimalStatuses lists all valid animal statuses
var AnimalStatuses = []AnimalStatus{
	AnimalStatusHealthy,
	AnimalStatusInTreatment,
	AnimalStatusPregnant,
	AnimalStatusQuarantined,
	AnimalStatusSold,
	AnimalStatusSlaughtered,
}

const (
	maxIdentificationLength = 20
	maxNotesLength          = 1000
)

// Animal represents a single animal in the herd.
// It is the aggregate root for herd operations.
type Animal struct {
	shared.BaseEntity
	Identification string
	Type           AnimalType
	Breed          string
	BirthDate      time.Time
	Sex            Sex
	Weight         decimal.Decimal
	Height         *decimal.Decimal
	Status         AnimalStatus
	MotherID       *uuid.UUID
	FatherID       *uuid.UUID
	Farm           string
	Notes          string
	Active         bool
}

// NewAnimal creates a new animal with required fields
func NewAnimal(identification string, animalType AnimalType, breed string, birthDate time.Time, sex Sex, weight decimal.Decimal) (*Animal, error) {
	if err := ValidateIdentification(identification); err != nil {
		return nil, err
	}
	if err := ValidateAnimalType(animalType); err != nil {
		return nil, err
	}
	if strings.TrimSpace(breed) == "" {
		return nil, shared.NewDomainError("INVALID_BREED", "Por favor, informe a raça do animal")
	}
	if birthDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_BIRTH_DATE", "Por favor, informe a data de nascimento")
	}
	if err := ValidateSex(sex); err != nil {
		return nil, err
	}
	if weight.IsNegative() {
		return nil, shared.NewDomainError("INVALID_WEIGHT", "Peso não pode ser negativo")
	}

	return &Animal{
		BaseEntity:     shared.NewBaseEntity(),
		Identification: strings.TrimSpace(identification),
		Type:           animalType,
		Breed:          strings.TrimSpace(breed),
		BirthDate:      birthDate,
		Sex:            sex,
		Weight:         weight,
		Status:         AnimalStatusHealthy,
		Active:         true,
	}, nil
}

// SetFarm sets the farm the animal belongs to
func (a *Animal) SetFarm(farm string) {
	a.Farm = strings.TrimSpace(farm)
	a.Touch()
}

// SetNotes sets free-form notes about the animal
func (a *Animal) SetNotes(notes string) error {
	if len(notes) > maxNotesLength {
		return shared.NewDomainError("INVALID_NOTES", "Observações não podem ter mais de 1000 caracteres")
	}
	a.Notes = notes
	a.Touch()
	return nil
}

// SetHeight sets the optional height measurement
func (a *Animal) SetHeight(height decimal.Decimal) error {
	if height.IsNegative() {
		return shared.NewDomainError("INVALID_HEIGHT", "Altura não pode ser negativa")
	}
	a.Height = &height
	a.Touch()
	return nil
}

// SetWeight updates the animal's weight
func (a *Animal) SetWeight(weight decimal.Decimal) error {
	if weight.IsNegative() {
		return shared.NewDomainError("INVALID_WEIGHT", "Peso não pode ser negativo")
	}
	a.Weight = weight
	a.Touch()
	return nil
}

// SetParents sets the optional mother and father references
func (a *Animal) SetParents(motherID, fatherID *uuid.UUID) {
	a.MotherID = motherID
	a.FatherID = fatherID
	a.Touch()
}

// ChangeIdentification updates the animal's unique identification tag.
// Uniqueness against the rest of the herd is checked by the application layer.
func (a *Animal) ChangeIdentification(identification string) error {
	if err := ValidateIdentification(identification); err != nil {
		return err
	}
	a.Identification = strings.TrimSpace(identification)
	a.Touch()
	return nil
}

// ChangeStatus moves the animal to a new status
func (a *Animal) ChangeStatus(status AnimalStatus) error {
	if err := ValidateAnimalStatus(status); err != nil {
		return err
	}
	a.Status = status
	a.Touch()
	return nil
}

// Deactivate marks the animal as inactive without deleting it
func (a *Animal) Deactivate() {
	a.Active = false
	a.Touch()
}

// Activate marks the animal as active
func (a *Animal) Activate() {
	a.Active = true
	a.Touch()
}

// ValidateIdentification checks the identification tag constraints
func ValidateIdentification(identification string) error {
	identification = strings.TrimSpace(identification)
	if identification == "" {
		return shared.NewDomainError("INVALID_IDENTIFICATION", "Por favor, informe a identificação do animal")
	}
	if len(identification) > maxIdentificationLength {
		return shared.NewDomainError("INVALID_IDENTIFICATION", "Identificação não pode ter mais de 20 caracteres")
	}
	return nil
}

// ValidateAnimalType checks that the type is one of the known values
func ValidateAnimalType(animalType AnimalType) error {
	for _, t := range AnimalTypes {
		if t == animalType {
			return nil
		}
	}
	return shared.NewDomainError("INVALID_TYPE", "Tipo de animal inválido")
}

// ValidateSex checks that the sex is one of the known values
func ValidateSex(sex Sex) error {
	if sex == SexMale || sex == SexFemale {
		return nil
	}
	return shared.NewDomainError("INVALID_SEX", "Sexo do animal inválido")
}

// ValidateAnimalStatus checks that the status is one of the known values
func ValidateAnimalStatus(status AnimalStatus) error {
	for _, s := range AnimalStatuses {
		if s == status {
			return nil
		}
	}
	return shared.NewDomainError("INVALID_STATUS", "Status do animal inválido")
}
