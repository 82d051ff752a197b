package health

import (
	"time"

	"github.com/gadogest/backend/internal/domain/health"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateHealthRecordRequest is the payload for recording a health event.
// When UpdateAnimalStatus is set, the animal referenced by AnimalID has its
// status changed to NewAnimalStatus after the record is persisted.
type CreateHealthRecordRequest struct {
	AnimalID           string           `json:"animal" binding:"required,uuid"`
	Type               string           `json:"tipo" binding:"required,oneof=Vacinação Medicação Exame Cirurgia Outro"`
	Date               string           `json:"data" binding:"required"`
	Product            string           `json:"produto" binding:"max=100"`
	Dosage             string           `json:"dosagem" binding:"max=50"`
	Applicator         string           `json:"aplicador" binding:"required,max=100"`
	Veterinarian       string           `json:"veterinario" binding:"max=100"`
	Status             string           `json:"status" binding:"omitempty,oneof=Agendado Realizado Cancelado"`
	NextApplication    string           `json:"proxima_aplicacao"`
	Cost               *decimal.Decimal `json:"custo"`
	Notes              string           `json:"observacoes" binding:"max=1000"`
	UpdateAnimalStatus bool             `json:"atualizarStatusAnimal"`
	NewAnimalStatus    string           `json:"novoStatusAnimal" binding:"omitempty,oneof=Saudável 'Em tratamento' Prenhe 'Em Quarentena' Vendido Abatido"`
}

// UpdateHealthRecordRequest carries the mutable fields of a health record.
type UpdateHealthRecordRequest struct {
	Type            *string          `json:"tipo" binding:"omitempty,oneof=Vacinação Medicação Exame Cirurgia Outro"`
	Date            *string          `json:"data"`
	Product         *string          `json:"produto" binding:"omitempty,max=100"`
	Dosage          *string          `json:"dosagem" binding:"omitempty,max=50"`
	Applicator      *string          `json:"aplicador" binding:"omitempty,max=100"`
	Veterinarian    *string          `json:"veterinario" binding:"omitempty,max=100"`
	Status          *string          `json:"status" binding:"omitempty,oneof=Agendado Realizado Cancelado"`
	NextApplication *string          `json:"proxima_aplicacao"`
	Cost            *decimal.Decimal `json:"custo"`
	Notes           *string          `json:"observacoes" binding:"omitempty,max=1000"`
}

// ListHealthRecordsQuery captures the supported list filters.
type ListHealthRecordsQuery struct {
	AnimalID string `form:"animal"`
	Type     string `form:"tipo"`
	Status   string `form:"status"`
	DateFrom string `form:"dataInicio"`
	DateTo   string `form:"dataFim"`
	Page     int    `form:"pagina,default=1"`
	Limit    int    `form:"limite,default=100"`
}

// AnimalSummary is the embedded animal snippet returned with each record.
type AnimalSummary struct {
	ID             uuid.UUID `json:"id"`
	Identification string    `json:"identificacao"`
	Type           string    `json:"tipo"`
	Breed          string    `json:"raca"`
}

type HealthRecordResponse struct {
	ID              uuid.UUID        `json:"id"`
	Animal          *AnimalSummary   `json:"animal"`
	Type            string           `json:"tipo"`
	Date            time.Time        `json:"data"`
	Product         string           `json:"produto,omitempty"`
	Dosage          string           `json:"dosagem,omitempty"`
	Applicator      string           `json:"aplicador"`
	Veterinarian    string           `json:"veterinario,omitempty"`
	Status          string           `json:"status"`
	NextApplication *time.Time       `json:"proxima_aplicacao,omitempty"`
	Cost            *decimal.Decimal `json:"custo,omitempty"`
	Notes           string           `json:"observacoes,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func ToHealthRecordResponse(record *health.HealthRecord, animal *AnimalSummary) HealthRecordResponse {
	return HealthRecordResponse{
		ID:              record.ID,
		Animal:          animal,
		Type:            string(record.Type),
		Date:            record.Date,
		Product:         record.Product,
		Dosage:          record.Dosage,
		Applicator:      record.Applicator,
		Veterinarian:    record.Veterinarian,
		Status:          string(record.Status),
		NextApplication: record.NextApplication,
		Cost:            record.Cost,
		Notes:           record.Notes,
		CreatedAt:       record.CreatedAt,
		UpdatedAt:       record.UpdatedAt,
	}
}
