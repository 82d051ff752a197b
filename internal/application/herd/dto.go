package herd

import (
	"time"

	"github.com/gadogest/backend/internal/domain/herd"
	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateAnimalRequest represents a request to create an animal.
// Field names follow the wire format used by the farm clients.
type CreateAnimalRequest struct {
	Identification string           `json:"identificacao" binding:"required,max=20"`
	Type           string           `json:"tipo" binding:"required,oneof=Bezerro Novilho Boi Vaca Touro"`
	Breed          string           `json:"raca" binding:"required,max=100"`
	BirthDate      string           `json:"data_nascimento" binding:"required"`
	Sex            string           `json:"sexo" binding:"omitempty,oneof=Macho Fêmea"`
	Weight         decimal.Decimal  `json:"peso" binding:"required"`
	Height         *decimal.Decimal `json:"altura"`
	Status         string           `json:"status" binding:"omitempty,oneof=Saudável 'Em tratamento' Prenhe 'Em Quarentena' Vendido Abatido"`
	MotherID       *uuid.UUID       `json:"mae"`
	FatherID       *uuid.UUID       `json:"pai"`
	Farm           string           `json:"fazenda" binding:"max=100"`
	Notes          string           `json:"observacoes" binding:"max=1000"`
}

// RegisterAnimalRequest is the fuller registration form: it additionally
// requires the sex and the farm.
type RegisterAnimalRequest struct {
	Identification string           `json:"identificacao" binding:"required,max=20"`
	Type           string           `json:"tipo" binding:"required,oneof=Bezerro Novilho Boi Vaca Touro"`
	Breed          string           `json:"raca" binding:"required,max=100"`
	BirthDate      string           `json:"data_nascimento" binding:"required"`
	Sex            string           `json:"sexo" binding:"required,oneof=Macho Fêmea"`
	Weight         decimal.Decimal  `json:"peso" binding:"required"`
	Height         *decimal.Decimal `json:"altura"`
	MotherID       *uuid.UUID       `json:"mae"`
	FatherID       *uuid.UUID       `json:"pai"`
	Farm           string           `json:"fazenda" binding:"required,max=100"`
	Notes          string           `json:"observacoes" binding:"max=1000"`
}

// UpdateAnimalRequest represents a partial update of an animal
type UpdateAnimalRequest struct {
	Identification *string          `json:"identificacao" binding:"omitempty,max=20"`
	Type           *string          `json:"tipo" binding:"omitempty,oneof=Bezerro Novilho Boi Vaca Touro"`
	Breed          *string          `json:"raca" binding:"omitempty,max=100"`
	BirthDate      *string          `json:"data_nascimento"`
	Sex            *string          `json:"sexo" binding:"omitempty,oneof=Macho Fêmea"`
	Weight         *decimal.Decimal `json:"peso"`
	Height         *decimal.Decimal `json:"altura"`
	Status         *string          `json:"status" binding:"omitempty,oneof=Saudável 'Em tratamento' Prenhe 'Em Quarentena' Vendido Abatido"`
	MotherID       *uuid.UUID       `json:"mae"`
	FatherID       *uuid.UUID       `json:"pai"`
	Farm           *string          `json:"fazenda" binding:"omitempty,max=100"`
	Notes          *string          `json:"observacoes" binding:"omitempty,max=1000"`
	Active         *bool            `json:"ativo"`
}

// ListAnimalsQuery holds the supported listing filters
type ListAnimalsQuery struct {
	Type   string `form:"tipo"`
	Status string `form:"status"`
	Farm   string `form:"fazenda"`
	Search string `form:"termo"`
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=100"`
}

// AnimalResponse represents an animal in API responses
type AnimalResponse struct {
	ID             uuid.UUID        `json:"id"`
	Identification string           `json:"identificacao"`
	Type           string           `json:"tipo"`
	Breed          string           `json:"raca"`
	BirthDate      time.Time        `json:"data_nascimento"`
	Sex            string           `json:"sexo"`
	Weight         decimal.Decimal  `json:"peso"`
	Height         *decimal.Decimal `json:"altura,omitempty"`
	Status         string           `json:"status"`
	MotherID       *uuid.UUID       `json:"mae,omitempty"`
	FatherID       *uuid.UUID       `json:"pai,omitempty"`
	Farm           string           `json:"fazenda"`
	Notes          string           `json:"observacoes,omitempty"`
	Active         bool             `json:"ativo"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ToAnimalResponse converts a domain Animal to its API representation
func ToAnimalResponse(a *herd.Animal) AnimalResponse {
	return AnimalResponse{
		ID:             a.ID,
		Identification: a.Identification,
		Type:           string(a.Type),
		Breed:          a.Breed,
		BirthDate:      a.BirthDate,
		Sex:            string(a.Sex),
		Weight:         a.Weight,
		Height:         a.Height,
		Status:         string(a.Status),
		MotherID:       a.MotherID,
		FatherID:       a.FatherID,
		Farm:           a.Farm,
		Notes:          a.Notes,
		Active:         a.Active,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// ToAnimalResponses converts a slice of domain animals
func ToAnimalResponses(animals []*herd.Animal) []AnimalResponse {
	responses := make([]AnimalResponse, len(animals))
	for i, a := range animals {
		responses[i] = ToAnimalResponse(a)
	}
	return responses
}

// parseDate accepts the date formats the clients send: plain dates from
// form inputs and full RFC3339 timestamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, shared.NewDomainError("INVALID_DATE", "Data inválida: "+value)
	}
	return t, nil
}
