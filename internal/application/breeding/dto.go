package breeding

import (
	"time"

	"github.com/gadogest/backend/internal/domain/breeding"
	"github.com/google/uuid"
)

type CreateReproductionEventRequest struct {
	Type         string   `json:"tipo" binding:"required,oneof=Cobertura Gestação Nascimento"`
	EventDate    string   `json:"data_evento" binding:"required"`
	ExpectedDate string   `json:"data_prevista"`
	FemaleID     string   `json:"femea" binding:"required,uuid"`
	MaleID       string   `json:"macho" binding:"omitempty,uuid"`
	Method       string   `json:"metodo" binding:"max=50"`
	Responsible  string   `json:"responsavel" binding:"required,max=100"`
	Status       string   `json:"status" binding:"omitempty,oneof=Prevista Confirmada 'Em Andamento' Concluída Cancelada"`
	CalfCount    int      `json:"qtd_bezerros" binding:"omitempty,min=0"`
	CalfTags     []string `json:"brincos_bezerros"`
	Notes        string   `json:"observacoes" binding:"max=1000"`
}

type UpdateReproductionEventRequest struct {
	Type         *string  `json:"tipo" binding:"omitempty,oneof=Cobertura Gestação Nascimento"`
	EventDate    *string  `json:"data_evento"`
	ExpectedDate *string  `json:"data_prevista"`
	MaleID       *string  `json:"macho" binding:"omitempty,uuid"`
	Method       *string  `json:"metodo" binding:"omitempty,max=50"`
	Responsible  *string  `json:"responsavel" binding:"omitempty,max=100"`
	Status       *string  `json:"status" binding:"omitempty,oneof=Prevista Confirmada 'Em Andamento' Concluída Cancelada"`
	CalfCount    *int     `json:"qtd_bezerros" binding:"omitempty,min=0"`
	CalfTags     []string `json:"brincos_bezerros"`
	Notes        *string  `json:"observacoes" binding:"omitempty,max=1000"`
}

type ListReproductionEventsQuery struct {
	Type     string `form:"tipo"`
	Status   string `form:"status"`
	FemaleID string `form:"femea"`
	DateFrom string `form:"dataInicio"`
	DateTo   string `form:"dataFim"`
	Page     int    `form:"pagina,default=1"`
	Limit    int    `form:"limite,default=100"`
}

// AnimalSummary is the embedded animal snippet for the female and male.
type AnimalSummary struct {
	ID             uuid.UUID `json:"id"`
	Identification string    `json:"identificacao"`
	Breed          string    `json:"raca"`
}

type ReproductionEventResponse struct {
	ID           uuid.UUID      `json:"id"`
	Type         string         `json:"tipo"`
	EventDate    time.Time      `json:"data_evento"`
	ExpectedDate *time.Time     `json:"data_prevista,omitempty"`
	Female       *AnimalSummary `json:"femea"`
	Male         *AnimalSummary `json:"macho,omitempty"`
	Method       string         `json:"metodo,omitempty"`
	Responsible  string         `json:"responsavel"`
	Status       string         `json:"status"`
	CalfCount    int            `json:"qtd_bezerros"`
	CalfTags     []string       `json:"brincos_bezerros,omitempty"`
	Notes        string         `json:"observacoes,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// SummaryResponse aggregates the filtered event set.
type SummaryResponse struct {
	Matings    int64 `json:"coberturas"`
	Gestations int64 `json:"gestacoes"`
	Births     int64 `json:"nascimentos"`
	CalvesBorn int64 `json:"bezerrosNascidos"`
}

type ListReproductionEventsResult struct {
	Events     []ReproductionEventResponse
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
	Summary    SummaryResponse
}

func ToReproductionEventResponse(event *breeding.ReproductionEvent, female, male *AnimalSummary) ReproductionEventResponse {
	return ReproductionEventResponse{
		ID:           event.ID,
		Type:         string(event.Type),
		EventDate:    event.EventDate,
		ExpectedDate: event.ExpectedDate,
		Female:       female,
		Male:         male,
		Method:       event.Method,
		Responsible:  event.Responsible,
		Status:       string(event.Status),
		CalfCount:    event.CalfCount,
		CalfTags:     event.CalfTags,
		Notes:        event.Notes,
		CreatedAt:    event.CreatedAt,
		UpdatedAt:    event.UpdatedAt,
	}
}

func ToSummaryResponse(summary *breeding.Summary) SummaryResponse {
	return SummaryResponse{
		Matings:    summary.Matings,
		Gestations: summary.Gestations,
		Births:     summary.Births,
		CalvesBorn: summary.CalvesBorn,
	}
}
