package finance

import (
	"time"

	"github.com/gadogest/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateFinancialRecordRequest struct {
	Type           string          `json:"tipo" binding:"required,oneof=Receita Despesa"`
	Category       string          `json:"categoria" binding:"required,max=50"`
	Description    string          `json:"descricao" binding:"required,max=200"`
	Amount         decimal.Decimal `json:"valor" binding:"required"`
	Date           string          `json:"data" binding:"required"`
	PaymentMethod  string          `json:"forma_pagamento" binding:"required,oneof=Dinheiro 'Cartão de Crédito' 'Cartão de Débito' Transferência Boleto Cheque Outro"`
	Status         string          `json:"status" binding:"required,oneof=Pendente Pago Cancelado"`
	AnimalID       string          `json:"animal" binding:"omitempty,uuid"`
	FiscalDocument string          `json:"documento_fiscal" binding:"max=50"`
	Attachment     string          `json:"anexo" binding:"max=255"`
	Farm           string          `json:"fazenda" binding:"required,max=100"`
	Responsible    string          `json:"responsavel" binding:"required,max=100"`
	Notes          string          `json:"observacoes" binding:"max=1000"`
}

type UpdateFinancialRecordRequest struct {
	Type           *string          `json:"tipo" binding:"omitempty,oneof=Receita Despesa"`
	Category       *string          `json:"categoria" binding:"omitempty,max=50"`
	Description    *string          `json:"descricao" binding:"omitempty,max=200"`
	Amount         *decimal.Decimal `json:"valor"`
	Date           *string          `json:"data"`
	PaymentMethod  *string          `json:"forma_pagamento" binding:"omitempty,oneof=Dinheiro 'Cartão de Crédito' 'Cartão de Débito' Transferência Boleto Cheque Outro"`
	Status         *string          `json:"status" binding:"omitempty,oneof=Pendente Pago Cancelado"`
	FiscalDocument *string          `json:"documento_fiscal" binding:"omitempty,max=50"`
	Attachment     *string          `json:"anexo" binding:"omitempty,max=255"`
	Farm           *string          `json:"fazenda" binding:"omitempty,max=100"`
	Responsible    *string          `json:"responsavel" binding:"omitempty,max=100"`
	Notes          *string          `json:"observacoes" binding:"omitempty,max=1000"`
}

type ListFinancialRecordsQuery struct {
	Farm     string `form:"fazenda"`
	Type     string `form:"tipo"`
	Category string `form:"categoria"`
	Status   string `form:"status"`
	DateFrom string `form:"dataInicio"`
	DateTo   string `form:"dataFim"`
	Page     int    `form:"pagina,default=1"`
	Limit    int    `form:"limite,default=100"`
}

type FinancialRecordResponse struct {
	ID             uuid.UUID       `json:"id"`
	Type           string          `json:"tipo"`
	Category       string          `json:"categoria"`
	Description    string          `json:"descricao"`
	Amount         decimal.Decimal `json:"valor"`
	Date           time.Time       `json:"data"`
	PaymentMethod  string          `json:"forma_pagamento"`
	Status         string          `json:"status"`
	AnimalID       *uuid.UUID      `json:"animal,omitempty"`
	FiscalDocument string          `json:"documento_fiscal,omitempty"`
	Attachment     string          `json:"anexo,omitempty"`
	Farm           string          `json:"fazenda"`
	Responsible    string          `json:"responsavel"`
	Notes          string          `json:"observacoes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// SummaryResponse totals the whole filtered set, not just the current page.
type SummaryResponse struct {
	Income  decimal.Decimal `json:"receitas"`
	Expense decimal.Decimal `json:"despesas"`
	Balance decimal.Decimal `json:"saldo"`
}

// ListFinancialRecordsResult bundles the page with the filter-wide summary.
type ListFinancialRecordsResult struct {
	Records    []FinancialRecordResponse
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
	Summary    SummaryResponse
}

func ToFinancialRecordResponse(record *finance.FinancialRecord) FinancialRecordResponse {
	return FinancialRecordResponse{
		ID:             record.ID,
		Type:           string(record.Type),
		Category:       record.Category,
		Description:    record.Description,
		Amount:         record.Amount,
		Date:           record.Date,
		PaymentMethod:  string(record.PaymentMethod),
		Status:         string(record.Status),
		AnimalID:       record.AnimalID,
		FiscalDocument: record.FiscalDocument,
		Attachment:     record.Attachment,
		Farm:           record.Farm,
		Responsible:    record.Responsible,
		Notes:          record.Notes,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}
}

func ToSummaryResponse(summary *finance.Summary) SummaryResponse {
	return SummaryResponse{
		Income:  summary.Income,
		Expense: summary.Expense,
		Balance: summary.Balance,
	}
}
