package handler

import (
	financeapp "github.com/gadogest/backend/internal/application/finance"
	"github.com/gin-gonic/gin"
)

// FinancialRecordHandler handles financial record API endpoints
type FinancialRecordHandler struct {
	BaseHandler
	financeService *financeapp.FinanceService
}

func NewFinancialRecordHandler(financeService *financeapp.FinanceService) *FinancialRecordHandler {
	return &FinancialRecordHandler{financeService: financeService}
}

// List handles GET /financial-records. The response carries the page plus the
// income/expense/balance summary over the whole filtered set.
func (h *FinancialRecordHandler) List(c *gin.Context) {
	var query financeapp.ListFinancialRecordsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.financeService.List(c.Request.Context(), query)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithSummary(c, result.Records, result.Total, result.Page, result.PageSize, result.TotalPages, result.Summary)
}

// Create handles POST /financial-records
func (h *FinancialRecordHandler) Create(c *gin.Context) {
	var req financeapp.CreateFinancialRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	record, err := h.financeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMessage(c, "Registro financeiro cadastrado com sucesso", record)
}

// Get handles GET /financial-records/:id
func (h *FinancialRecordHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador inválido")
		return
	}

	record, err := h.financeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, record)
}

// Update handles PUT /financial-records/:id
func (h *FinancialRecordHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador inválido")
		return
	}

	var req financeapp.UpdateFinancialRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	record, err := h.financeService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, record)
}

// Delete handles DELETE /financial-records/:id
func (h *FinancialRecordHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador inválido")
		return
	}

	if err := h.financeService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMessage(c, "Registro financeiro removido com sucesso", nil)
}
