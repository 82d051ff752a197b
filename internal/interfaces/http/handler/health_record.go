package handler

import (
	healthapp "github.com/gadogest/backend/internal/application/health"
	"github.com/gin-gonic/gin"
)

// HealthRecordHandler handles health record API endpoints
type HealthRecordHandler struct {
	BaseHandler
	healthService *healthapp.HealthRecordService
}

func NewHealthRecordHandler(healthService *healthapp.HealthRecordService) *HealthRecordHandler {
	return &HealthRecordHandler{healthService: healthService}
}

// List handles GET /health-records
func (h *HealthRecordHandler) List(c *gin.Context) {
	var query healthapp.ListHealthRecordsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindingError(c, err)
		return
	}

	page, err := h.healthService.List(c.Request.Context(), query)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize, page.TotalPages)
}

// Create handles POST /health-records
func (h *HealthRecordHandler) Create(c *gin.Context) {
	var req healthapp.CreateHealthRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	record, err := h.healthService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMessage(c, "Registro de saúde cadastrado com sucesso", record)
}

// Get handles GET /health-records/:id
func (h *HealthRecordHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador inválido")
		return
	}

	record, err := h.healthService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, record)
}

// Update handles PUT /health-records/:id
func (h *HealthRecordHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador inválido")
		return
	}

	var req healthapp.UpdateHealthRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	record, err := h.healthService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, record)
}

// Delete handles DELETE /health-records/:id
func (h *HealthRecordHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador inválido")
		return
	}

	if err := h.healthService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMessage(c, "Registro sanitário removido com sucesso", nil)
}
