package handler

import (
	breedingapp "github.com/gadogest/backend/internal/application/breeding"
	"github.com/gin-gonic/gin"
)

// ReproductionEventHandler handles reproduction event API endpoints
type ReproductionEventHandler struct {
	BaseHandler
	breedingService *breedingapp.BreedingService
}

func NewReproductionEventHandler(breedingService *breedingapp.BreedingService) *ReproductionEventHandler {
	return &ReproductionEventHandler{breedingService: breedingService}
}

// List handles GET /reproduction-events. The response carries the page plus
// the mating/gestation/birth counters over the whole filtered set.
func (h *ReproductionEventHandler) List(c *gin.Context) {
	var query breedingapp.ListReproductionEventsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.breedingService.List(c.Request.Context(), query)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithSummary(c, result.Events, result.Total, result.Page, result.PageSize, result.TotalPages, result.Summary)
}

// Create handles POST /reproduction-events
func (h *ReproductionEventHandler) Create(c *gin.Context) {
	var req breedingapp.CreateReproductionEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	event, err := h.breedingService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMessage(c, "Evento reprodutivo cadastrado com sucesso", event)
}

// Get handles GET /reproduction-events/:id
func (h *ReproductionEventHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador inválido")
		return
	}

	event, err := h.breedingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, event)
}

// Update handles PUT /reproduction-events/:id
func (h *ReproductionEventHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador inválido")
		return
	}

	var req breedingapp.UpdateReproductionEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	event, err := h.breedingService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, event)
}

// Delete handles DELETE /reproduction-events/:id
func (h *ReproductionEventHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador inválido")
		return
	}

	if err := h.breedingService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMessage(c, "Evento reprodutivo removido com sucesso", nil)
}
