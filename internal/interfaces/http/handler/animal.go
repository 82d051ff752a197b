package handler

import (
	herdapp "github.com/gadogest/backend/internal/application/herd"
	"github.com/gin-gonic/gin"
)

// AnimalHandler handles animal API endpoints
type AnimalHandler struct {
	BaseHandler
	animalService *herdapp.AnimalService
}

func NewAnimalHandler(animalService *herdapp.AnimalService) *AnimalHandler {
	return &AnimalHandler{animalService: animalService}
}

// List handles GET /animals
func (h *AnimalHandler) List(c *gin.Context) {
	var query herdapp.ListAnimalsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindingError(c, err)
		return
	}

	page, err := h.animalService.List(c.Request.Context(), query)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize, page.TotalPages)
}

// Create handles POST /animals
func (h *AnimalHandler) Create(c *gin.Context) {
	var req herdapp.CreateAnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	animal, err := h.animalService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMessage(c, "Animal cadastrado com sucesso", animal)
}

// Register handles POST /animals/register, the full registration form
func (h *AnimalHandler) Register(c *gin.Context) {
	var req herdapp.RegisterAnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	animal, err := h.animalService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMessage(c, "Animal cadastrado com sucesso", animal)
}

// Get handles GET /animals/:id
func (h *AnimalHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador inválido")
		return
	}

	animal, err := h.animalService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, animal)
}

// Update handles PUT /animals/:id
func (h *AnimalHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador inválido")
		return
	}

	var req herdapp.UpdateAnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	animal, err := h.animalService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, animal)
}

// Delete handles DELETE /animals/:id
func (h *AnimalHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Identificador inválido")
		return
	}

	if err := h.animalService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMessage(c, "Animal removido com sucesso", nil)
}
