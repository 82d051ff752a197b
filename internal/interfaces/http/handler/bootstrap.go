package handler

import (
	identityapp "github.com/gadogest/backend/internal/application/identity"
	"github.com/gin-gonic/gin"
)

// BootstrapHandler exposes the one-shot admin seeding endpoint
type BootstrapHandler struct {
	BaseHandler
	seedService *identityapp.SeedService
}

func NewBootstrapHandler(seedService *identityapp.SeedService) *BootstrapHandler {
	return &BootstrapHandler{seedService: seedService}
}

// Bootstrap handles GET /bootstrap?code=
func (h *BootstrapHandler) Bootstrap(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		h.BadRequest(c, "O parâmetro code é obrigatório")
		return
	}

	result, err := h.seedService.Bootstrap(c.Request.Context(), code)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMessage(c, result.Message, result)
}
