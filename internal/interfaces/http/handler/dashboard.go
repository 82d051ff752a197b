package handler

import (
	reportapp "github.com/gadogest/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregated dashboard view
type DashboardHandler struct {
	BaseHandler
	dashboardService *reportapp.DashboardService
}

func NewDashboardHandler(dashboardService *reportapp.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary handles GET /dashboard/summary
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, summary)
}
