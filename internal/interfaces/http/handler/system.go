package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gadogest/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// Pinger reports connectivity to the backing store
type Pinger interface {
	Ping() error
}

// SystemHandler handles health and liveness endpoints
type SystemHandler struct {
	BaseHandler
	db        Pinger
	startTime time.Time
}

func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{
		db:        db,
		startTime: time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

// Health handles GET /health, checking database connectivity
func (h *SystemHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:    "ok",
		Database:  "ok",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	}

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			resp.Status = "degraded"
			resp.Database = "unreachable"
			out := dto.NewErrorResponse("Serviço indisponível")
			out.Data = resp
			c.JSON(http.StatusServiceUnavailable, out)
			return
		}
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// PingResponse represents the ping response
type PingResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Ping handles GET /ping
func (h *SystemHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(PingResponse{
		Message:   "pong",
		Timestamp: time.Now().Format(time.RFC3339),
	}))
}
