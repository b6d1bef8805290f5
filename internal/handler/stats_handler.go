package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/dispatch-backend-go/internal/service"
	"github.com/jengzang/dispatch-backend-go/pkg/response"
)

// StatsHandler handles dataset status and health checks
type StatsHandler struct {
	dispatchService *service.DispatchService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(dispatchService *service.DispatchService) *StatsHandler {
	return &StatsHandler{
		dispatchService: dispatchService,
	}
}

// GetStats handles GET /api/v1/stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	status := h.dispatchService.Status()
	if !status.Loaded {
		response.ServiceUnavailable(c, "Dataset is not loaded yet")
		return
	}
	response.Success(c, status)
}

// Health handles GET /health. It always answers 200 so the process is
// considered alive while the first load is still running.
func (h *StatsHandler) Health(c *gin.Context) {
	status := h.dispatchService.Status()
	state := "ok"
	if !status.Loaded {
		state = "loading"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  state,
		"message": "Dispatch Backend API is running",
		"dataset": status,
	})
}
