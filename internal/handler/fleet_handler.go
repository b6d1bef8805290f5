package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/dispatch-backend-go/internal/format"
	"github.com/jengzang/dispatch-backend-go/internal/models"
	"github.com/jengzang/dispatch-backend-go/internal/service"
	"github.com/jengzang/dispatch-backend-go/pkg/response"
)

// FleetHandler handles HTTP requests for the fleet overview
type FleetHandler struct {
	dispatchService *service.DispatchService
}

// NewFleetHandler creates a new fleet handler
func NewFleetHandler(dispatchService *service.DispatchService) *FleetHandler {
	return &FleetHandler{
		dispatchService: dispatchService,
	}
}

type fleetResponse struct {
	*models.FleetOverview
	AvgPriceDisplay string `json:"avg_price_display"`
	AvgCostDisplay  string `json:"avg_cost_display"`
}

// GetFleet handles GET /api/v1/fleet
func (h *FleetHandler) GetFleet(c *gin.Context) {
	var filter models.FleetFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid limit parameter")
		return
	}

	overview, err := h.dispatchService.Fleet(filter.Limit)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, fleetResponse{
		FleetOverview:   overview,
		AvgPriceDisplay: format.CurrencyValue(overview.AvgPrice),
		AvgCostDisplay:  format.CurrencyValue(overview.AvgCost),
	})
}
