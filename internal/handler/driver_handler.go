package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/dispatch-backend-go/internal/models"
	"github.com/jengzang/dispatch-backend-go/internal/service"
	"github.com/jengzang/dispatch-backend-go/pkg/response"
)

// DriverHandler handles HTTP requests for drivers
type DriverHandler struct {
	dispatchService *service.DispatchService
}

// NewDriverHandler creates a new driver handler
func NewDriverHandler(dispatchService *service.DispatchService) *DriverHandler {
	return &DriverHandler{
		dispatchService: dispatchService,
	}
}

type topDriversResponse struct {
	Drivers []driverView `json:"drivers"`
	Presets []int        `json:"presets"`
}

// GetTopDrivers handles GET /api/v1/drivers/top
func (h *DriverHandler) GetTopDrivers(c *gin.Context) {
	var filter models.TopFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid limit parameter")
		return
	}

	drivers, presets, err := h.dispatchService.TopDrivers(filter.Limit)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, topDriversResponse{
		Drivers: mapViews(drivers, newDriverView),
		Presets: presets,
	})
}

type driverDetailsResponse struct {
	DriverName string            `json:"driver_name"`
	Summary    *driverView       `json:"summary"`
	Routes     []driverRouteView `json:"routes"`
}

// GetDriverDetails handles GET /api/v1/drivers/:name/details
func (h *DriverHandler) GetDriverDetails(c *gin.Context) {
	name := c.Param("name")

	profile, err := h.dispatchService.DriverProfile(name)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := driverDetailsResponse{
		DriverName: name,
		Routes:     mapViews(profile.Routes, newDriverRouteView),
	}
	if profile.Summary != nil {
		v := newDriverView(*profile.Summary)
		resp.Summary = &v
	}
	response.Success(c, resp)
}
