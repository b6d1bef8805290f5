package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/dispatch-backend-go/internal/format"
	"github.com/jengzang/dispatch-backend-go/internal/models"
	"github.com/jengzang/dispatch-backend-go/internal/service"
	"github.com/jengzang/dispatch-backend-go/pkg/response"
)

// RouteHandler handles HTTP requests for routes
type RouteHandler struct {
	dispatchService *service.DispatchService
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(dispatchService *service.DispatchService) *RouteHandler {
	return &RouteHandler{
		dispatchService: dispatchService,
	}
}

type topRoutesResponse struct {
	Routes  []routeView `json:"routes"`
	Presets []int       `json:"presets"`
}

// GetTopRoutes handles GET /api/v1/routes/top
func (h *RouteHandler) GetTopRoutes(c *gin.Context) {
	var filter models.TopFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid limit parameter")
		return
	}

	routes, presets, err := h.dispatchService.TopRoutes(filter.Limit)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, topRoutesResponse{
		Routes:  mapViews(routes, newRouteView),
		Presets: presets,
	})
}

type routeDetailsResponse struct {
	OriginCity    string            `json:"origin_city"`
	DestCity      string            `json:"dest_city"`
	TotalTrips    int               `json:"total_trips"`
	Cities        []string          `json:"cities"`
	CitiesDisplay string            `json:"cities_display"`
	Drivers       []routeDriverView `json:"drivers"`
}

// GetRouteDetails handles GET /api/v1/routes/details
func (h *RouteHandler) GetRouteDetails(c *gin.Context) {
	var filter models.RouteDetailsFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "origin and dest are required")
		return
	}

	details, err := h.dispatchService.RouteDetails(filter.Origin, filter.Dest)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, routeDetailsResponse{
		OriginCity:    details.OriginCity,
		DestCity:      details.DestCity,
		TotalTrips:    details.TotalTrips,
		Cities:        details.Cities,
		CitiesDisplay: format.CitiesPreview(details.Cities),
		Drivers:       mapViews(details.Drivers, newRouteDriverView),
	})
}
