package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/dispatch-backend-go/internal/models"
	"github.com/jengzang/dispatch-backend-go/internal/service"
	"github.com/jengzang/dispatch-backend-go/pkg/response"
)

// SearchHandler handles corridor search and city suggestions
type SearchHandler struct {
	dispatchService *service.DispatchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(dispatchService *service.DispatchService) *SearchHandler {
	return &SearchHandler{
		dispatchService: dispatchService,
	}
}

type searchResponse struct {
	From    string        `json:"from"`
	To      string        `json:"to"`
	Found   bool          `json:"found"`
	Exact   []routeView   `json:"exact"`
	Partial []segmentView `json:"partial"`
	Zone    []driverView  `json:"zone"`
}

// Search handles GET /api/v1/search
func (h *SearchHandler) Search(c *gin.Context) {
	var filter models.SearchFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.dispatchService.Search(filter.From, filter.To)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, searchResponse{
		From:    filter.From,
		To:      filter.To,
		Found:   !result.Empty(),
		Exact:   mapViews(result.Exact, newRouteView),
		Partial: mapViews(result.Partial, newSegmentView),
		Zone:    mapViews(result.Zone, newDriverView),
	})
}

// Cities handles GET /api/v1/cities
func (h *SearchHandler) Cities(c *gin.Context) {
	var filter models.CityFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid limit parameter")
		return
	}

	cities, err := h.dispatchService.Cities(filter.Prefix, filter.Limit)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, cities)
}
