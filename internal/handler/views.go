package handler

import (
	"github.com/jengzang/dispatch-backend-go/internal/format"
	"github.com/jengzang/dispatch-backend-go/internal/models"
)

// Views pair raw values with their ru-RU display strings so clients can
// render rows without formatting logic.

type routeView struct {
	models.RouteSummary
	AvgCostDisplay   string `json:"avg_cost_display"`
	MinCostDisplay   string `json:"min_cost_display"`
	MaxCostDisplay   string `json:"max_cost_display"`
	TotalCostDisplay string `json:"total_cost_display"`
}

func newRouteView(r models.RouteSummary) routeView {
	return routeView{
		RouteSummary:     r,
		AvgCostDisplay:   format.CurrencyValue(r.AvgCost),
		MinCostDisplay:   format.CurrencyValue(r.MinCost),
		MaxCostDisplay:   format.CurrencyValue(r.MaxCost),
		TotalCostDisplay: format.CurrencyValue(r.TotalCost),
	}
}

type driverView struct {
	models.DriverSummary
	PhoneDisplay     string `json:"phone_display"`
	AvgCostDisplay   string `json:"avg_cost_display"`
	TotalCostDisplay string `json:"total_cost_display"`
}

func newDriverView(d models.DriverSummary) driverView {
	return driverView{
		DriverSummary:    d,
		PhoneDisplay:     format.Phone(d.DriverPhone),
		AvgCostDisplay:   format.CurrencyValue(d.AvgCost),
		TotalCostDisplay: format.CurrencyValue(d.TotalCost),
	}
}

type segmentView struct {
	models.RouteSegment
	CorridorDisplay string `json:"corridor_display"`
	PreviewDisplay  string `json:"preview_display"`
}

func newSegmentView(s models.RouteSegment) segmentView {
	return segmentView{
		RouteSegment:    s,
		CorridorDisplay: s.SegmentsText(),
		PreviewDisplay:  format.CitiesPreview(s.Segments),
	}
}

type driverRouteView struct {
	models.DriverRouteRollup
	AvgPriceDisplay  string `json:"avg_price_display"`
	AvgCostDisplay   string `json:"avg_cost_display"`
	AvgMarginDisplay string `json:"avg_margin_display"`
	LastDateDisplay  string `json:"last_date_display"`
	CitiesDisplay    string `json:"cities_display"`
}

func newDriverRouteView(r models.DriverRouteRollup) driverRouteView {
	return driverRouteView{
		DriverRouteRollup: r,
		AvgPriceDisplay:   format.CurrencyValue(r.AvgPrice),
		AvgCostDisplay:    format.CurrencyValue(r.AvgCost),
		AvgMarginDisplay:  format.CurrencyValue(r.AvgMargin),
		LastDateDisplay:   format.Date(r.LastDate, r.LastTime),
		CitiesDisplay:     format.CitiesPreview(r.Cities),
	}
}

type routeDriverView struct {
	models.RouteDriverRollup
	PhoneDisplay     string `json:"phone_display"`
	AvgPriceDisplay  string `json:"avg_price_display"`
	AvgCostDisplay   string `json:"avg_cost_display"`
	AvgMarginDisplay string `json:"avg_margin_display"`
	LastDateDisplay  string `json:"last_date_display"`
}

func newRouteDriverView(r models.RouteDriverRollup) routeDriverView {
	return routeDriverView{
		RouteDriverRollup: r,
		PhoneDisplay:      format.Phone(r.DriverPhone),
		AvgPriceDisplay:   format.CurrencyValue(r.AvgPrice),
		AvgCostDisplay:    format.CurrencyValue(r.AvgCost),
		AvgMarginDisplay:  format.CurrencyValue(r.AvgMargin),
		LastDateDisplay:   format.Date(r.LastDate, r.LastTime),
	}
}

func mapViews[T, V any](rows []T, view func(T) V) []V {
	out := make([]V, 0, len(rows))
	for _, r := range rows {
		out = append(out, view(r))
	}
	return out
}
