package analysis

import (
	"sort"

	"github.com/jengzang/dispatch-backend-go/internal/city"
	"github.com/jengzang/dispatch-backend-go/internal/models"
	"github.com/jengzang/dispatch-backend-go/internal/stats"
)

// Fleet summarizes vehicle brands, models and route popularity across all
// trips. limit caps each list; limit <= 0 keeps everything.
func (e *Engine) Fleet(limit int) models.FleetOverview {
	trips := e.tables.Trips
	overview := models.FleetOverview{
		TotalTrips:  len(trips),
		Brands:      []models.BrandCount{},
		BrandPrices: []models.BrandPrice{},
		Models:      []models.ModelStat{},
		Routes:      []models.RoutePopularity{},
	}

	type brandAcc struct {
		trips  int
		prices []float64
	}
	type routeAcc struct {
		trips       int
		price, cost float64
	}

	var (
		priceSum, costSum float64
		brands            = make(map[string]*brandAcc)
		brandOrder        []string
		modelStats        = make(map[string]*brandAcc)
		modelOrder        []string
		routes            = make(map[string]*routeAcc)
		routeOrder        []string
	)

	for _, t := range trips {
		price, hasPrice := t.Price()
		cost, hasCost := t.Cost()
		priceSum += price
		costSum += cost

		if t.VehicleBrand != "" {
			overview.VehicleTrips++
			b, ok := brands[t.VehicleBrand]
			if !ok {
				b = &brandAcc{}
				brands[t.VehicleBrand] = b
				brandOrder = append(brandOrder, t.VehicleBrand)
			}
			b.trips++
			if hasPrice {
				b.prices = append(b.prices, price)
			}
		}

		if v := t.Vehicle(); v != "" {
			m, ok := modelStats[v]
			if !ok {
				m = &brandAcc{}
				modelStats[v] = m
				modelOrder = append(modelOrder, v)
			}
			m.trips++
			if hasPrice {
				m.prices = append(m.prices, price)
			}
		}

		origin, dest := city.Route(t)
		if origin != "" || dest != "" {
			key := models.RouteKey(origin, dest)
			r, ok := routes[key]
			if !ok {
				r = &routeAcc{}
				routes[key] = r
				routeOrder = append(routeOrder, key)
			}
			r.trips++
			if hasPrice {
				r.price += price
			}
			if hasCost {
				r.cost += cost
			}
		}
	}

	overview.AvgPrice = stats.SafeDiv(priceSum, len(trips))
	overview.AvgCost = stats.SafeDiv(costSum, len(trips))

	for _, name := range brandOrder {
		b := brands[name]
		overview.Brands = append(overview.Brands, models.BrandCount{
			Brand: name,
			Trips: b.trips,
			Share: stats.SafeDiv(float64(b.trips)*100, len(trips)),
		})
		if len(b.prices) > 0 {
			overview.BrandPrices = append(overview.BrandPrices, models.BrandPrice{
				Brand:    name,
				AvgPrice: stats.Mean(b.prices),
			})
		}
	}
	sort.SliceStable(overview.Brands, func(i, j int) bool {
		return overview.Brands[i].Trips > overview.Brands[j].Trips
	})
	sort.SliceStable(overview.BrandPrices, func(i, j int) bool {
		return overview.BrandPrices[i].AvgPrice > overview.BrandPrices[j].AvgPrice
	})

	for _, name := range modelOrder {
		m := modelStats[name]
		overview.Models = append(overview.Models, models.ModelStat{
			Model:    name,
			Trips:    m.trips,
			AvgPrice: stats.Mean(m.prices),
		})
	}
	sort.SliceStable(overview.Models, func(i, j int) bool {
		return overview.Models[i].Trips > overview.Models[j].Trips
	})

	for _, key := range routeOrder {
		r := routes[key]
		overview.Routes = append(overview.Routes, models.RoutePopularity{
			Route:    key,
			Trips:    r.trips,
			AvgPrice: stats.SafeDiv(r.price, r.trips),
			AvgCost:  stats.SafeDiv(r.cost, r.trips),
		})
	}
	sort.SliceStable(overview.Routes, func(i, j int) bool {
		return overview.Routes[i].Trips > overview.Routes[j].Trips
	})

	if limit > 0 {
		overview.Brands = truncate(overview.Brands, limit)
		overview.BrandPrices = truncate(overview.BrandPrices, limit)
		overview.Models = truncate(overview.Models, limit)
		overview.Routes = truncate(overview.Routes, limit)
	}
	return overview
}

func truncate[T any](rows []T, n int) []T {
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}
