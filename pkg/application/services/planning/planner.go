package planning

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/vsinha/demandplan/pkg/domain/entities"
	"github.com/vsinha/demandplan/pkg/domain/repositories"
)

// Planner derives short-horizon demand forecasts, reorder quantities, and
// profit projections from the catalog and its rolling sales history. All
// results are computed fresh from current state on each call.
type Planner struct {
	catalog repositories.CatalogRepository
	history repositories.SalesHistoryRepository
}

// NewPlanner creates a planner over the given catalog and sales history.
// The two must be index-aligned, which holds whenever the history rows were
// allocated through catalog registration.
func NewPlanner(
	catalog repositories.CatalogRepository,
	history repositories.SalesHistoryRepository,
) *Planner {
	return &Planner{
		catalog: catalog,
		history: history,
	}
}

// DailyAverage returns the moving average of daily sales over the last
// windowDays, as an integer truncated toward zero. The window clamps to the
// history capacity; windowDays <= 0 yields 0.
func (p *Planner) DailyAverage(index int, windowDays int) entities.Quantity {
	if windowDays <= 0 {
		return 0
	}
	window := windowDays
	if capacity := p.history.Capacity(); window > capacity {
		window = capacity
	}
	return p.history.SumLastK(index, window) / entities.Quantity(window)
}

// HorizonTotal scales the daily average out to daysAhead future days. A
// negative horizon is a caller contract violation and returns
// entities.ErrInvalidHorizon rather than a silently negative forecast.
func (p *Planner) HorizonTotal(index int, windowDays, daysAhead int) (entities.Quantity, error) {
	if daysAhead < 0 {
		return 0, fmt.Errorf("horizon of %d days: %w", daysAhead, entities.ErrInvalidHorizon)
	}
	return p.DailyAverage(index, windowDays) * entities.Quantity(daysAhead), nil
}

// BuildReorderList recommends replenishment for every product whose
// forecasted horizon demand exceeds current stock. Entries follow product
// registration order; products with sufficient stock are omitted.
func (p *Planner) BuildReorderList(windowDays, daysAhead int) ([]entities.ReorderEntry, error) {
	if daysAhead < 0 {
		return nil, fmt.Errorf("horizon of %d days: %w", daysAhead, entities.ErrInvalidHorizon)
	}

	var reorders []entities.ReorderEntry
	for i, product := range p.catalog.Products() {
		predicted, err := p.HorizonTotal(i, windowDays, daysAhead)
		if err != nil {
			return nil, err
		}
		if predicted <= product.Stock {
			continue
		}
		needed := predicted - product.Stock
		reorders = append(reorders, entities.ReorderEntry{
			Name:      product.Name,
			NeededQty: needed,
			EstCost:   decimal.NewFromInt(int64(needed)).Mul(product.UnitCost),
		})
	}
	return reorders, nil
}

// EstimateProfit projects total profit over the horizon, counting only the
// sellable portion of forecasted demand: units that can ship from
// non-negative current stock. Backordered (negative) stock contributes zero
// sellable units.
func (p *Planner) EstimateProfit(windowDays, daysAhead int) (decimal.Decimal, error) {
	if daysAhead < 0 {
		return decimal.Zero, fmt.Errorf("horizon of %d days: %w", daysAhead, entities.ErrInvalidHorizon)
	}

	profit := decimal.Zero
	for i, product := range p.catalog.Products() {
		predicted, err := p.HorizonTotal(i, windowDays, daysAhead)
		if err != nil {
			return decimal.Zero, err
		}

		available := product.Stock
		if available < 0 {
			available = 0
		}
		sellable := predicted
		if sellable > available {
			sellable = available
		}

		profit = profit.Add(decimal.NewFromInt(int64(sellable)).Mul(product.UnitMargin()))
	}
	return profit, nil
}

// TopByDemand ranks products by daily average demand over the window,
// descending. The sort is stable: products with equal demand keep their
// registration order. k <= 0 yields an empty ranking; k beyond the product
// count returns everything.
func (p *Planner) TopByDemand(k int, windowDays int) []entities.DemandRank {
	if k <= 0 {
		return nil
	}

	products := p.catalog.Products()
	ranks := make([]entities.DemandRank, len(products))
	for i, product := range products {
		ranks[i] = entities.DemandRank{
			Name:         product.Name,
			Index:        i,
			DailyAverage: p.DailyAverage(i, windowDays),
			Stock:        product.Stock,
		}
	}

	sort.SliceStable(ranks, func(a, b int) bool {
		return ranks[a].DailyAverage > ranks[b].DailyAverage
	})

	if k < len(ranks) {
		ranks = ranks[:k]
	}
	return ranks
}
