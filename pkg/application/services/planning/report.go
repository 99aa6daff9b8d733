package planning

import (
	"fmt"

	"github.com/vsinha/demandplan/pkg/application/dto"
	"github.com/vsinha/demandplan/pkg/domain/entities"
)

// BuildReport assembles the full planning output consumed by the reporting
// layer: inventory snapshot, top-demand ranking, reorder list, and expected
// profit for the given window and horizon.
func (p *Planner) BuildReport(windowDays, daysAhead, topK int) (*dto.PlanResult, error) {
	reorders, err := p.BuildReorderList(windowDays, daysAhead)
	if err != nil {
		return nil, err
	}
	profit, err := p.EstimateProfit(windowDays, daysAhead)
	if err != nil {
		return nil, err
	}

	products := p.catalog.Products()
	snapshot := make([]dto.ProductSummary, len(products))
	for i, product := range products {
		snapshot[i] = dto.ProductSummary{
			Name:         product.Name,
			Stock:        product.Stock,
			UnitCost:     product.UnitCost,
			UnitPrice:    product.UnitPrice,
			DailyAverage: p.DailyAverage(i, windowDays),
		}
	}

	return &dto.PlanResult{
		WindowDays:     windowDays,
		HorizonDays:    daysAhead,
		Snapshot:       snapshot,
		TopDemand:      p.TopByDemand(topK, windowDays),
		Reorders:       reorders,
		ExpectedProfit: profit,
	}, nil
}

// HistoryFor returns a product's retained sales history in chronological
// order with logical day labels. Reporting helper, name-addressed.
func (p *Planner) HistoryFor(name entities.ProductName) (*dto.ProductHistory, error) {
	index, err := p.catalog.FindIndex(name)
	if err != nil {
		return nil, err
	}
	window, err := p.history.Window(index)
	if err != nil {
		return nil, fmt.Errorf("history for %q: %w", name, err)
	}

	product, err := p.catalog.Get(index)
	if err != nil {
		return nil, err
	}

	firstDay := p.history.Today() - p.history.Capacity() + 1
	days := make([]dto.DaySales, len(window))
	for i, qty := range window {
		days[i] = dto.DaySales{Day: firstDay + i, Quantity: qty}
	}
	return &dto.ProductHistory{Name: product.Name, Days: days}, nil
}
