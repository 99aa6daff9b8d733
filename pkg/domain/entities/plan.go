package entities

import "github.com/shopspring/decimal"

// ReorderEntry recommends replenishment for a product whose forecasted
// horizon demand exceeds its current stock. Computed fresh on each query,
// never stored.
type ReorderEntry struct {
	Name      ProductName     `json:"name"`
	NeededQty Quantity        `json:"needed_qty"`
	EstCost   decimal.Decimal `json:"est_cost"`
}

// DemandRank is one row of a top-demand ranking
type DemandRank struct {
	Name         ProductName `json:"name"`
	Index        int         `json:"index"`
	DailyAverage Quantity    `json:"daily_average"`
	Stock        Quantity    `json:"stock"`
}
