package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/demandplan/pkg/domain/entities"
)

// PlanResult contains the complete output of a planning run
type PlanResult struct {
	WindowDays     int                     `json:"window_days"`
	HorizonDays    int                     `json:"horizon_days"`
	Snapshot       []ProductSummary        `json:"snapshot"`
	TopDemand      []entities.DemandRank   `json:"top_demand"`
	Reorders       []entities.ReorderEntry `json:"reorders"`
	ExpectedProfit decimal.Decimal         `json:"expected_profit"`
	Histories      []ProductHistory        `json:"histories,omitempty"`
}

// ProductSummary is one inventory snapshot row
type ProductSummary struct {
	Name         entities.ProductName `json:"name"`
	Stock        entities.Quantity    `json:"stock"`
	UnitCost     decimal.Decimal      `json:"unit_cost"`
	UnitPrice    decimal.Decimal      `json:"unit_price"`
	DailyAverage entities.Quantity    `json:"daily_average"`
}

// ProductHistory is a product's retained sales history in chronological
// order, labeled with logical day numbers.
type ProductHistory struct {
	Name entities.ProductName `json:"name"`
	Days []DaySales           `json:"days"`
}

// DaySales is the accumulated sales of one logical day
type DaySales struct {
	Day      int               `json:"day"`
	Quantity entities.Quantity `json:"quantity"`
}
