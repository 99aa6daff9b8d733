package testing

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/demandplan/pkg/domain/entities"
	"github.com/vsinha/demandplan/pkg/infrastructure/repositories/memory"
)

// BuildRetailTestData builds the retail sample scenario: a 30-day history
// store and a catalog with four products.
func BuildRetailTestData() (*memory.CatalogRepository, *memory.SalesHistoryRepository) {
	history, err := memory.NewSalesHistoryRepository(memory.DefaultHistoryDays)
	if err != nil {
		panic(err)
	}
	catalog, err := memory.NewCatalogRepository(history, 8)
	if err != nil {
		panic(err)
	}

	products := []struct {
		name  entities.ProductName
		stock entities.Quantity
		cost  string
		price string
	}{
		{"Widget A", 120, "2.50", "5.00"},
		{"Gadget B", 30, "8.00", "12.50"},
		{"Coffee Beans", 50, "6.00", "10.00"},
		{"Notebook", 200, "0.70", "1.50"},
	}
	for _, p := range products {
		_, err := catalog.Register(p.name, p.stock,
			decimal.RequireFromString(p.cost), decimal.RequireFromString(p.price))
		if err != nil {
			panic(err)
		}
	}

	return catalog, history
}

// RecordDays records one sale per day for a product, advancing the timeline
// between days. The first quantity lands on the current day.
func RecordDays(history *memory.SalesHistoryRepository, row int, quantities []entities.Quantity) error {
	for i, qty := range quantities {
		if i > 0 {
			history.AdvanceDay()
		}
		if err := history.RecordToday(row, qty); err != nil {
			return err
		}
	}
	return nil
}
