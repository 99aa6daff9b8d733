package events

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/demandplan/pkg/domain/entities"
)

const (
	ProductRegisteredEvent = "product.registered"
	SaleRecordedEvent      = "sale.recorded"
	DayAdvancedEvent       = "day.advanced"
	StockAdjustedEvent     = "stock.adjusted"
	PricesUpdatedEvent     = "prices.updated"
)

type ProductRegistered struct {
	Product entities.Product `json:"product"`
	Index   int              `json:"index"`
}

type SaleRecorded struct {
	Name     entities.ProductName `json:"name"`
	Quantity entities.Quantity    `json:"quantity"`
	Day      int                  `json:"day"`
	NewStock entities.Quantity    `json:"new_stock"`
}

type DayAdvanced struct {
	Day int `json:"day"`
}

type StockAdjusted struct {
	Name     entities.ProductName `json:"name"`
	OldStock entities.Quantity    `json:"old_stock"`
	NewStock entities.Quantity    `json:"new_stock"`
}

type PricesUpdated struct {
	Name         entities.ProductName `json:"name"`
	OldUnitCost  decimal.Decimal      `json:"old_unit_cost"`
	OldUnitPrice decimal.Decimal      `json:"old_unit_price"`
	NewUnitCost  decimal.Decimal      `json:"new_unit_cost"`
	NewUnitPrice decimal.Decimal      `json:"new_unit_price"`
}

func NewProductRegisteredEvent(product entities.Product, index int) Event {
	return NewEvent(ProductRegisteredEvent, string(product.Name), ProductRegistered{
		Product: product,
		Index:   index,
	})
}

func NewSaleRecordedEvent(name entities.ProductName, qty entities.Quantity, day int, newStock entities.Quantity) Event {
	return NewEvent(SaleRecordedEvent, string(name), SaleRecorded{
		Name:     name,
		Quantity: qty,
		Day:      day,
		NewStock: newStock,
	})
}

func NewDayAdvancedEvent(day int) Event {
	return NewEvent(DayAdvancedEvent, "timeline", DayAdvanced{Day: day})
}

func NewStockAdjustedEvent(name entities.ProductName, oldStock, newStock entities.Quantity) Event {
	return NewEvent(StockAdjustedEvent, string(name), StockAdjusted{
		Name:     name,
		OldStock: oldStock,
		NewStock: newStock,
	})
}

func NewPricesUpdatedEvent(name entities.ProductName, oldCost, oldPrice, newCost, newPrice decimal.Decimal) Event {
	return NewEvent(PricesUpdatedEvent, string(name), PricesUpdated{
		Name:         name,
		OldUnitCost:  oldCost,
		OldUnitPrice: oldPrice,
		NewUnitCost:  newCost,
		NewUnitPrice: newPrice,
	})
}
