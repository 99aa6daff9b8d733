package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProductName identifies a product in the catalog. Name comparisons are
// case-insensitive everywhere in the system.
type ProductName string

// Quantity represents an integer count of discrete sale units
type Quantity int64

// Product represents a catalog product with its pricing and stock attributes.
// Stock is signed: a negative value represents backordered units.
type Product struct {
	Name      ProductName     `json:"name"`
	Stock     Quantity        `json:"stock"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// NewProduct creates a validated Product
func NewProduct(name ProductName, stock Quantity, unitCost, unitPrice decimal.Decimal) (*Product, error) {
	if string(name) == "" {
		return nil, fmt.Errorf("product name cannot be empty")
	}
	if unitCost.IsNegative() {
		return nil, fmt.Errorf("unit cost cannot be negative, got %s", unitCost)
	}
	if unitPrice.IsNegative() {
		return nil, fmt.Errorf("unit price cannot be negative, got %s", unitPrice)
	}

	return &Product{
		Name:      name,
		Stock:     stock,
		UnitCost:  unitCost,
		UnitPrice: unitPrice,
	}, nil
}

// UnitMargin returns price minus cost for a single unit
func (p *Product) UnitMargin() decimal.Decimal {
	return p.UnitPrice.Sub(p.UnitCost)
}
