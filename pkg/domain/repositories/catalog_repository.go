package repositories

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/demandplan/pkg/domain/entities"
)

// CatalogRepository provides access to product identity and attributes.
// Products are addressed by dense index in registration order; indices are
// stable because products are never removed.
type CatalogRepository interface {
	// Register adds a new product and returns its index. Fails with
	// entities.ErrProductExists when the name is already taken
	// (case-insensitive). Registration allocates a matching history row,
	// keeping catalog and sales history index-aligned.
	Register(
		name entities.ProductName,
		initialStock entities.Quantity,
		unitCost decimal.Decimal,
		unitPrice decimal.Decimal,
	) (int, error)

	// FindIndex resolves a product name to its index, case-insensitively.
	// Linear scan, O(n); entity counts are expected to be small.
	FindIndex(name entities.ProductName) (int, error)

	// Count returns the number of registered products
	Count() int

	// Get returns a copy of the product at the given index
	Get(index int) (entities.Product, error)

	// Products returns all products in registration order
	Products() []entities.Product

	// SetStock replaces the current stock level of a product
	SetStock(name entities.ProductName, stock entities.Quantity) error

	// SetPrices replaces the unit cost and unit price of a product
	SetPrices(name entities.ProductName, unitCost, unitPrice decimal.Decimal) error

	// ReduceStock subtracts sold units from the product at index. Stock may
	// go negative to represent backorders.
	ReduceStock(index int, qty entities.Quantity) error
}
