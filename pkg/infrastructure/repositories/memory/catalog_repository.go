package memory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vsinha/demandplan/pkg/domain/entities"
	"github.com/vsinha/demandplan/pkg/domain/repositories"
)

// CatalogRepository provides in-memory product storage. Attributes live in
// parallel slices indexed by registration order; registering a product also
// allocates its history row, so catalog index i and history row i always
// refer to the same product. Products are never removed, which is what keeps
// that alignment safe.
type CatalogRepository struct {
	names     []entities.ProductName
	stock     []entities.Quantity
	unitCost  []decimal.Decimal
	unitPrice []decimal.Decimal
	history   repositories.SalesHistoryRepository
}

// NewCatalogRepository creates a new in-memory catalog backed by the given
// sales history store. The history store must be empty: the catalog owns
// row allocation from here on.
func NewCatalogRepository(history repositories.SalesHistoryRepository, expectedProducts int) (*CatalogRepository, error) {
	if history == nil {
		return nil, fmt.Errorf("sales history repository is required")
	}
	if history.Rows() != 0 {
		return nil, fmt.Errorf("sales history already has %d rows, want an empty store", history.Rows())
	}
	return &CatalogRepository{
		names:     make([]entities.ProductName, 0, expectedProducts),
		stock:     make([]entities.Quantity, 0, expectedProducts),
		unitCost:  make([]decimal.Decimal, 0, expectedProducts),
		unitPrice: make([]decimal.Decimal, 0, expectedProducts),
		history:   history,
	}, nil
}

// Verify interface compliance
var _ repositories.CatalogRepository = (*CatalogRepository)(nil)

// Register adds a new product and allocates its zero-filled history row
func (r *CatalogRepository) Register(
	name entities.ProductName,
	initialStock entities.Quantity,
	unitCost decimal.Decimal,
	unitPrice decimal.Decimal,
) (int, error) {
	product, err := entities.NewProduct(name, initialStock, unitCost, unitPrice)
	if err != nil {
		return -1, err
	}
	if _, err := r.FindIndex(name); err == nil {
		return -1, fmt.Errorf("product %q: %w", name, entities.ErrProductExists)
	}

	index := len(r.names)
	r.names = append(r.names, product.Name)
	r.stock = append(r.stock, product.Stock)
	r.unitCost = append(r.unitCost, product.UnitCost)
	r.unitPrice = append(r.unitPrice, product.UnitPrice)

	row := r.history.Allocate()
	if row != index {
		return -1, fmt.Errorf("catalog index %d and history row %d out of alignment", index, row)
	}
	return index, nil
}

// FindIndex resolves a product name case-insensitively. Linear scan.
func (r *CatalogRepository) FindIndex(name entities.ProductName) (int, error) {
	for i, existing := range r.names {
		if strings.EqualFold(string(existing), string(name)) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("product %q: %w", name, entities.ErrProductNotFound)
}

// Count returns the number of registered products
func (r *CatalogRepository) Count() int {
	return len(r.names)
}

// Get returns a copy of the product at the given index
func (r *CatalogRepository) Get(index int) (entities.Product, error) {
	if index < 0 || index >= len(r.names) {
		return entities.Product{}, fmt.Errorf("product index %d out of range (%d products)", index, len(r.names))
	}
	return entities.Product{
		Name:      r.names[index],
		Stock:     r.stock[index],
		UnitCost:  r.unitCost[index],
		UnitPrice: r.unitPrice[index],
	}, nil
}

// Products returns all products in registration order
func (r *CatalogRepository) Products() []entities.Product {
	products := make([]entities.Product, len(r.names))
	for i := range r.names {
		products[i] = entities.Product{
			Name:      r.names[i],
			Stock:     r.stock[i],
			UnitCost:  r.unitCost[i],
			UnitPrice: r.unitPrice[i],
		}
	}
	return products
}

// SetStock replaces the current stock level of a product
func (r *CatalogRepository) SetStock(name entities.ProductName, stock entities.Quantity) error {
	index, err := r.FindIndex(name)
	if err != nil {
		return err
	}
	r.stock[index] = stock
	return nil
}

// SetPrices replaces the unit cost and unit price of a product
func (r *CatalogRepository) SetPrices(name entities.ProductName, unitCost, unitPrice decimal.Decimal) error {
	index, err := r.FindIndex(name)
	if err != nil {
		return err
	}
	if unitCost.IsNegative() {
		return fmt.Errorf("unit cost cannot be negative, got %s", unitCost)
	}
	if unitPrice.IsNegative() {
		return fmt.Errorf("unit price cannot be negative, got %s", unitPrice)
	}
	r.unitCost[index] = unitCost
	r.unitPrice[index] = unitPrice
	return nil
}

// ReduceStock subtracts sold units from a product. Stock may go negative:
// a backorder is tracked but never counted as sellable inventory.
func (r *CatalogRepository) ReduceStock(index int, qty entities.Quantity) error {
	if index < 0 || index >= len(r.names) {
		return fmt.Errorf("product index %d out of range (%d products)", index, len(r.names))
	}
	if qty <= 0 {
		return fmt.Errorf("sale quantity %d: %w", qty, entities.ErrInvalidQuantity)
	}
	r.stock[index] -= qty
	return nil
}
