package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vsinha/demandplan/pkg/domain/entities"
)

// Loader handles loading catalog and sales data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// SaleRecord is one product/quantity pair within a day
type SaleRecord struct {
	Product  entities.ProductName
	Quantity entities.Quantity
}

// DaySales groups the sale records of one logical day, in file order
type DaySales struct {
	Day   int
	Sales []SaleRecord
}

// LoadProducts loads catalog products from a CSV file with header
// name,stock,unit_cost,unit_price.
func (l *Loader) LoadProducts(filename string) ([]*entities.Product, error) {
	records, err := readCSV(filename, []string{"name", "stock", "unit_cost", "unit_price"})
	if err != nil {
		return nil, fmt.Errorf("products CSV: %w", err)
	}

	var products []*entities.Product
	for i, record := range records {
		product, err := parseProduct(record)
		if err != nil {
			return nil, fmt.Errorf("products CSV row %d: %w", i+2, err)
		}
		products = append(products, product)
	}
	return products, nil
}

// LoadSales loads daily sales from a CSV file with header day,product,qty.
// Rows are grouped by day; day numbers must be non-decreasing so the caller
// can replay them against a history store, advancing the timeline between
// groups.
func (l *Loader) LoadSales(filename string) ([]DaySales, error) {
	records, err := readCSV(filename, []string{"day", "product", "qty"})
	if err != nil {
		return nil, fmt.Errorf("sales CSV: %w", err)
	}

	var days []DaySales
	lastDay := 0
	for i, record := range records {
		day, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("sales CSV row %d: invalid day %q: %w", i+2, record[0], err)
		}
		if day <= 0 {
			return nil, fmt.Errorf("sales CSV row %d: day must be positive, got %d", i+2, day)
		}
		if day < lastDay {
			return nil, fmt.Errorf("sales CSV row %d: day %d out of order after day %d", i+2, day, lastDay)
		}

		qty, err := strconv.ParseInt(strings.TrimSpace(record[2]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("sales CSV row %d: invalid qty %q: %w", i+2, record[2], err)
		}

		sale := SaleRecord{
			Product:  entities.ProductName(strings.TrimSpace(record[1])),
			Quantity: entities.Quantity(qty),
		}

		if len(days) == 0 || day != lastDay {
			days = append(days, DaySales{Day: day})
		}
		days[len(days)-1].Sales = append(days[len(days)-1].Sales, sale)
		lastDay = day
	}
	return days, nil
}

func parseProduct(record []string) (*entities.Product, error) {
	stock, err := strconv.ParseInt(strings.TrimSpace(record[1]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid stock %q: %w", record[1], err)
	}
	unitCost, err := decimal.NewFromString(strings.TrimSpace(record[2]))
	if err != nil {
		return nil, fmt.Errorf("invalid unit_cost %q: %w", record[2], err)
	}
	unitPrice, err := decimal.NewFromString(strings.TrimSpace(record[3]))
	if err != nil {
		return nil, fmt.Errorf("invalid unit_price %q: %w", record[3], err)
	}

	return entities.NewProduct(
		entities.ProductName(strings.TrimSpace(record[0])),
		entities.Quantity(stock),
		unitCost,
		unitPrice,
	)
}

func readCSV(filename string, expectedHeader []string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s must have header and at least one data row", filename)
	}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("%s header mismatch. Expected: %v, Got: %v", filename, expectedHeader, records[0])
	}
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("%s row %d: expected %d columns, got %d", filename, i+2, len(expectedHeader), len(record))
		}
	}
	return records[1:], nil
}

func validateHeader(header, expected []string) bool {
	if len(header) != len(expected) {
		return false
	}
	for i, field := range expected {
		if strings.TrimSpace(strings.ToLower(header[i])) != field {
			return false
		}
	}
	return true
}
