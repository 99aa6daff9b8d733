package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vsinha/demandplan/pkg/application/services/planning"
	"github.com/vsinha/demandplan/pkg/application/services/tracking"
	"github.com/vsinha/demandplan/pkg/domain/entities"
	"github.com/vsinha/demandplan/pkg/infrastructure/events"
	"github.com/vsinha/demandplan/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/demandplan/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/demandplan/pkg/interfaces/cli/output"
)

// Config holds configuration for the plan command
type Config struct {
	ProductsFile   string
	SalesFile      string
	HistoryDays    int
	WindowDays     int
	HorizonDays    int
	TopK           int
	HistoryProduct string
	Format         string
	Verbose        bool
	Help           bool
}

// PlanCommand loads a catalog and sales history from CSV files, replays the
// sales onto the circular history store, and renders the demand plan.
type PlanCommand struct {
	config Config
	log    *logrus.Logger
}

// NewPlanCommand creates a new plan command with the given configuration
func NewPlanCommand(config Config) *PlanCommand {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if config.Verbose {
		log.SetLevel(logrus.InfoLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return &PlanCommand{config: config, log: log}
}

// Execute runs the plan command
func (c *PlanCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}
	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	history, err := memory.NewSalesHistoryRepository(c.config.HistoryDays)
	if err != nil {
		return err
	}
	catalog, err := memory.NewCatalogRepository(history, 16)
	if err != nil {
		return err
	}
	store := events.NewInMemoryEventStore()
	tracker := tracking.NewTrackingService(catalog, history, store, c.log)

	loader := csv.NewLoader()

	products, err := loader.LoadProducts(c.config.ProductsFile)
	if err != nil {
		return fmt.Errorf("error loading products: %w", err)
	}
	for _, product := range products {
		if _, err := tracker.RegisterProduct(product.Name, product.Stock, product.UnitCost, product.UnitPrice); err != nil {
			return fmt.Errorf("error registering %q: %w", product.Name, err)
		}
	}
	c.log.WithField("products", len(products)).Info("catalog loaded")

	if c.config.SalesFile != "" {
		days, err := loader.LoadSales(c.config.SalesFile)
		if err != nil {
			return fmt.Errorf("error loading sales: %w", err)
		}
		if err := replaySales(tracker, days); err != nil {
			return err
		}
		c.log.WithFields(logrus.Fields{
			"days":  len(days),
			"today": history.Today(),
		}).Info("sales history replayed")
	}

	planner := planning.NewPlanner(catalog, history)
	result, err := planner.BuildReport(c.config.WindowDays, c.config.HorizonDays, c.config.TopK)
	if err != nil {
		return fmt.Errorf("error building plan: %w", err)
	}

	if c.config.HistoryProduct != "" {
		productHistory, err := planner.HistoryFor(entities.ProductName(c.config.HistoryProduct))
		if err != nil {
			return fmt.Errorf("error reading history: %w", err)
		}
		result.Histories = append(result.Histories, *productHistory)
	}

	return output.Render(result, output.Config{Format: c.config.Format})
}

// replaySales feeds grouped daily sales into the tracker, advancing the
// timeline between day groups. Gaps between day numbers become empty days.
func replaySales(tracker *tracking.TrackingService, days []csv.DaySales) error {
	for i, day := range days {
		if i > 0 {
			for step := days[i-1].Day; step < day.Day; step++ {
				tracker.AdvanceDay()
			}
		}
		for _, sale := range day.Sales {
			if err := tracker.RecordSale(sale.Product, sale.Quantity); err != nil {
				return fmt.Errorf("day %d: %w", day.Day, err)
			}
		}
	}
	return nil
}

func (c *PlanCommand) validateInputs() error {
	if c.config.ProductsFile == "" {
		return fmt.Errorf("products file is required (use -products)")
	}
	if _, err := os.Stat(c.config.ProductsFile); err != nil {
		return fmt.Errorf("products file not accessible: %w", err)
	}
	if c.config.SalesFile != "" {
		if _, err := os.Stat(c.config.SalesFile); err != nil {
			return fmt.Errorf("sales file not accessible: %w", err)
		}
	}
	if c.config.HistoryDays <= 0 {
		return fmt.Errorf("history days must be positive, got %d", c.config.HistoryDays)
	}
	if c.config.WindowDays <= 0 {
		return fmt.Errorf("window days must be positive, got %d", c.config.WindowDays)
	}
	if c.config.HorizonDays < 0 {
		return fmt.Errorf("horizon days cannot be negative, got %d", c.config.HorizonDays)
	}
	if c.config.TopK <= 0 {
		return fmt.Errorf("top-k must be positive, got %d", c.config.TopK)
	}
	return nil
}

func (c *PlanCommand) showHelp() {
	fmt.Println(`demandplan - rolling sales history and short-horizon demand planning

Usage:
  demandplan -products products.csv [-sales sales.csv] [options]

Input files:
  products.csv: name,stock,unit_cost,unit_price
  sales.csv:    day,product,qty   (day numbers non-decreasing)

Options:
  -products string   Path to products CSV file (required)
  -sales string      Path to sales CSV file
  -history-days int  Sales history retention window (default 30)
  -window int        Moving average window in days (default 7)
  -horizon int       Forecast horizon in days (default 14)
  -top int           Number of products in the demand ranking (default 5)
  -show-history string  Print retained history for one product
  -format string     Output format: text, json (default text)
  -verbose           Enable verbose output
  -help              Show this help message`)
}
