package planning

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/vsinha/demandplan/pkg/application/services/tracking"
	"github.com/vsinha/demandplan/pkg/domain/entities"
	"github.com/vsinha/demandplan/pkg/infrastructure/events"
	"github.com/vsinha/demandplan/pkg/infrastructure/repositories/memory"
)

// Drives the whole write path (tracking service) and read path (planner)
// together over a multi-week simulated timeline.
func TestPlanningOverSimulatedTimeline(t *testing.T) {
	history, err := memory.NewSalesHistoryRepository(memory.DefaultHistoryDays)
	if err != nil {
		t.Fatalf("history creation failed: %v", err)
	}
	catalog, err := memory.NewCatalogRepository(history, 4)
	if err != nil {
		t.Fatalf("catalog creation failed: %v", err)
	}
	store := events.NewInMemoryEventStore()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	tracker := tracking.NewTrackingService(catalog, history, store, log)

	register := func(name entities.ProductName, stock entities.Quantity, cost, price string) {
		t.Helper()
		if _, err := tracker.RegisterProduct(name, stock,
			decimal.RequireFromString(cost), decimal.RequireFromString(price)); err != nil {
			t.Fatalf("RegisterProduct(%s) failed: %v", name, err)
		}
	}
	register("Widget A", 120, "2.50", "5.00")
	register("Gadget B", 30, "8.00", "12.50")
	register("Coffee Beans", 50, "6.00", "10.00")
	register("Notebook", 200, "0.70", "1.50")

	// Two weeks of steady sales, one call per product per day
	for day := 0; day < 14; day++ {
		if day > 0 {
			tracker.AdvanceDay()
		}
		sales := []struct {
			name entities.ProductName
			qty  entities.Quantity
		}{
			{"Widget A", 12},
			{"Gadget B", 3},
			{"Coffee Beans", 5},
			{"Notebook", 9},
		}
		for _, sale := range sales {
			if err := tracker.RecordSale(sale.name, sale.qty); err != nil {
				t.Fatalf("Day %d: RecordSale(%s) failed: %v", day, sale.name, err)
			}
		}
	}

	planner := NewPlanner(catalog, history)

	// Steady rates survive the windowed average exactly
	wantDaily := []entities.Quantity{12, 3, 5, 9}
	for i, want := range wantDaily {
		if got := planner.DailyAverage(i, 7); got != want {
			t.Errorf("Product %d: DailyAverage = %d, want %d", i, got, want)
		}
	}

	// Stock has been drawn down by 14 days of sales: Widget A is already
	// backordered (120 - 168 = -48), so every forecast unit needs reordering.
	reorders, err := planner.BuildReorderList(7, 14)
	if err != nil {
		t.Fatalf("BuildReorderList failed: %v", err)
	}
	byName := make(map[entities.ProductName]entities.ReorderEntry)
	for _, entry := range reorders {
		byName[entry.Name] = entry
	}

	widget, ok := byName["Widget A"]
	if !ok {
		t.Fatal("Expected Widget A in reorder list")
	}
	// predicted 168, stock -48 -> need 216
	if widget.NeededQty != 216 {
		t.Errorf("Widget A needed = %d, want 216", widget.NeededQty)
	}
	if !widget.EstCost.Equal(decimal.RequireFromString("540.00")) {
		t.Errorf("Widget A est cost = %s, want 540.00", widget.EstCost)
	}

	// Notebook: predicted 126, stock 200 - 126 = 74 -> needs 52
	notebook, ok := byName["Notebook"]
	if !ok {
		t.Fatal("Expected Notebook in reorder list")
	}
	if notebook.NeededQty != 52 {
		t.Errorf("Notebook needed = %d, want 52", notebook.NeededQty)
	}

	// Profit counts only what non-negative stock can ship: Widget A sits at
	// -48 and contributes nothing despite the largest forecast.
	profit, err := planner.EstimateProfit(7, 14)
	if err != nil {
		t.Fatalf("EstimateProfit failed: %v", err)
	}
	// Gadget B: stock -12 -> 0. Coffee Beans: stock -20 -> 0.
	// Notebook: min(126, 74) = 74 at margin 0.80 -> 59.20
	if !profit.Equal(decimal.RequireFromString("59.20")) {
		t.Errorf("EstimateProfit = %s, want 59.20", profit)
	}

	// The event stream saw every mutation: 4 registrations, 13 day
	// advances, 56 sales.
	all, err := store.ReadAllEvents(0)
	if err != nil {
		t.Fatalf("ReadAllEvents failed: %v", err)
	}
	if len(all) != 4+13+56 {
		t.Errorf("Expected 73 events, got %d", len(all))
	}
}
