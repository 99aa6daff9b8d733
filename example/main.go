package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/vsinha/demandplan/pkg/application/services/planning"
	"github.com/vsinha/demandplan/pkg/application/services/tracking"
	"github.com/vsinha/demandplan/pkg/domain/entities"
	"github.com/vsinha/demandplan/pkg/infrastructure/events"
	"github.com/vsinha/demandplan/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/demandplan/pkg/interfaces/cli/output"
)

func main() {
	history, err := memory.NewSalesHistoryRepository(memory.DefaultHistoryDays)
	if err != nil {
		fmt.Printf("❌ setup failed: %v\n", err)
		return
	}
	catalog, err := memory.NewCatalogRepository(history, 8)
	if err != nil {
		fmt.Printf("❌ setup failed: %v\n", err)
		return
	}

	store := events.NewInMemoryEventStore()
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	tracker := tracking.NewTrackingService(catalog, history, store, log)

	// Sample catalog
	mustRegister(tracker, "Widget A", 120, "2.50", "5.00")
	mustRegister(tracker, "Gadget B", 30, "8.00", "12.50")
	mustRegister(tracker, "Coffee Beans", 50, "6.00", "10.00")
	mustRegister(tracker, "Notebook", 200, "0.70", "1.50")

	// Simulate sales over several days to build up history
	record(tracker, "Widget A", 12)
	record(tracker, "Gadget B", 3)
	record(tracker, "Coffee Beans", 5)
	record(tracker, "Notebook", 9)

	tracker.AdvanceDay()
	record(tracker, "Widget A", 10)
	record(tracker, "Gadget B", 4)
	record(tracker, "Coffee Beans", 8)
	record(tracker, "Notebook", 7)

	// A run of heavier Widget A days
	for i := 0; i < 5; i++ {
		tracker.AdvanceDay()
		record(tracker, "Widget A", entities.Quantity(15+i))
		record(tracker, "Gadget B", entities.Quantity(2+i%2))
		record(tracker, "Coffee Beans", entities.Quantity(3+i%3))
		record(tracker, "Notebook", entities.Quantity(5+i%4))
	}

	// Fill out the 14-day window
	for i := 0; i < 10; i++ {
		tracker.AdvanceDay()
		record(tracker, "Widget A", entities.Quantity(7+i%5))
		record(tracker, "Gadget B", entities.Quantity(1+i%3))
		record(tracker, "Coffee Beans", entities.Quantity(2+i%4))
		record(tracker, "Notebook", entities.Quantity(3+i%6))
	}

	planner := planning.NewPlanner(catalog, history)

	fmt.Println("🔮 Planning with a 7-day window over a 14-day horizon...")
	fmt.Println()

	result, err := planner.BuildReport(7, 14, 5)
	if err != nil {
		fmt.Printf("❌ planning failed: %v\n", err)
		return
	}
	widgetHistory, err := planner.HistoryFor("Widget A")
	if err != nil {
		fmt.Printf("❌ history read failed: %v\n", err)
		return
	}
	result.Histories = append(result.Histories, *widgetHistory)

	if err := output.Render(result, output.Config{Format: "text"}); err != nil {
		fmt.Printf("❌ render failed: %v\n", err)
		return
	}

	// Restock and reprice, then plan again
	fmt.Println()
	fmt.Println("🔁 After restocking Gadget B and repricing Coffee Beans:")
	fmt.Println()

	if err := tracker.SetStock("Gadget B", 60); err != nil {
		fmt.Printf("❌ restock failed: %v\n", err)
		return
	}
	if err := tracker.SetPrices("Coffee Beans", decimal.RequireFromString("5.50"), decimal.RequireFromString("9.50")); err != nil {
		fmt.Printf("❌ reprice failed: %v\n", err)
		return
	}

	result, err = planner.BuildReport(7, 14, 5)
	if err != nil {
		fmt.Printf("❌ planning failed: %v\n", err)
		return
	}
	if err := output.Render(result, output.Config{Format: "text"}); err != nil {
		fmt.Printf("❌ render failed: %v\n", err)
		return
	}

	recorded, _ := store.ReadAllEvents(0)
	fmt.Printf("\n📜 Recorded %d domain events. Demo complete.\n", len(recorded))
}

func mustRegister(tracker *tracking.TrackingService, name entities.ProductName, stock entities.Quantity, cost, price string) {
	_, err := tracker.RegisterProduct(name, stock,
		decimal.RequireFromString(cost), decimal.RequireFromString(price))
	if err != nil {
		panic(err)
	}
}

func record(tracker *tracking.TrackingService, name entities.ProductName, qty entities.Quantity) {
	if err := tracker.RecordSale(name, qty); err != nil {
		fmt.Printf("⚠️  sale not recorded for %s: %v\n", name, err)
	}
}
