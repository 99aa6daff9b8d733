package tracking

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/vsinha/demandplan/pkg/domain/entities"
	"github.com/vsinha/demandplan/pkg/infrastructure/events"
	"github.com/vsinha/demandplan/pkg/infrastructure/repositories/memory"
)

func newTracker(t *testing.T) (*TrackingService, *memory.CatalogRepository, *memory.SalesHistoryRepository, *events.InMemoryEventStore) {
	t.Helper()
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
	return NewTrackingService(catalog, history, store, log), catalog, history, store
}

func TestRegisterProduct_EmitsEvent(t *testing.T) {
	tracker, catalog, history, store := newTracker(t)

	index, err := tracker.RegisterProduct("Widget A", 120,
		decimal.RequireFromString("2.50"), decimal.RequireFromString("5.00"))
	if err != nil {
		t.Fatalf("RegisterProduct failed: %v", err)
	}
	if index != 0 {
		t.Errorf("Expected index 0, got %d", index)
	}
	if catalog.Count() != 1 || history.Rows() != 1 {
		t.Errorf("Expected aligned catalog and history, got %d products %d rows",
			catalog.Count(), history.Rows())
	}

	recorded, err := store.ReadEvents("Widget A", 1)
	if err != nil {
		t.Fatalf("ReadEvents failed: %v", err)
	}
	if len(recorded) != 1 || recorded[0].Type() != events.ProductRegisteredEvent {
		t.Errorf("Expected one product.registered event, got %v", recorded)
	}
}

func TestRegisterProduct_DuplicateLeavesStateUnchanged(t *testing.T) {
	tracker, catalog, history, _ := newTracker(t)

	if _, err := tracker.RegisterProduct("Widget A", 120, decimal.NewFromInt(2), decimal.NewFromInt(5)); err != nil {
		t.Fatalf("RegisterProduct failed: %v", err)
	}
	_, err := tracker.RegisterProduct("widget a", 50, decimal.NewFromInt(1), decimal.NewFromInt(3))
	if !errors.Is(err, entities.ErrProductExists) {
		t.Fatalf("Expected ErrProductExists, got %v", err)
	}
	if catalog.Count() != 1 || history.Rows() != 1 {
		t.Errorf("Expected state unchanged after duplicate, got %d products %d rows",
			catalog.Count(), history.Rows())
	}
}

func TestRecordSale_DualStockPolicy(t *testing.T) {
	tracker, catalog, history, store := newTracker(t)
	if _, err := tracker.RegisterProduct("Gadget B", 3, decimal.NewFromInt(8), decimal.NewFromInt(12)); err != nil {
		t.Fatalf("RegisterProduct failed: %v", err)
	}

	// Selling past stock backorders the remainder but still counts the sale
	// in history at full quantity.
	if err := tracker.RecordSale("Gadget B", 5); err != nil {
		t.Fatalf("RecordSale failed: %v", err)
	}

	product, err := catalog.Get(0)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if product.Stock != -2 {
		t.Errorf("Expected backordered stock -2, got %d", product.Stock)
	}
	if got := history.SumLastK(0, 1); got != 5 {
		t.Errorf("Expected 5 units in today's bucket, got %d", got)
	}

	recorded, _ := store.ReadEvents("Gadget B", 1)
	var sawSale bool
	for _, event := range recorded {
		if event.Type() == events.SaleRecordedEvent {
			sawSale = true
		}
	}
	if !sawSale {
		t.Error("Expected a sale.recorded event")
	}
}

func TestRecordSale_InvalidInputsLeaveStateUntouched(t *testing.T) {
	tracker, catalog, history, _ := newTracker(t)
	if _, err := tracker.RegisterProduct("Notebook", 200, decimal.NewFromInt(1), decimal.NewFromInt(2)); err != nil {
		t.Fatalf("RegisterProduct failed: %v", err)
	}

	if err := tracker.RecordSale("Missing", 5); !errors.Is(err, entities.ErrProductNotFound) {
		t.Errorf("Expected ErrProductNotFound, got %v", err)
	}
	for _, qty := range []entities.Quantity{0, -4} {
		if err := tracker.RecordSale("Notebook", qty); !errors.Is(err, entities.ErrInvalidQuantity) {
			t.Errorf("Expected ErrInvalidQuantity for qty %d, got %v", qty, err)
		}
	}

	product, _ := catalog.Get(0)
	if product.Stock != 200 {
		t.Errorf("Expected stock unchanged at 200, got %d", product.Stock)
	}
	if got := history.SumLastK(0, 30); got != 0 {
		t.Errorf("Expected empty history, got sum %d", got)
	}
}

func TestAdvanceDay_EmitsTimelineEvent(t *testing.T) {
	tracker, _, history, store := newTracker(t)

	before := history.Today()
	tracker.AdvanceDay()
	if history.Today() != before+1 {
		t.Errorf("Expected day %d, got %d", before+1, history.Today())
	}

	recorded, _ := store.ReadEvents("timeline", 1)
	if len(recorded) != 1 || recorded[0].Type() != events.DayAdvancedEvent {
		t.Fatalf("Expected one day.advanced event, got %v", recorded)
	}
	payload, ok := recorded[0].Data().(events.DayAdvanced)
	if !ok {
		t.Fatalf("Expected DayAdvanced payload, got %T", recorded[0].Data())
	}
	if payload.Day != history.Today() {
		t.Errorf("Expected event day %d, got %d", history.Today(), payload.Day)
	}
}

func TestSetStockAndSetPrices_EmitEvents(t *testing.T) {
	tracker, catalog, _, store := newTracker(t)
	if _, err := tracker.RegisterProduct("Coffee Beans", 50,
		decimal.RequireFromString("6.00"), decimal.RequireFromString("10.00")); err != nil {
		t.Fatalf("RegisterProduct failed: %v", err)
	}

	if err := tracker.SetStock("Coffee Beans", 60); err != nil {
		t.Fatalf("SetStock failed: %v", err)
	}
	if err := tracker.SetPrices("Coffee Beans",
		decimal.RequireFromString("5.50"), decimal.RequireFromString("9.50")); err != nil {
		t.Fatalf("SetPrices failed: %v", err)
	}

	product, _ := catalog.Get(0)
	if product.Stock != 60 || !product.UnitCost.Equal(decimal.RequireFromString("5.50")) {
		t.Errorf("Expected updated attributes, got stock %d cost %s", product.Stock, product.UnitCost)
	}

	recorded, _ := store.ReadEvents("Coffee Beans", 1)
	types := make(map[string]int)
	for _, event := range recorded {
		types[event.Type()]++
	}
	if types[events.StockAdjustedEvent] != 1 || types[events.PricesUpdatedEvent] != 1 {
		t.Errorf("Expected stock.adjusted and prices.updated events, got %v", types)
	}

	if err := tracker.SetStock("Missing", 1); !errors.Is(err, entities.ErrProductNotFound) {
		t.Errorf("Expected ErrProductNotFound, got %v", err)
	}
}

func TestTrackingService_NilEventStore(t *testing.T) {
	history, err := memory.NewSalesHistoryRepository(memory.DefaultHistoryDays)
	if err != nil {
		t.Fatalf("history creation failed: %v", err)
	}
	catalog, err := memory.NewCatalogRepository(history, 4)
	if err != nil {
		t.Fatalf("catalog creation failed: %v", err)
	}
	tracker := NewTrackingService(catalog, history, nil, nil)

	if _, err := tracker.RegisterProduct("Widget A", 10, decimal.NewFromInt(1), decimal.NewFromInt(2)); err != nil {
		t.Fatalf("RegisterProduct without event store failed: %v", err)
	}
	if err := tracker.RecordSale("Widget A", 3); err != nil {
		t.Fatalf("RecordSale without event store failed: %v", err)
	}
	tracker.AdvanceDay()
}
