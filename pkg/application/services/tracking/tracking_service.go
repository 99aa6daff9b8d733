package tracking

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/vsinha/demandplan/pkg/domain/entities"
	"github.com/vsinha/demandplan/pkg/domain/repositories"
	"github.com/vsinha/demandplan/pkg/infrastructure/events"
)

// TrackingService is the write-side of the system: it orchestrates product
// registration, sale recording, and timeline advancement across the catalog
// and the sales history, and appends a domain event for every mutation.
// Recording a sale applies the dual stock policy: stock is reduced
// immediately (and may go negative, tracking a backorder), while the history
// bucket accumulates the sold quantity for forecasting.
type TrackingService struct {
	catalog repositories.CatalogRepository
	history repositories.SalesHistoryRepository
	store   events.EventStore
	log     *logrus.Entry
}

// NewTrackingService creates a tracking service. The event store is
// optional; pass nil to skip event emission.
func NewTrackingService(
	catalog repositories.CatalogRepository,
	history repositories.SalesHistoryRepository,
	store events.EventStore,
	log *logrus.Logger,
) *TrackingService {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}
	return &TrackingService{
		catalog: catalog,
		history: history,
		store:   store,
		log:     log.WithField("component", "tracking"),
	}
}

// RegisterProduct adds a product to the catalog, allocating its history row
func (s *TrackingService) RegisterProduct(
	name entities.ProductName,
	initialStock entities.Quantity,
	unitCost, unitPrice decimal.Decimal,
) (int, error) {
	index, err := s.catalog.Register(name, initialStock, unitCost, unitPrice)
	if err != nil {
		return -1, err
	}

	s.log.WithFields(logrus.Fields{
		"product": name,
		"index":   index,
		"stock":   initialStock,
	}).Info("registered product")

	product, err := s.catalog.Get(index)
	if err != nil {
		return -1, err
	}
	s.emit(events.NewProductRegisteredEvent(product, index))
	return index, nil
}

// RecordSale records qty units sold today for a product. The quantity is
// validated before any state changes, so a rejected sale leaves both stock
// and history untouched.
func (s *TrackingService) RecordSale(name entities.ProductName, qty entities.Quantity) error {
	index, err := s.catalog.FindIndex(name)
	if err != nil {
		return err
	}
	if qty <= 0 {
		return fmt.Errorf("sale of %d units of %q: %w", qty, name, entities.ErrInvalidQuantity)
	}

	if err := s.catalog.ReduceStock(index, qty); err != nil {
		return err
	}
	if err := s.history.RecordToday(index, qty); err != nil {
		return err
	}

	product, err := s.catalog.Get(index)
	if err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"product": name,
		"qty":     qty,
		"day":     s.history.Today(),
		"stock":   product.Stock,
	}).Info("recorded sale")

	s.emit(events.NewSaleRecordedEvent(product.Name, qty, s.history.Today(), product.Stock))
	return nil
}

// AdvanceDay moves the shared timeline forward one day, expiring the bucket
// that falls out of the retention window in every history row.
func (s *TrackingService) AdvanceDay() {
	s.history.AdvanceDay()
	s.log.WithField("day", s.history.Today()).Debug("advanced day")
	s.emit(events.NewDayAdvancedEvent(s.history.Today()))
}

// SetStock replaces a product's stock level
func (s *TrackingService) SetStock(name entities.ProductName, stock entities.Quantity) error {
	index, err := s.catalog.FindIndex(name)
	if err != nil {
		return err
	}
	before, err := s.catalog.Get(index)
	if err != nil {
		return err
	}
	if err := s.catalog.SetStock(name, stock); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"product": name,
		"from":    before.Stock,
		"to":      stock,
	}).Info("adjusted stock")

	s.emit(events.NewStockAdjustedEvent(before.Name, before.Stock, stock))
	return nil
}

// SetPrices replaces a product's unit cost and unit price
func (s *TrackingService) SetPrices(name entities.ProductName, unitCost, unitPrice decimal.Decimal) error {
	index, err := s.catalog.FindIndex(name)
	if err != nil {
		return err
	}
	before, err := s.catalog.Get(index)
	if err != nil {
		return err
	}
	if err := s.catalog.SetPrices(name, unitCost, unitPrice); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"product": name,
		"cost":    unitCost,
		"price":   unitPrice,
	}).Info("updated prices")

	s.emit(events.NewPricesUpdatedEvent(before.Name, before.UnitCost, before.UnitPrice, unitCost, unitPrice))
	return nil
}

func (s *TrackingService) emit(event events.Event) {
	if s.store == nil {
		return
	}
	if err := s.store.AppendEvent(event.StreamID(), event); err != nil {
		s.log.WithError(err).WithField("event", event.Type()).Warn("event append failed")
	}
}
