package memory

import (
	"fmt"

	"github.com/vsinha/demandplan/pkg/domain/entities"
	"github.com/vsinha/demandplan/pkg/domain/repositories"
)

// DefaultHistoryDays is the default sales history retention window
const DefaultHistoryDays = 30

// SalesHistoryRepository provides in-memory circular sales history storage.
// Each row is a fixed-length bucket array addressed by (row, ring position);
// currentPos marks today's column for every row at once. The repository has
// no internal locking: the system assumes a single logical writer (callers
// needing concurrent access must wrap every operation that touches
// currentPos or bucket contents in one mutual-exclusion boundary).
type SalesHistoryRepository struct {
	capacity   int
	currentPos int
	startDay   int
	rows       [][]entities.Quantity
}

// NewSalesHistoryRepository creates a sales history store with the given
// retention capacity in days. Capacity is immutable once set.
func NewSalesHistoryRepository(capacity int) (*SalesHistoryRepository, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("history capacity must be positive, got %d", capacity)
	}
	return &SalesHistoryRepository{
		capacity: capacity,
		startDay: 1,
		rows:     [][]entities.Quantity{},
	}, nil
}

// Verify interface compliance
var _ repositories.SalesHistoryRepository = (*SalesHistoryRepository)(nil)

// Capacity returns the retention window length in days
func (r *SalesHistoryRepository) Capacity() int {
	return r.capacity
}

// Rows returns the number of allocated history rows
func (r *SalesHistoryRepository) Rows() int {
	return len(r.rows)
}

// Allocate appends a zero-filled row and returns its index. Existing rows
// are untouched; the new row joins the shared timeline at today's position.
func (r *SalesHistoryRepository) Allocate() int {
	r.rows = append(r.rows, make([]entities.Quantity, r.capacity))
	return len(r.rows) - 1
}

// RecordToday accumulates qty into today's bucket for a row
func (r *SalesHistoryRepository) RecordToday(row int, qty entities.Quantity) error {
	if row < 0 || row >= len(r.rows) {
		return fmt.Errorf("history row %d out of range (%d rows)", row, len(r.rows))
	}
	if qty <= 0 {
		return fmt.Errorf("sale quantity %d: %w", qty, entities.ErrInvalidQuantity)
	}
	r.rows[row][r.currentPos] += qty
	return nil
}

// AdvanceDay rotates the timeline forward by one day. The bucket now at
// currentPos held the oldest retained day; zeroing it expires that data.
// Runs in O(rows), one bucket write per row.
func (r *SalesHistoryRepository) AdvanceDay() {
	r.currentPos = (r.currentPos + 1) % r.capacity
	for i := range r.rows {
		r.rows[i][r.currentPos] = 0
	}
	r.startDay++
}

// SumLastK sums the most recent k day-buckets of a row, today counting as
// day 1. k is clamped to the capacity; k <= 0 or a bad row yields 0.
func (r *SalesHistoryRepository) SumLastK(row int, k int) entities.Quantity {
	if row < 0 || row >= len(r.rows) {
		return 0
	}
	if k <= 0 {
		return 0
	}
	if k > r.capacity {
		k = r.capacity
	}

	var sum entities.Quantity
	col := r.currentPos
	for i := 0; i < k; i++ {
		sum += r.rows[row][col]
		col = (col - 1 + r.capacity) % r.capacity
	}
	return sum
}

// Window returns a copy of a row's buckets in chronological order, oldest
// bucket first and today's bucket last.
func (r *SalesHistoryRepository) Window(row int) ([]entities.Quantity, error) {
	if row < 0 || row >= len(r.rows) {
		return nil, fmt.Errorf("history row %d out of range (%d rows)", row, len(r.rows))
	}

	window := make([]entities.Quantity, r.capacity)
	for offset := 0; offset < r.capacity; offset++ {
		col := (r.currentPos - (r.capacity - 1 - offset) + r.capacity) % r.capacity
		window[offset] = r.rows[row][col]
	}
	return window, nil
}

// Today returns the logical day number of today's bucket
func (r *SalesHistoryRepository) Today() int {
	return r.startDay + r.capacity - 1
}

// DayForColumn maps a ring column to its logical day number. The oldest
// retained column sits one position ahead of today; chronological offset is
// the forward distance from there to col.
func (r *SalesHistoryRepository) DayForColumn(col int) int {
	oldest := (r.currentPos + 1) % r.capacity
	chrono := ((col-oldest)%r.capacity + r.capacity) % r.capacity
	return r.startDay + chrono
}
