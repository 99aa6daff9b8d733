package repositories

import "github.com/vsinha/demandplan/pkg/domain/entities"

// SalesHistoryRepository maintains a fixed-capacity ring of day-buckets per
// product row. All rows share a single logical timeline: one ring position is
// "today" for every row, and advancing the day rotates that position and
// expires the bucket that falls out of the retention window.
type SalesHistoryRepository interface {
	// Capacity returns the retention window length in days, fixed at
	// construction.
	Capacity() int

	// Rows returns the number of allocated history rows
	Rows() int

	// Allocate appends a zero-filled row sized to the capacity and returns
	// its index. Called once per product at registration time.
	Allocate() int

	// RecordToday accumulates qty into today's bucket for a row. Fails with
	// entities.ErrInvalidQuantity for qty <= 0. Same-day calls add up.
	RecordToday(row int, qty entities.Quantity) error

	// AdvanceDay rotates the shared timeline forward by one day, zeroing the
	// bucket that now represents today in every row. O(rows).
	AdvanceDay()

	// SumLastK sums the most recent k day-buckets of a row, counting today
	// as day 1. k is clamped to [0, Capacity]; k <= 0 or an out-of-range row
	// yields 0.
	SumLastK(row int, k int) entities.Quantity

	// Window returns a row's buckets in chronological order, oldest to
	// today. Reporting accessor, returns a copy.
	Window(row int) ([]entities.Quantity, error)

	// Today returns the logical day number represented by today's bucket
	Today() int

	// DayForColumn maps a ring column to its logical day number. Reporting
	// only; forecast math never depends on it.
	DayForColumn(col int) int
}
