package entities

import "errors"

// Sentinel errors for the recoverable failure modes of the catalog and
// sales history. Callers match them with errors.Is after %w wrapping.
var (
	// ErrProductNotFound indicates an unknown product name
	ErrProductNotFound = errors.New("product not found")

	// ErrProductExists indicates a duplicate registration (case-insensitive)
	ErrProductExists = errors.New("product already exists")

	// ErrInvalidQuantity indicates a non-positive sale quantity
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrInvalidHorizon indicates a negative forecast horizon
	ErrInvalidHorizon = errors.New("horizon days cannot be negative")
)
