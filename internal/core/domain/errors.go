package domain

import "errors"

// Failure kinds shared by every fallible operation in the store.
// Callers discriminate with errors.Is; operations wrap these with
// fmt.Errorf("...: %w", ...) to add detail.
var (
	// ErrValidation means the caller supplied a value violating a
	// precondition (negative price, non-positive quantity, malformed
	// email, unknown status).
	ErrValidation = errors.New("validation failed")

	// ErrNotFound means the requested entity is not in the relevant
	// collection.
	ErrNotFound = errors.New("not found")

	// ErrOutOfStock means an item cannot be added because its product
	// is marked out of stock.
	ErrOutOfStock = errors.New("out of stock")
)
