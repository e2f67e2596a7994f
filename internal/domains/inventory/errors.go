package inventory

import "errors"

var (
	// ErrInsufficientStock means the requested quantity exceeds what is
	// available. Stock is left untouched.
	ErrInsufficientStock = errors.New("insufficient stock")

	ErrBookNotFound = errors.New("book not found")

	ErrInvalidQuantity = errors.New("quantity must be positive")
)
