package model

import "errors"

var (
	ErrBookNotFound = errors.New("book not found")

	// ErrNoBooks marks a well-formed query that matched nothing.
	ErrNoBooks = errors.New("no books found")

	// ErrMinimumStock rejects new listings below MinInitialStock.
	ErrMinimumStock = errors.New("initial stock below minimum")

	ErrInvalidPrice = errors.New("price must be positive")
)
