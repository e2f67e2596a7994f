package model

import "errors"

var (
	// ErrOrderNotFound also covers orders owned by a different user.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderAlreadyCancelled rejects a second cancellation; cancelled
	// is a terminal state.
	ErrOrderAlreadyCancelled = errors.New("order already cancelled")
)
