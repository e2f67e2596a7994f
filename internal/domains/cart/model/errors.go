package model

import "errors"

var (
	// ErrCartItemNotFound also covers items owned by a different user;
	// callers learn nothing about other users' carts.
	ErrCartItemNotFound = errors.New("cart item not found")

	ErrCartEmpty = errors.New("cart is empty")
)
