package model

import "errors"

var (
	ErrAlreadyInWishList    = errors.New("book already in wishlist")
	ErrWishlistItemNotFound = errors.New("wishlist item not found")
)
