package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
	"time"
)

// WishlistItem is a bookmarked book. Wishlisting does not touch stock.
type WishlistItem struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	BookID    int64           `json:"book_id"`
	BookName  string          `json:"book_name"`
	Author    string          `json:"author"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

type AddToWishlistRequest struct {
	BookID int64 `json:"book_id"`
}

func (r AddToWishlistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BookID, validation.Required, validation.Min(int64(1))),
	)
}
