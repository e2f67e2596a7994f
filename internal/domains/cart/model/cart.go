package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
	"time"
)

// CartItem is one line in a user's cart. At most one line exists per
// (user, book) pair; adding the same book again grows the line.
type CartItem struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	BookID    int64           `json:"book_id"`
	BookName  string          `json:"book_name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type AddToCartRequest struct {
	BookID   int64 `json:"book_id"`
	Quantity int   `json:"quantity"`
}

func (r AddToCartRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BookID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Quantity, validation.Required, validation.Min(1)),
	)
}
