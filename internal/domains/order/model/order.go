package model

import (
	"github.com/shopspring/decimal"
	"time"
)

const (
	StatusPlaced    = "PLACED"
	StatusCancelled = "CANCELLED"
)

// Order is a placed purchase. Line prices are snapshots taken at
// placement time; later catalog price changes do not affect them.
type Order struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	Status    string          `json:"status"`
	Total     decimal.Decimal `json:"total"`
	Items     []OrderItem     `json:"items"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"order_id"`
	BookID    int64           `json:"book_id"`
	BookName  string          `json:"book_name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}
