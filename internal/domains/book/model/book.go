package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
	"time"
)

// MinInitialStock is the smallest quantity a new catalog entry may
// start with. Listings below this threshold are rejected.
const MinInitialStock = 16

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Book is a catalog entry. Quantity is the available stock and is
// never negative.
type Book struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Author      string          `json:"author"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Logo        string          `json:"logo"`
	Quantity    int             `json:"quantity"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type CreateBookRequest struct {
	Name        string          `json:"name"`
	Author      string          `json:"author"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Logo        string          `json:"logo"`
	Quantity    int             `json:"quantity"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Author, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
		validation.Field(&r.Quantity, validation.Min(0)),
	)
}

type UpdateBookRequest struct {
	Name        string          `json:"name"`
	Author      string          `json:"author"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Logo        string          `json:"logo"`
	Quantity    int             `json:"quantity"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Author, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
		validation.Field(&r.Quantity, validation.Min(0)),
	)
}
