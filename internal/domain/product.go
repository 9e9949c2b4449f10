package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Common validation errors for Product
var (
	ErrEmptyProductName  = errors.New("product name cannot be empty")
	ErrNegativePrice     = errors.New("product price cannot be negative")
	ErrNegativeQuantity  = errors.New("product quantity cannot be negative")
	ErrNegativeInventory = errors.New("product inventory cannot be negative")
)

// Product represents a single item offered in the shop catalog.
// Price is a decimal because the column is NUMERIC; float64 would
// accumulate rounding errors on totals.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Category    string          `json:"category"`
	Inventory   int             `json:"inventory"`
}

// NewProduct creates a new Product with the given attributes.
// The ID is left zero; the store assigns it on insert.
// Returns an error if validation fails.
func NewProduct(
	name, description string,
	price decimal.Decimal,
	quantity int,
	category string,
	inventory int,
) (*Product, error) {
	product := &Product{
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
		Category:    category,
		Inventory:   inventory,
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate checks if the Product has valid data.
// Returns an error if any field fails validation.
func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrEmptyProductName
	}

	if p.Price.IsNegative() {
		return ErrNegativePrice
	}

	if p.Quantity < 0 {
		return ErrNegativeQuantity
	}

	if p.Inventory < 0 {
		return ErrNegativeInventory
	}

	return nil
}
