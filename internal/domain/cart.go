package domain

import "errors"

// Common validation errors for CartItem
var (
	ErrEmptyCartOrderID   = errors.New("cart order ID cannot be empty")
	ErrEmptyCartProductID = errors.New("cart product ID cannot be empty")
)

// CartItem is an association row linking one order to one product.
// It has no identity beyond the (order, product) pair.
type CartItem struct {
	OrderID   int64 `json:"order_id"`
	ProductID int64 `json:"product_id"`
}

// NewCartItem creates a new CartItem linking the given order and product.
// Returns an error if validation fails.
func NewCartItem(orderID, productID int64) (*CartItem, error) {
	item := &CartItem{
		OrderID:   orderID,
		ProductID: productID,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the CartItem references valid identifiers.
func (c *CartItem) Validate() error {
	if c.OrderID <= 0 {
		return ErrEmptyCartOrderID
	}

	if c.ProductID <= 0 {
		return ErrEmptyCartProductID
	}

	return nil
}
