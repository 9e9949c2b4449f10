package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Common validation errors for Order
var (
	ErrZeroOrderDate      = errors.New("order date cannot be zero")
	ErrNegativeTotalPrice = errors.New("order total price cannot be negative")
)

// Order represents a placed order. UserID is nil for guest checkouts,
// matching the nullable "usersId" column.
type Order struct {
	ID          int64           `json:"id"`
	DateOrdered time.Time       `json:"date_ordered"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	UserID      *int64          `json:"user_id,omitempty"`
}

// NewOrder creates a new Order with the given order date and total.
// The ID is left zero; the store assigns it on insert.
// Returns an error if validation fails.
func NewOrder(dateOrdered time.Time, totalPrice decimal.Decimal, userID *int64) (*Order, error) {
	order := &Order{
		DateOrdered: dateOrdered,
		TotalPrice:  totalPrice,
		UserID:      userID,
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate checks if the Order has valid data.
func (o *Order) Validate() error {
	if o.DateOrdered.IsZero() {
		return ErrZeroOrderDate
	}

	if o.TotalPrice.IsNegative() {
		return ErrNegativeTotalPrice
	}

	return nil
}
