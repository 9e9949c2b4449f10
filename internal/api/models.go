package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
}

// LoginRequest defines the payload for the user login endpoint.
// Accounts log in by username; email is a profile attribute.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID int64 `json:"user_id"`

	// Token is the JWT used for API authorization
	Token string `json:"token"`
}

// CreateProductRequest defines the payload for creating a catalog product.
// Price is decoded as a decimal so "19.99" survives exactly.
type CreateProductRequest struct {
	Name        string          `json:"name"        validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"    validate:"gte=0"`
	Category    string          `json:"category"    validate:"required"`
	Inventory   int             `json:"inventory"   validate:"gte=0"`
}

// UpdateProductRequest defines the payload for a partial product update.
// Only the fields present in the body are written.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Quantity    *int             `json:"quantity,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Inventory   *int             `json:"inventory,omitempty"`
}

// CreateOrderRequest defines the payload for placing an order.
// DateOrdered defaults to the current time when omitted; UserID is nil for
// guest checkouts.
type CreateOrderRequest struct {
	DateOrdered *time.Time      `json:"date_ordered,omitempty"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	UserID      *int64          `json:"user_id,omitempty"`
}

// AddCartProductRequest defines the payload for adding a product to an
// order's cart.
type AddCartProductRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}

// UpdateUserRequest defines the payload for a partial user update.
// A password present here is re-hashed before storage.
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty"    validate:"omitempty,email"`
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	Address  *string `json:"address,omitempty"`
	City     *string `json:"city,omitempty"`
	State    *string `json:"state,omitempty"`
	Zip      *string `json:"zip,omitempty"`
	IsAdmin  *bool   `json:"isAdmin,omitempty"`
	IsUser   *bool   `json:"isUser,omitempty"`
}
