package store

import (
	"context"
	"database/sql"

	"github.com/graceshop/shop-api/internal/domain"
)

// OrderStore defines the interface for order data persistence.
//
// Deleting an order also removes its cart rows; that two-statement
// cascade lives in service.OrderService, which composes OrderStore and
// CartStore under one transaction via WithTx.
type OrderStore interface {
	// Create saves a new order to the store and assigns its generated
	// identifier to order.ID.
	Create(ctx context.Context, order *domain.Order) error

	// GetByID retrieves an order by its identifier.
	// Returns ErrOrderNotFound if the order does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Order, error)

	// List retrieves every order in a single query, ordered by identifier.
	List(ctx context.Context) ([]domain.Order, error)

	// ListByUser retrieves every order owned by the given user,
	// ordered by identifier.
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)

	// Delete removes the order row and returns the deleted record.
	// Returns ErrOrderNotFound if the order does not exist. Cart cleanup is
	// the caller's responsibility (see service.OrderService.DeleteOrder).
	Delete(ctx context.Context, id int64) (*domain.Order, error)

	// WithTx returns an OrderStore that runs against the provided transaction.
	WithTx(tx *sql.Tx) OrderStore
}

// CartStore defines the interface for the order/product association rows.
type CartStore interface {
	// AddProduct inserts an association row linking the order to the
	// product and returns the created row. Returns ErrInvalidEntity if
	// either side of the pair does not exist, or ErrDuplicate if the pair
	// is already present.
	AddProduct(ctx context.Context, orderID, productID int64) (*domain.CartItem, error)

	// ListProductsByOrder retrieves the full product rows referenced by the
	// given order's cart, in one query, ordered by product identifier.
	ListProductsByOrder(ctx context.Context, orderID int64) ([]domain.Product, error)

	// DeleteByOrder removes every cart row referencing the given order and
	// reports how many rows were removed. Removing zero rows is not an error.
	DeleteByOrder(ctx context.Context, orderID int64) (int64, error)

	// WithTx returns a CartStore that runs against the provided transaction.
	WithTx(tx *sql.Tx) CartStore
}
