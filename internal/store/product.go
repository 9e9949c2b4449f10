package store

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/graceshop/shop-api/internal/domain"
)

// ProductUpdate enumerates the updatable fields of a product. A nil field
// is left unchanged; statements are never built from caller-supplied keys.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Quantity    *int
	Category    *string
	Inventory   *int
}

// IsEmpty reports whether the update names no fields at all.
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil &&
		u.Quantity == nil && u.Category == nil && u.Inventory == nil
}

// ProductStore defines the interface for product data persistence.
type ProductStore interface {
	// Create saves a new product to the store and assigns its generated
	// identifier to product.ID.
	Create(ctx context.Context, product *domain.Product) error

	// GetByID retrieves a product by its identifier.
	// Returns ErrProductNotFound if the product does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// List retrieves every product in a single query, ordered by identifier.
	List(ctx context.Context) ([]domain.Product, error)

	// ListByCategory retrieves every product in the given category,
	// ordered by identifier.
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)

	// Update applies the non-nil fields of the update to the product and
	// returns the re-read, post-update record. An empty update skips the
	// write and just re-reads. Returns ErrProductNotFound if the product
	// does not exist.
	Update(ctx context.Context, id int64, update ProductUpdate) (*domain.Product, error)

	// Delete removes a product and returns the deleted record.
	// Returns ErrProductNotFound if the product does not exist.
	Delete(ctx context.Context, id int64) (*domain.Product, error)

	// WithTx returns a ProductStore that runs against the provided
	// transaction, for composing with other stores in one atomic unit.
	WithTx(tx *sql.Tx) ProductStore
}
