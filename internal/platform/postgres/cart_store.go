package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/graceshop/shop-api/internal/domain"
	"github.com/graceshop/shop-api/internal/platform/logger"
	"github.com/graceshop/shop-api/internal/store"
)

// PostgresCartStore implements the store.CartStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCartStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCartStore creates a new PostgreSQL implementation of the
// CartStore interface.
func NewPostgresCartStore(db store.DBTX, log *slog.Logger) *PostgresCartStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresCartStore{
		db:     db,
		logger: log.With(slog.String("component", "cart_store")),
	}
}

// Ensure PostgresCartStore implements store.CartStore interface
var _ store.CartStore = (*PostgresCartStore)(nil)

// WithTx returns a CartStore running against the provided transaction.
func (s *PostgresCartStore) WithTx(tx *sql.Tx) store.CartStore {
	return &PostgresCartStore{db: tx, logger: s.logger}
}

// AddProduct implements store.CartStore.AddProduct
// It inserts the association row and returns it. A missing order or
// product surfaces as store.ErrInvalidEntity via the foreign key mapping;
// re-adding an existing pair surfaces as store.ErrDuplicate.
func (s *PostgresCartStore) AddProduct(
	ctx context.Context,
	orderID, productID int64,
) (*domain.CartItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	item, err := domain.NewCartItem(orderID, productID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO cart ("orderId", "productId")
		VALUES ($1, $2)
		RETURNING "orderId", "productId"
	`
	err = s.db.QueryRowContext(ctx, query, orderID, productID).
		Scan(&item.OrderID, &item.ProductID)

	if err != nil {
		log.Error("failed to add product to cart",
			slog.String("error", err.Error()),
			slog.Int64("order_id", orderID),
			slog.Int64("product_id", productID))
		return nil, MapError(err)
	}

	log.Debug("product added to cart",
		slog.Int64("order_id", orderID),
		slog.Int64("product_id", productID))
	return item, nil
}

// ListProductsByOrder implements store.CartStore.ListProductsByOrder
// A single join resolves the order's cart to full product rows.
func (s *PostgresCartStore) ListProductsByOrder(
	ctx context.Context,
	orderID int64,
) ([]domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT p.id, p.name, p.description, p.price, p.quantity, p.category, p.inventory
		FROM cart c
		JOIN products p ON p.id = c."productId"
		WHERE c."orderId" = $1
		ORDER BY p.id
	`
	rows, err := s.db.QueryContext(ctx, query, orderID)
	if err != nil {
		log.Error("failed to query cart products",
			slog.String("error", err.Error()),
			slog.Int64("order_id", orderID))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Price,
			&p.Quantity,
			&p.Category,
			&p.Inventory,
		); err != nil {
			log.Error("failed to scan cart product row", slog.String("error", err.Error()))
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning cart product rows", slog.String("error", err.Error()))
		return nil, err
	}

	return products, nil
}

// DeleteByOrder implements store.CartStore.DeleteByOrder
// Removing zero rows is not an error; an order may have an empty cart.
func (s *PostgresCartStore) DeleteByOrder(ctx context.Context, orderID int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM cart WHERE "orderId" = $1`, orderID)
	if err != nil {
		log.Error("failed to delete cart rows",
			slog.String("error", err.Error()),
			slog.Int64("order_id", orderID))
		return 0, MapError(err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	log.Debug("cart rows deleted",
		slog.Int64("order_id", orderID),
		slog.Int64("rows", removed))
	return removed, nil
}
