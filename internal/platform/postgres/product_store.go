package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/graceshop/shop-api/internal/domain"
	"github.com/graceshop/shop-api/internal/platform/logger"
	"github.com/graceshop/shop-api/internal/store"
)

// productColumns is the column list every product query selects, in the
// order the scan helpers expect.
const productColumns = "id, name, description, price, quantity, category, inventory"

// PostgresProductStore implements the store.ProductStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProductStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProductStore creates a new PostgreSQL implementation of the
// ProductStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
func NewPostgresProductStore(db store.DBTX, log *slog.Logger) *PostgresProductStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresProductStore{
		db:     db,
		logger: log.With(slog.String("component", "product_store")),
	}
}

// Ensure PostgresProductStore implements store.ProductStore interface
var _ store.ProductStore = (*PostgresProductStore)(nil)

// WithTx returns a ProductStore running against the provided transaction.
func (s *PostgresProductStore) WithTx(tx *sql.Tx) store.ProductStore {
	return &PostgresProductStore{db: tx, logger: s.logger}
}

// DB returns the underlying database connection or transaction.
func (s *PostgresProductStore) DB() store.DBTX {
	return s.db
}

// Create implements store.ProductStore.Create
// It inserts the six product attributes and scans the generated identifier
// back into product.ID.
func (s *PostgresProductStore) Create(ctx context.Context, product *domain.Product) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := product.Validate(); err != nil {
		log.Warn("product validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO products (name, description, price, quantity, category, inventory)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		product.Name,
		product.Description,
		product.Price,
		product.Quantity,
		product.Category,
		product.Inventory,
	).Scan(&product.ID)

	if err != nil {
		log.Error("failed to create product",
			slog.String("error", err.Error()),
			slog.String("name", product.Name))
		return MapError(err)
	}

	log.Debug("product created",
		slog.Int64("product_id", product.ID),
		slog.String("category", product.Category))
	return nil
}

// GetByID implements store.ProductStore.GetByID
// Returns store.ErrProductNotFound if the product does not exist.
func (s *PostgresProductStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)

	var p domain.Product
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Quantity,
		&p.Category,
		&p.Inventory,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProductNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get product by ID",
			slog.String("error", err.Error()),
			slog.Int64("product_id", id))
		return nil, MapError(err)
	}

	return &p, nil
}

// List implements store.ProductStore.List
// One bulk select ordered by identifier; an empty catalog yields an empty
// slice, not nil.
func (s *PostgresProductStore) List(ctx context.Context) ([]domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products ORDER BY id`, productColumns)
	return s.queryProducts(ctx, query)
}

// ListByCategory implements store.ProductStore.ListByCategory
func (s *PostgresProductStore) ListByCategory(
	ctx context.Context,
	category string,
) ([]domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE category = $1 ORDER BY id`, productColumns)
	return s.queryProducts(ctx, query, category)
}

// queryProducts runs a multi-row product select and scans the results.
func (s *PostgresProductStore) queryProducts(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query products", slog.String("error", err.Error()))
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
			log.Error("failed to scan product row", slog.String("error", err.Error()))
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning product rows", slog.String("error", err.Error()))
		return nil, err
	}

	return products, nil
}

// Update implements store.ProductStore.Update
// The SET clause is built from the enumerated non-nil fields of the update.
// An empty update skips the write entirely; either way the post-update
// record is re-read and returned.
func (s *PostgresProductStore) Update(
	ctx context.Context,
	id int64,
	update store.ProductUpdate,
) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if update.IsEmpty() {
		return s.GetByID(ctx, id)
	}

	var (
		assignments []string
		args        []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Name != nil {
		set("name", *update.Name)
	}
	if update.Description != nil {
		set("description", *update.Description)
	}
	if update.Price != nil {
		set("price", *update.Price)
	}
	if update.Quantity != nil {
		set("quantity", *update.Quantity)
	}
	if update.Category != nil {
		set("category", *update.Category)
	}
	if update.Inventory != nil {
		set("inventory", *update.Inventory)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE products SET %s WHERE id = $%d",
		strings.Join(assignments, ", "),
		len(args),
	)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to update product",
			slog.String("error", err.Error()),
			slog.Int64("product_id", id))
		return nil, MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrProductNotFound); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete implements store.ProductStore.Delete
// It removes the product in a single statement and returns the deleted
// record; zero deleted rows maps to store.ErrProductNotFound.
func (s *PostgresProductStore) Delete(ctx context.Context, id int64) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(`DELETE FROM products WHERE id = $1 RETURNING %s`, productColumns)

	var p domain.Product
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Quantity,
		&p.Category,
		&p.Inventory,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProductNotFound
		}
		log.Error("failed to delete product",
			slog.String("error", err.Error()),
			slog.Int64("product_id", id))
		return nil, MapError(err)
	}

	log.Debug("product deleted", slog.Int64("product_id", id))
	return &p, nil
}
