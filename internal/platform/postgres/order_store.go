package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/graceshop/shop-api/internal/domain"
	"github.com/graceshop/shop-api/internal/platform/logger"
	"github.com/graceshop/shop-api/internal/store"
)

// orderColumns is the column list every order query selects. "usersId" is
// quoted because the legacy schema used a camelCase column name.
const orderColumns = `id, date_ordered, total_price, "usersId"`

// PostgresOrderStore implements the store.OrderStore interface
// using a PostgreSQL database as the storage backend.
type PostgresOrderStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresOrderStore creates a new PostgreSQL implementation of the
// OrderStore interface.
func NewPostgresOrderStore(db store.DBTX, log *slog.Logger) *PostgresOrderStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresOrderStore{
		db:     db,
		logger: log.With(slog.String("component", "order_store")),
	}
}

// Ensure PostgresOrderStore implements store.OrderStore interface
var _ store.OrderStore = (*PostgresOrderStore)(nil)

// WithTx returns an OrderStore running against the provided transaction.
func (s *PostgresOrderStore) WithTx(tx *sql.Tx) store.OrderStore {
	return &PostgresOrderStore{db: tx, logger: s.logger}
}

// DB returns the underlying database connection or transaction.
func (s *PostgresOrderStore) DB() store.DBTX {
	return s.db
}

// Create implements store.OrderStore.Create
func (s *PostgresOrderStore) Create(ctx context.Context, order *domain.Order) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := order.Validate(); err != nil {
		log.Warn("order validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO orders (date_ordered, total_price, "usersId")
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		order.DateOrdered,
		order.TotalPrice,
		order.UserID,
	).Scan(&order.ID)

	if err != nil {
		log.Error("failed to create order", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Debug("order created", slog.Int64("order_id", order.ID))
	return nil
}

// GetByID implements store.OrderStore.GetByID
// Returns store.ErrOrderNotFound if the order does not exist.
func (s *PostgresOrderStore) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE id = $1`, orderColumns)

	var o domain.Order
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&o.ID,
		&o.DateOrdered,
		&o.TotalPrice,
		&o.UserID,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrOrderNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get order by ID",
			slog.String("error", err.Error()),
			slog.Int64("order_id", id))
		return nil, MapError(err)
	}

	return &o, nil
}

// List implements store.OrderStore.List
func (s *PostgresOrderStore) List(ctx context.Context) ([]domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders ORDER BY id`, orderColumns)
	return s.queryOrders(ctx, query)
}

// ListByUser implements store.OrderStore.ListByUser
func (s *PostgresOrderStore) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE "usersId" = $1 ORDER BY id`, orderColumns)
	return s.queryOrders(ctx, query, userID)
}

func (s *PostgresOrderStore) queryOrders(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.Order, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query orders", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	orders := []domain.Order{}
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.DateOrdered, &o.TotalPrice, &o.UserID); err != nil {
			log.Error("failed to scan order row", slog.String("error", err.Error()))
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning order rows", slog.String("error", err.Error()))
		return nil, err
	}

	return orders, nil
}

// Delete implements store.OrderStore.Delete
// It removes only the order row; service.OrderService composes this with
// cart cleanup inside one transaction.
func (s *PostgresOrderStore) Delete(ctx context.Context, id int64) (*domain.Order, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(`DELETE FROM orders WHERE id = $1 RETURNING %s`, orderColumns)

	var o domain.Order
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&o.ID,
		&o.DateOrdered,
		&o.TotalPrice,
		&o.UserID,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrOrderNotFound
		}
		log.Error("failed to delete order",
			slog.String("error", err.Error()),
			slog.Int64("order_id", id))
		return nil, MapError(err)
	}

	log.Debug("order deleted", slog.Int64("order_id", id))
	return &o, nil
}
