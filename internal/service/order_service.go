package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/graceshop/shop-api/internal/domain"
	"github.com/graceshop/shop-api/internal/platform/logger"
	"github.com/graceshop/shop-api/internal/store"
)

// OrderService coordinates order operations that span the order and cart
// stores. Single-store reads go straight through; deletion runs as one
// transaction so an order can never disappear while its cart rows survive.
type OrderService struct {
	db         *sql.DB
	orderStore store.OrderStore
	cartStore  store.CartStore
	logger     *slog.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	db *sql.DB,
	orderStore store.OrderStore,
	cartStore store.CartStore,
	log *slog.Logger,
) *OrderService {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &OrderService{
		db:         db,
		orderStore: orderStore,
		cartStore:  cartStore,
		logger:     log.With(slog.String("component", "order_service")),
	}
}

// DeleteOrder removes the order and every cart row referencing it in a
// single transaction, returning the deleted order. Cart rows go first so
// the foreign key from cart to orders is never violated mid-flight.
// Returns store.ErrOrderNotFound if the order does not exist; in that case
// nothing is deleted.
func (s *OrderService) DeleteOrder(ctx context.Context, id int64) (*domain.Order, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var deleted *domain.Order
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		removed, err := s.cartStore.WithTx(tx).DeleteByOrder(ctx, id)
		if err != nil {
			return err
		}

		deleted, err = s.orderStore.WithTx(tx).Delete(ctx, id)
		if err != nil {
			return err
		}

		log.Debug("order and cart rows deleted",
			slog.Int64("order_id", id),
			slog.Int64("cart_rows", removed))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}
