package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graceshop/shop-api/internal/domain"
	"github.com/graceshop/shop-api/internal/store"
)

// stubOrderStore implements store.OrderStore with canned responses.
type stubOrderStore struct {
	deleteOrder *domain.Order
	deleteErr   error
	deleteCalls int
}

func (s *stubOrderStore) Create(ctx context.Context, order *domain.Order) error { return nil }

func (s *stubOrderStore) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return nil, store.ErrOrderNotFound
}

func (s *stubOrderStore) List(ctx context.Context) ([]domain.Order, error) { return nil, nil }

func (s *stubOrderStore) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	return nil, nil
}

func (s *stubOrderStore) Delete(ctx context.Context, id int64) (*domain.Order, error) {
	s.deleteCalls++
	return s.deleteOrder, s.deleteErr
}

func (s *stubOrderStore) WithTx(tx *sql.Tx) store.OrderStore { return s }

// stubCartStore implements store.CartStore with canned responses.
type stubCartStore struct {
	deletedRows int64
	deleteErr   error
	deleteCalls int
}

func (s *stubCartStore) AddProduct(ctx context.Context, orderID, productID int64) (*domain.CartItem, error) {
	return nil, nil
}

func (s *stubCartStore) ListProductsByOrder(ctx context.Context, orderID int64) ([]domain.Product, error) {
	return nil, nil
}

func (s *stubCartStore) DeleteByOrder(ctx context.Context, orderID int64) (int64, error) {
	s.deleteCalls++
	return s.deletedRows, s.deleteErr
}

func (s *stubCartStore) WithTx(tx *sql.Tx) store.CartStore { return s }

func TestOrderService_DeleteOrder(t *testing.T) {
	order := &domain.Order{
		ID:          42,
		DateOrdered: time.Now().UTC(),
		TotalPrice:  decimal.RequireFromString("19.99"),
	}

	t.Run("deletes cart rows and order in one transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectBegin()
		mock.ExpectCommit()

		orders := &stubOrderStore{deleteOrder: order}
		carts := &stubCartStore{deletedRows: 3}
		svc := NewOrderService(db, orders, carts, nil)

		deleted, err := svc.DeleteOrder(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, order, deleted)
		assert.Equal(t, 1, carts.deleteCalls)
		assert.Equal(t, 1, orders.deleteCalls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when the order does not exist", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectBegin()
		mock.ExpectRollback()

		orders := &stubOrderStore{deleteErr: store.ErrOrderNotFound}
		carts := &stubCartStore{}
		svc := NewOrderService(db, orders, carts, nil)

		deleted, err := svc.DeleteOrder(context.Background(), 42)
		assert.Nil(t, deleted)
		assert.ErrorIs(t, err, store.ErrOrderNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stops before the order row when cart cleanup fails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectBegin()
		mock.ExpectRollback()

		cartErr := errors.New("cart delete failed")
		orders := &stubOrderStore{deleteOrder: order}
		carts := &stubCartStore{deleteErr: cartErr}
		svc := NewOrderService(db, orders, carts, nil)

		deleted, err := svc.DeleteOrder(context.Background(), 42)
		assert.Nil(t, deleted)
		assert.ErrorIs(t, err, cartErr)
		assert.Zero(t, orders.deleteCalls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNewOrderService_NilDB(t *testing.T) {
	assert.Panics(t, func() {
		NewOrderService(nil, &stubOrderStore{}, &stubCartStore{}, nil)
	})
}
