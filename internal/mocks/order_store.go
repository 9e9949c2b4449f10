package mocks

import (
	"context"
	"database/sql"

	"github.com/graceshop/shop-api/internal/domain"
	"github.com/graceshop/shop-api/internal/store"
)

// MockOrderStore implements store.OrderStore for testing.
type MockOrderStore struct {
	CreateFn     func(ctx context.Context, order *domain.Order) error
	GetByIDFn    func(ctx context.Context, id int64) (*domain.Order, error)
	ListFn       func(ctx context.Context) ([]domain.Order, error)
	ListByUserFn func(ctx context.Context, userID int64) ([]domain.Order, error)
	DeleteFn     func(ctx context.Context, id int64) (*domain.Order, error)

	// Data for the default implementations.
	Orders map[int64]*domain.Order
	NextID int64

	Err error
}

// NewMockOrderStore creates a new mock store with initialized defaults.
func NewMockOrderStore() *MockOrderStore {
	return &MockOrderStore{
		Orders: make(map[int64]*domain.Order),
		NextID: 1,
	}
}

var _ store.OrderStore = (*MockOrderStore)(nil)

// Create implements the OrderStore interface.
func (m *MockOrderStore) Create(ctx context.Context, order *domain.Order) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, order)
	}
	if m.Err != nil {
		return m.Err
	}

	order.ID = m.NextID
	m.NextID++
	m.Orders[order.ID] = order
	return nil
}

// GetByID implements the OrderStore interface.
func (m *MockOrderStore) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	if o, exists := m.Orders[id]; exists {
		return o, nil
	}
	return nil, store.ErrOrderNotFound
}

// List implements the OrderStore interface.
func (m *MockOrderStore) List(ctx context.Context) ([]domain.Order, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	orders := []domain.Order{}
	for _, o := range m.Orders {
		orders = append(orders, *o)
	}
	return orders, nil
}

// ListByUser implements the OrderStore interface.
func (m *MockOrderStore) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	orders := []domain.Order{}
	for _, o := range m.Orders {
		if o.UserID != nil && *o.UserID == userID {
			orders = append(orders, *o)
		}
	}
	return orders, nil
}

// Delete implements the OrderStore interface.
func (m *MockOrderStore) Delete(ctx context.Context, id int64) (*domain.Order, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	o, exists := m.Orders[id]
	if !exists {
		return nil, store.ErrOrderNotFound
	}
	delete(m.Orders, id)
	return o, nil
}

// WithTx implements the OrderStore interface; the mock has no transactions.
func (m *MockOrderStore) WithTx(tx *sql.Tx) store.OrderStore {
	return m
}

// MockCartStore implements store.CartStore for testing.
type MockCartStore struct {
	AddProductFn          func(ctx context.Context, orderID, productID int64) (*domain.CartItem, error)
	ListProductsByOrderFn func(ctx context.Context, orderID int64) ([]domain.Product, error)
	DeleteByOrderFn       func(ctx context.Context, orderID int64) (int64, error)

	// Data for the default implementations. Products backs the join that
	// ListProductsByOrder performs; unseeded product ids resolve to a
	// stub record carrying just the id.
	Items    []domain.CartItem
	Products map[int64]domain.Product

	Err error
}

// NewMockCartStore creates a new mock store with initialized defaults.
func NewMockCartStore() *MockCartStore {
	return &MockCartStore{
		Items:    []domain.CartItem{},
		Products: map[int64]domain.Product{},
	}
}

var _ store.CartStore = (*MockCartStore)(nil)

// AddProduct implements the CartStore interface.
func (m *MockCartStore) AddProduct(
	ctx context.Context,
	orderID, productID int64,
) (*domain.CartItem, error) {
	if m.AddProductFn != nil {
		return m.AddProductFn(ctx, orderID, productID)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	for _, item := range m.Items {
		if item.OrderID == orderID && item.ProductID == productID {
			return nil, store.ErrDuplicate
		}
	}
	item := domain.CartItem{OrderID: orderID, ProductID: productID}
	m.Items = append(m.Items, item)
	return &item, nil
}

// ListProductsByOrder implements the CartStore interface.
func (m *MockCartStore) ListProductsByOrder(
	ctx context.Context,
	orderID int64,
) ([]domain.Product, error) {
	if m.ListProductsByOrderFn != nil {
		return m.ListProductsByOrderFn(ctx, orderID)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	products := []domain.Product{}
	for _, item := range m.Items {
		if item.OrderID != orderID {
			continue
		}
		if p, ok := m.Products[item.ProductID]; ok {
			products = append(products, p)
			continue
		}
		products = append(products, domain.Product{ID: item.ProductID})
	}
	return products, nil
}

// DeleteByOrder implements the CartStore interface.
func (m *MockCartStore) DeleteByOrder(ctx context.Context, orderID int64) (int64, error) {
	if m.DeleteByOrderFn != nil {
		return m.DeleteByOrderFn(ctx, orderID)
	}
	if m.Err != nil {
		return 0, m.Err
	}

	kept := m.Items[:0]
	var removed int64
	for _, item := range m.Items {
		if item.OrderID == orderID {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	m.Items = kept
	return removed, nil
}

// WithTx implements the CartStore interface; the mock has no transactions.
func (m *MockCartStore) WithTx(tx *sql.Tx) store.CartStore {
	return m
}
