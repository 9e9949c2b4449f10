package mocks

import (
	"context"
	"database/sql"

	"github.com/graceshop/shop-api/internal/domain"
	"github.com/graceshop/shop-api/internal/store"
)

// MockProductStore implements store.ProductStore for testing.
type MockProductStore struct {
	CreateFn         func(ctx context.Context, product *domain.Product) error
	GetByIDFn        func(ctx context.Context, id int64) (*domain.Product, error)
	ListFn           func(ctx context.Context) ([]domain.Product, error)
	ListByCategoryFn func(ctx context.Context, category string) ([]domain.Product, error)
	UpdateFn         func(ctx context.Context, id int64, update store.ProductUpdate) (*domain.Product, error)
	DeleteFn         func(ctx context.Context, id int64) (*domain.Product, error)

	// Data for the default implementations.
	Products map[int64]*domain.Product
	NextID   int64

	Err error
}

// NewMockProductStore creates a new mock store with initialized defaults.
func NewMockProductStore() *MockProductStore {
	return &MockProductStore{
		Products: make(map[int64]*domain.Product),
		NextID:   1,
	}
}

var _ store.ProductStore = (*MockProductStore)(nil)

// Create implements the ProductStore interface.
func (m *MockProductStore) Create(ctx context.Context, product *domain.Product) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, product)
	}
	if m.Err != nil {
		return m.Err
	}

	product.ID = m.NextID
	m.NextID++
	m.Products[product.ID] = product
	return nil
}

// GetByID implements the ProductStore interface.
func (m *MockProductStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	if p, exists := m.Products[id]; exists {
		return p, nil
	}
	return nil, store.ErrProductNotFound
}

// List implements the ProductStore interface.
func (m *MockProductStore) List(ctx context.Context) ([]domain.Product, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	products := []domain.Product{}
	for _, p := range m.Products {
		products = append(products, *p)
	}
	return products, nil
}

// ListByCategory implements the ProductStore interface.
func (m *MockProductStore) ListByCategory(
	ctx context.Context,
	category string,
) ([]domain.Product, error) {
	if m.ListByCategoryFn != nil {
		return m.ListByCategoryFn(ctx, category)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	products := []domain.Product{}
	for _, p := range m.Products {
		if p.Category == category {
			products = append(products, *p)
		}
	}
	return products, nil
}

// Update implements the ProductStore interface.
func (m *MockProductStore) Update(
	ctx context.Context,
	id int64,
	update store.ProductUpdate,
) (*domain.Product, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, update)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	p, exists := m.Products[id]
	if !exists {
		return nil, store.ErrProductNotFound
	}
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Description != nil {
		p.Description = *update.Description
	}
	if update.Price != nil {
		p.Price = *update.Price
	}
	if update.Quantity != nil {
		p.Quantity = *update.Quantity
	}
	if update.Category != nil {
		p.Category = *update.Category
	}
	if update.Inventory != nil {
		p.Inventory = *update.Inventory
	}
	return p, nil
}

// Delete implements the ProductStore interface.
func (m *MockProductStore) Delete(ctx context.Context, id int64) (*domain.Product, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	p, exists := m.Products[id]
	if !exists {
		return nil, store.ErrProductNotFound
	}
	delete(m.Products, id)
	return p, nil
}

// WithTx implements the ProductStore interface; the mock has no transactions.
func (m *MockProductStore) WithTx(tx *sql.Tx) store.ProductStore {
	return m
}
