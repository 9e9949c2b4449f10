package mocks

import (
	"context"
	"database/sql"

	"github.com/graceshop/shop-api/internal/domain"
	"github.com/graceshop/shop-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	CreateFn        func(ctx context.Context, user *domain.User) error
	ListFn          func(ctx context.Context) ([]domain.User, error)
	GetByIDFn       func(ctx context.Context, id int64) (*domain.User, error)
	GetByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	UpdateFn        func(ctx context.Context, id int64, update store.UserUpdate) (*domain.User, error)

	// Data for the default implementations, keyed by username.
	Users  map[string]*domain.User
	NextID int64

	CreateError error
	LookupError error
}

// NewMockUserStore creates a new mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users:  make(map[string]*domain.User),
		NextID: 1,
	}
}

var _ store.UserStore = (*MockUserStore)(nil)

// Create implements the UserStore interface.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	if m.CreateError != nil {
		return m.CreateError
	}

	if _, exists := m.Users[user.Username]; exists {
		return store.ErrUsernameExists
	}

	user.ID = m.NextID
	m.NextID++
	user.Password = ""
	user.HashedPassword = ""
	m.Users[user.Username] = user
	return nil
}

// List implements the UserStore interface.
func (m *MockUserStore) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	if m.LookupError != nil {
		return nil, m.LookupError
	}

	users := []domain.User{}
	for _, u := range m.Users {
		users = append(users, domain.User{ID: u.ID, Username: u.Username, Email: u.Email})
	}
	return users, nil
}

// GetByID implements the UserStore interface.
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.LookupError != nil {
		return nil, m.LookupError
	}

	for _, u := range m.Users {
		if u.ID == id {
			return &domain.User{ID: u.ID, Username: u.Username, Email: u.Email}, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByEmail implements the UserStore interface.
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	if m.LookupError != nil {
		return nil, m.LookupError
	}

	for _, u := range m.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByUsername implements the UserStore interface.
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	if m.LookupError != nil {
		return nil, m.LookupError
	}

	if u, exists := m.Users[username]; exists {
		return u, nil
	}
	return nil, store.ErrUserNotFound
}

// Update implements the UserStore interface.
func (m *MockUserStore) Update(
	ctx context.Context,
	id int64,
	update store.UserUpdate,
) (*domain.User, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, update)
	}
	if m.LookupError != nil {
		return nil, m.LookupError
	}

	for name, u := range m.Users {
		if u.ID != id {
			continue
		}
		if update.Email != nil {
			u.Email = *update.Email
		}
		if update.Username != nil {
			delete(m.Users, name)
			u.Username = *update.Username
			m.Users[u.Username] = u
		}
		if update.Address != nil {
			u.Address = *update.Address
		}
		if update.City != nil {
			u.City = *update.City
		}
		if update.State != nil {
			u.State = *update.State
		}
		if update.Zip != nil {
			u.Zip = *update.Zip
		}
		if update.IsAdmin != nil {
			u.IsAdmin = *update.IsAdmin
		}
		if update.IsUser != nil {
			u.IsUser = *update.IsUser
		}
		return &domain.User{ID: u.ID, Username: u.Username, Email: u.Email}, nil
	}
	return nil, store.ErrUserNotFound
}

// WithTx implements the UserStore interface; the mock has no transactions.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
