package store

import (
	"context"
	"database/sql"

	"github.com/graceshop/shop-api/internal/domain"
)

// UserUpdate enumerates the updatable fields of a user. A nil field is
// left unchanged. A non-nil Password is re-hashed before it is written.
type UserUpdate struct {
	Email    *string
	Username *string
	Password *string
	Address  *string
	City     *string
	State    *string
	Zip      *string
	IsAdmin  *bool
	IsUser   *bool
}

// IsEmpty reports whether the update names no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Email == nil && u.Username == nil && u.Password == nil &&
		u.Address == nil && u.City == nil && u.State == nil && u.Zip == nil &&
		u.IsAdmin == nil && u.IsUser == nil
}

// UserStore defines the interface for user data persistence.
//
// Users are never hard-deleted by this layer, so there is no Delete.
type UserStore interface {
	// Create hashes the plaintext password and saves a new user, assigning
	// the generated identifier to user.ID. Returns ErrUsernameExists if the
	// username is already taken. The plaintext and the hash are both
	// cleared from the record before Create returns.
	Create(ctx context.Context, user *domain.User) error

	// List retrieves identifier, username, and email for every user.
	// Password and address fields are never included.
	List(ctx context.Context) ([]domain.User, error)

	// GetByID retrieves identifier, username, and email for one user.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves the full row including the password hash, for
	// credential verification inside the trust boundary only.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByUsername retrieves the full row including the password hash, for
	// credential verification inside the trust boundary only.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// Update applies the non-nil fields of the update, re-hashing the
	// password when present, and returns the post-update record through the
	// restricted GetByID projection (a password change is persisted but not
	// visible in the return value). An empty update skips the write.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, id int64, update UserUpdate) (*domain.User, error)

	// WithTx returns a UserStore that runs against the provided transaction.
	WithTx(tx *sql.Tx) UserStore
}
