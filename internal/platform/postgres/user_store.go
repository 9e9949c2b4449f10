package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/graceshop/shop-api/internal/domain"
	"github.com/graceshop/shop-api/internal/platform/logger"
	"github.com/graceshop/shop-api/internal/store"
)

// userFullColumns selects the complete user row, including the password
// hash. Only the credential-lookup methods use it.
const userFullColumns = `id, email, username, password, address, city, state, zip, "isAdmin", "isUser"`

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend. Password hashing
// happens here, before anything touches the wire.
type PostgresUserStore struct {
	db         store.DBTX
	bcryptCost int
	logger     *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. bcryptCost is the work factor applied to passwords;
// production uses cost 10, tests pass bcrypt.MinCost.
func NewPostgresUserStore(db store.DBTX, bcryptCost int, log *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresUserStore{
		db:         db,
		bcryptCost: bcryptCost,
		logger:     log.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// WithTx returns a UserStore running against the provided transaction.
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{db: tx, bcryptCost: s.bcryptCost, logger: s.logger}
}

// DB returns the underlying database connection or transaction.
func (s *PostgresUserStore) DB() store.DBTX {
	return s.db
}

// Create implements store.UserStore.Create
// The plaintext password is hashed before the insert. The insert uses
// ON CONFLICT (username) DO NOTHING, so a taken username yields no row
// and maps to store.ErrUsernameExists rather than being ambiguous with
// an absent result. Both plaintext and hash are cleared from the record
// before returning.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.bcryptCost)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return fmt.Errorf("failed to hash password: %w", err)
	}

	query := `
		INSERT INTO users (email, username, password, address, city, state, zip, "isAdmin", "isUser")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (username) DO NOTHING
		RETURNING id
	`
	err = s.db.QueryRowContext(
		ctx,
		query,
		user.Email,
		user.Username,
		string(hash),
		user.Address,
		user.City,
		user.State,
		user.Zip,
		user.IsAdmin,
		user.IsUser,
	).Scan(&user.ID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// DO NOTHING swallowed the insert: the username is taken.
			log.Warn("username already taken",
				slog.String("username", user.Username))
			return store.ErrUsernameExists
		}
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return MapError(err)
	}

	// Never hand credentials back to the caller.
	user.Password = ""
	user.HashedPassword = ""

	log.Debug("user created",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username))
	return nil
}

// List implements store.UserStore.List
// Only identifier, username, and email are selected; credentials and
// address fields never leave the store through this method.
func (s *PostgresUserStore) List(ctx context.Context) ([]domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT id, username, email FROM users ORDER BY id`)
	if err != nil {
		log.Error("could not get all users", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email); err != nil {
			log.Error("failed to scan user row", slog.String("error", err.Error()))
			return nil, err
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning user rows", slog.String("error", err.Error()))
		return nil, err
	}

	return users, nil
}

// GetByID implements store.UserStore.GetByID
// Restricted projection: identifier, username, and email only.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var u domain.User
	err := s.db.QueryRowContext(
		ctx,
		`SELECT id, username, email FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Username, &u.Email)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		log.Error("could not get user by id",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, MapError(err)
	}

	return &u, nil
}

// GetByEmail implements store.UserStore.GetByEmail
// Full row including the password hash, for credential verification only.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getFullRow(ctx, "email", email)
}

// GetByUsername implements store.UserStore.GetByUsername
// Full row including the password hash, for credential verification only.
func (s *PostgresUserStore) GetByUsername(
	ctx context.Context,
	username string,
) (*domain.User, error) {
	return s.getFullRow(ctx, "username", username)
}

// getFullRow fetches the complete user row by one of the unique lookup
// columns ("email" or "username"; never caller-supplied).
func (s *PostgresUserStore) getFullRow(
	ctx context.Context,
	column, value string,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1`, userFullColumns, column)

	var u domain.User
	err := s.db.QueryRowContext(ctx, query, value).Scan(
		&u.ID,
		&u.Email,
		&u.Username,
		&u.HashedPassword,
		&u.Address,
		&u.City,
		&u.State,
		&u.Zip,
		&u.IsAdmin,
		&u.IsUser,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		log.Error("could not get user by "+column,
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return &u, nil
}

// Update implements store.UserStore.Update
// The SET clause is built from the enumerated non-nil fields; a password
// field is re-hashed before writing. The post-update record is returned
// through the restricted GetByID projection, so a password change is
// persisted but never visible in the return value.
func (s *PostgresUserStore) Update(
	ctx context.Context,
	id int64,
	update store.UserUpdate,
) (*domain.User, error) {
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

	if update.Email != nil {
		set("email", *update.Email)
	}
	if update.Username != nil {
		set("username", *update.Username)
	}
	if update.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), s.bcryptCost)
		if err != nil {
			log.Error("failed to hash password", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		set("password", string(hash))
	}
	if update.Address != nil {
		set("address", *update.Address)
	}
	if update.City != nil {
		set("city", *update.City)
	}
	if update.State != nil {
		set("state", *update.State)
	}
	if update.Zip != nil {
		set("zip", *update.Zip)
	}
	if update.IsAdmin != nil {
		set(`"isAdmin"`, *update.IsAdmin)
	}
	if update.IsUser != nil {
		set(`"isUser"`, *update.IsUser)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE users SET %s WHERE id = $%d",
		strings.Join(assignments, ", "),
		len(args),
	)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("could not update user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrUserNotFound); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}
