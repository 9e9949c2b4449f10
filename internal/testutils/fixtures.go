package testutils

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/graceshop/shop-api/internal/store"
)

// MustInsertProduct inserts a product row directly, bypassing the store
// layer, and returns its generated id. Tests use it to seed data without
// depending on the code under test.
func MustInsertProduct(ctx context.Context, t *testing.T, db store.DBTX, name, category string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRowContext(ctx, `
		INSERT INTO products (name, description, price, quantity, category, inventory)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		name, "fixture product", "9.99", 1, category, 10,
	).Scan(&id)
	require.NoError(t, err, "failed to insert fixture product")
	return id
}

// MustInsertUser inserts a user row with a bcrypt.MinCost hash of
// "Password123!" and returns its generated id.
func MustInsertUser(ctx context.Context, t *testing.T, db store.DBTX, username string) int64 {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.MinCost)
	require.NoError(t, err, "failed to hash fixture password")

	var id int64
	err = db.QueryRowContext(ctx, `
		INSERT INTO users (email, username, password, "isAdmin", "isUser")
		VALUES ($1, $2, $3, false, true)
		RETURNING id`,
		fmt.Sprintf("%s@example.com", username), username, string(hash),
	).Scan(&id)
	require.NoError(t, err, "failed to insert fixture user")
	return id
}

// MustInsertOrder inserts an order row and returns its generated id.
// userID may be nil for a guest order.
func MustInsertOrder(ctx context.Context, t *testing.T, db store.DBTX, userID *int64) int64 {
	t.Helper()

	var id int64
	err := db.QueryRowContext(ctx, `
		INSERT INTO orders (date_ordered, total_price, "usersId")
		VALUES (now(), '0', $1)
		RETURNING id`,
		userID,
	).Scan(&id)
	require.NoError(t, err, "failed to insert fixture order")
	return id
}

// MustInsertCartItem links an order to a product directly.
func MustInsertCartItem(ctx context.Context, t *testing.T, db store.DBTX, orderID, productID int64) {
	t.Helper()

	_, err := db.ExecContext(ctx, `
		INSERT INTO cart ("orderId", "productId")
		VALUES ($1, $2)`,
		orderID, productID,
	)
	require.NoError(t, err, "failed to insert fixture cart row")
}

// CountRows returns the number of rows in table matching the where clause.
// The clause is appended verbatim, so only trusted test input belongs here.
func CountRows(ctx context.Context, t *testing.T, db store.DBTX, table, where string, args ...interface{}) int {
	t.Helper()

	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
	if where != "" {
		query += " WHERE " + where
	}

	var count int
	err := db.QueryRowContext(ctx, query, args...).Scan(&count)
	require.NoError(t, err, "failed to count rows in %s", table)
	return count
}
