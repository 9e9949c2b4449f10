package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graceshop/shop-api/internal/platform/postgres"
	"github.com/graceshop/shop-api/internal/store"
	"github.com/graceshop/shop-api/internal/testutils"
)

// deleteOrderFixture holds committed rows for one DeleteOrder run and
// removes whatever the test left behind.
type deleteOrderFixture struct {
	orderID    int64
	productIDs []int64
}

func insertDeleteOrderFixture(ctx context.Context, t *testing.T, cartRows int) deleteOrderFixture {
	t.Helper()

	f := deleteOrderFixture{
		orderID: testutils.MustInsertOrder(ctx, t, testDB, nil),
	}
	for i := 0; i < cartRows; i++ {
		name := fmt.Sprintf("widget-%s", uuid.New().String()[:8])
		productID := testutils.MustInsertProduct(ctx, t, testDB, name, "gadgets")
		testutils.MustInsertCartItem(ctx, t, testDB, f.orderID, productID)
		f.productIDs = append(f.productIDs, productID)
	}

	t.Cleanup(func() {
		cleanupCtx := context.Background()
		_, _ = testDB.ExecContext(cleanupCtx, `DELETE FROM cart WHERE "orderId" = $1`, f.orderID)
		_, _ = testDB.ExecContext(cleanupCtx, `DELETE FROM orders WHERE id = $1`, f.orderID)
		for _, productID := range f.productIDs {
			_, _ = testDB.ExecContext(cleanupCtx, `DELETE FROM products WHERE id = $1`, productID)
		}
	})

	return f
}

func TestOrderService_DeleteOrder_Postgres(t *testing.T) {
	if testDB == nil {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	orderService := NewOrderService(
		testDB,
		postgres.NewPostgresOrderStore(testDB, nil),
		postgres.NewPostgresCartStore(testDB, nil),
		nil,
	)

	t.Run("removes the order and all its cart rows", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()

		f := insertDeleteOrderFixture(ctx, t, 2)
		require.Equal(t, 2, testutils.CountRows(ctx, t, testDB, "cart", `"orderId" = $1`, f.orderID))

		deleted, err := orderService.DeleteOrder(ctx, f.orderID)
		require.NoError(t, err)
		require.NotNil(t, deleted)
		assert.Equal(t, f.orderID, deleted.ID)

		assert.Equal(t, 0, testutils.CountRows(ctx, t, testDB, "orders", "id = $1", f.orderID))
		assert.Equal(t, 0, testutils.CountRows(ctx, t, testDB, "cart", `"orderId" = $1`, f.orderID))

		// The products themselves survive; only the association rows go.
		for _, productID := range f.productIDs {
			assert.Equal(t, 1,
				testutils.CountRows(ctx, t, testDB, "products", "id = $1", productID))
		}
	})

	t.Run("unknown order leaves existing rows intact", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()

		f := insertDeleteOrderFixture(ctx, t, 1)

		deleted, err := orderService.DeleteOrder(ctx, 999999999)
		assert.Nil(t, deleted)
		assert.ErrorIs(t, err, store.ErrOrderNotFound)

		assert.Equal(t, 1, testutils.CountRows(ctx, t, testDB, "orders", "id = $1", f.orderID))
		assert.Equal(t, 1, testutils.CountRows(ctx, t, testDB, "cart", `"orderId" = $1`, f.orderID))
	})
}
