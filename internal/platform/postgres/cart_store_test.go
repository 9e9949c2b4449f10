package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graceshop/shop-api/internal/platform/postgres"
	"github.com/graceshop/shop-api/internal/store"
	"github.com/graceshop/shop-api/internal/testutils"
)

func TestPostgresCartStore_AddProduct(t *testing.T) {
	t.Parallel()

	testutils.WithTx(t, testDB, func(t *testing.T, tx *sql.Tx) {
		cartStore := postgres.NewPostgresCartStore(tx, nil)
		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()

		orderID := testutils.MustInsertOrder(ctx, t, tx, nil)
		productID := testutils.MustInsertProduct(ctx, t, tx, uniqueName("widget"), "gadgets")

		t.Run("returns the created row", func(t *testing.T) {
			item, err := cartStore.AddProduct(ctx, orderID, productID)
			require.NoError(t, err)
			assert.Equal(t, orderID, item.OrderID)
			assert.Equal(t, productID, item.ProductID)

			count := testutils.CountRows(ctx, t, tx, "cart",
				`"orderId" = $1 AND "productId" = $2`, orderID, productID)
			assert.Equal(t, 1, count)
		})

		t.Run("rejects non-positive identifiers", func(t *testing.T) {
			item, err := cartStore.AddProduct(ctx, 0, productID)
			assert.Nil(t, item)
			assert.ErrorIs(t, err, store.ErrInvalidEntity)
		})

		// Last on purpose: the unique violation aborts the enclosing test
		// transaction.
		t.Run("rejects a duplicate pair", func(t *testing.T) {
			item, err := cartStore.AddProduct(ctx, orderID, productID)
			assert.Nil(t, item)
			assert.ErrorIs(t, err, store.ErrDuplicate)
		})
	})
}

func TestPostgresCartStore_AddProduct_UnknownOrder(t *testing.T) {
	t.Parallel()

	testutils.WithTx(t, testDB, func(t *testing.T, tx *sql.Tx) {
		cartStore := postgres.NewPostgresCartStore(tx, nil)
		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()

		productID := testutils.MustInsertProduct(ctx, t, tx, uniqueName("widget"), "gadgets")

		item, err := cartStore.AddProduct(ctx, 999999999, productID)
		assert.Nil(t, item)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestPostgresCartStore_ListProductsByOrder(t *testing.T) {
	t.Parallel()

	testutils.WithTx(t, testDB, func(t *testing.T, tx *sql.Tx) {
		cartStore := postgres.NewPostgresCartStore(tx, nil)
		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()

		orderID := testutils.MustInsertOrder(ctx, t, tx, nil)
		firstName := uniqueName("widget")
		secondName := uniqueName("widget")
		firstProduct := testutils.MustInsertProduct(ctx, t, tx, firstName, "gadgets")
		secondProduct := testutils.MustInsertProduct(ctx, t, tx, secondName, "gadgets")
		testutils.MustInsertCartItem(ctx, t, tx, orderID, firstProduct)
		testutils.MustInsertCartItem(ctx, t, tx, orderID, secondProduct)

		t.Run("resolves full product rows ordered by id", func(t *testing.T) {
			products, err := cartStore.ListProductsByOrder(ctx, orderID)
			require.NoError(t, err)
			require.Len(t, products, 2)
			assert.Equal(t, firstProduct, products[0].ID)
			assert.Equal(t, firstName, products[0].Name)
			assert.Equal(t, "gadgets", products[0].Category)
			assert.Equal(t, secondProduct, products[1].ID)
			assert.Equal(t, secondName, products[1].Name)
		})

		t.Run("empty cart yields empty slice", func(t *testing.T) {
			emptyOrder := testutils.MustInsertOrder(ctx, t, tx, nil)
			products, err := cartStore.ListProductsByOrder(ctx, emptyOrder)
			require.NoError(t, err)
			assert.NotNil(t, products)
			assert.Empty(t, products)
		})
	})
}

func TestPostgresCartStore_DeleteByOrder(t *testing.T) {
	t.Parallel()

	testutils.WithTx(t, testDB, func(t *testing.T, tx *sql.Tx) {
		cartStore := postgres.NewPostgresCartStore(tx, nil)
		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()

		orderID := testutils.MustInsertOrder(ctx, t, tx, nil)
		keptOrder := testutils.MustInsertOrder(ctx, t, tx, nil)
		productID := testutils.MustInsertProduct(ctx, t, tx, uniqueName("widget"), "gadgets")
		secondProduct := testutils.MustInsertProduct(ctx, t, tx, uniqueName("widget"), "gadgets")
		testutils.MustInsertCartItem(ctx, t, tx, orderID, productID)
		testutils.MustInsertCartItem(ctx, t, tx, orderID, secondProduct)
		testutils.MustInsertCartItem(ctx, t, tx, keptOrder, productID)

		t.Run("removes only the order's rows", func(t *testing.T) {
			removed, err := cartStore.DeleteByOrder(ctx, orderID)
			require.NoError(t, err)
			assert.Equal(t, int64(2), removed)

			count := testutils.CountRows(ctx, t, tx, "cart", `"orderId" = $1`, keptOrder)
			assert.Equal(t, 1, count, "other orders' rows should survive")
		})

		t.Run("empty cart removes zero rows without error", func(t *testing.T) {
			removed, err := cartStore.DeleteByOrder(ctx, orderID)
			require.NoError(t, err)
			assert.Zero(t, removed)
		})
	})
}
