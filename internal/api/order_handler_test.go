package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graceshop/shop-api/internal/domain"
	"github.com/graceshop/shop-api/internal/mocks"
	"github.com/graceshop/shop-api/internal/service"
)

func newOrderRouter(h *OrderHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/orders", h.List)
	r.Post("/orders", h.Create)
	r.Get("/orders/{id}", h.Get)
	r.Delete("/orders/{id}", h.Delete)
	r.Get("/orders/{id}/products", h.ListProducts)
	r.Post("/orders/{id}/products", h.AddProduct)
	r.Get("/users/{id}/orders", h.ListByUser)
	return r
}

func seedOrder(t *testing.T, store *mocks.MockOrderStore, userID *int64) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder(
		time.Now().UTC(), decimal.RequireFromString("25.00"), userID)
	require.NoError(t, err)
	require.NoError(t, store.Create(context.Background(), order))
	return order
}

func TestOrderHandler_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{
			name:       "guest order",
			payload:    `{"total_price":"25.00"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "owned order",
			payload:    `{"total_price":"25.00","user_id":3}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "negative total",
			payload:    `{"total_price":"-1.00"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			payload:    `{`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			orderStore := mocks.NewMockOrderStore()
			router := newOrderRouter(NewOrderHandler(orderStore, mocks.NewMockCartStore(), nil))

			req := httptest.NewRequest("POST", "/orders", bytes.NewBufferString(tt.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantStatus == http.StatusCreated {
				var got domain.Order
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
				assert.Positive(t, got.ID)
				assert.False(t, got.DateOrdered.IsZero(), "order date should default to now")
			}
		})
	}
}

func TestOrderHandler_Get(t *testing.T) {
	t.Parallel()

	orderStore := mocks.NewMockOrderStore()
	order := seedOrder(t, orderStore, nil)
	router := newOrderRouter(NewOrderHandler(orderStore, mocks.NewMockCartStore(), nil))

	t.Run("existing order", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/orders/1", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)
		var got domain.Order
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
		assert.Equal(t, order.ID, got.ID)
	})

	t.Run("unknown order", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/orders/42", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestOrderHandler_Delete(t *testing.T) {
	t.Parallel()

	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	orderStore := mocks.NewMockOrderStore()
	cartStore := mocks.NewMockCartStore()
	order := seedOrder(t, orderStore, nil)
	_, err = cartStore.AddProduct(context.Background(), order.ID, 9)
	require.NoError(t, err)

	orderService := service.NewOrderService(db, orderStore, cartStore, nil)
	router := newOrderRouter(NewOrderHandler(orderStore, cartStore, orderService))

	t.Run("removes order and cart rows", func(t *testing.T) {
		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		req := httptest.NewRequest("DELETE", "/orders/1", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)
		var got domain.Order
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
		assert.Equal(t, order.ID, got.ID)
		assert.Empty(t, cartStore.Items, "cart rows should be gone")
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("unknown order", func(t *testing.T) {
		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		req := httptest.NewRequest("DELETE", "/orders/42", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}

func TestOrderHandler_CartEndpoints(t *testing.T) {
	t.Parallel()

	orderStore := mocks.NewMockOrderStore()
	cartStore := mocks.NewMockCartStore()
	seedOrder(t, orderStore, nil)
	router := newOrderRouter(NewOrderHandler(orderStore, cartStore, nil))

	t.Run("add product", func(t *testing.T) {
		payload := `{"product_id":9}`
		req := httptest.NewRequest("POST", "/orders/1/products", bytes.NewBufferString(payload))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusCreated, recorder.Code)
		var got domain.CartItem
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
		assert.Equal(t, int64(1), got.OrderID)
		assert.Equal(t, int64(9), got.ProductID)
	})

	t.Run("re-adding the same product conflicts", func(t *testing.T) {
		payload := `{"product_id":9}`
		req := httptest.NewRequest("POST", "/orders/1/products", bytes.NewBufferString(payload))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	t.Run("missing product id", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/orders/1/products", bytes.NewBufferString(`{}`))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("list products resolves full records", func(t *testing.T) {
		cartStore.Products[9] = domain.Product{ID: 9, Name: "widget", Category: "gadgets"}

		req := httptest.NewRequest("GET", "/orders/1/products", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)
		var got []domain.Product
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
		require.Len(t, got, 1)
		assert.Equal(t, "widget", got[0].Name)
	})

	t.Run("list products of unknown order", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/orders/42/products", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestOrderHandler_ListByUser(t *testing.T) {
	t.Parallel()

	orderStore := mocks.NewMockOrderStore()
	userID := int64(3)
	seedOrder(t, orderStore, &userID)
	seedOrder(t, orderStore, &userID)
	seedOrder(t, orderStore, nil)
	router := newOrderRouter(NewOrderHandler(orderStore, mocks.NewMockCartStore(), nil))

	req := httptest.NewRequest("GET", "/users/3/orders", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	var got []domain.Order
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
	assert.Len(t, got, 2)
}
