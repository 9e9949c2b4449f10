package api

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/graceshop/shop-api/internal/api/shared"
	"github.com/graceshop/shop-api/internal/domain"
	"github.com/graceshop/shop-api/internal/service"
	"github.com/graceshop/shop-api/internal/store"
)

// OrderHandler handles order and cart API requests.
type OrderHandler struct {
	orderStore   store.OrderStore
	cartStore    store.CartStore
	orderService *service.OrderService
	validator    *validator.Validate
}

// NewOrderHandler creates a new OrderHandler with the given dependencies.
func NewOrderHandler(
	orderStore store.OrderStore,
	cartStore store.CartStore,
	orderService *service.OrderService,
) *OrderHandler {
	return &OrderHandler{
		orderStore:   orderStore,
		cartStore:    cartStore,
		orderService: orderService,
		validator:    validator.New(),
	}
}

// List handles GET /orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list orders")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, orders)
}

// Get handles GET /orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	order, err := h.orderStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, order)
}

// Create handles POST /orders. The order date defaults to now when the
// body omits it.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	dateOrdered := time.Now().UTC()
	if req.DateOrdered != nil {
		dateOrdered = *req.DateOrdered
	}

	order, err := domain.NewOrder(dateOrdered, req.TotalPrice, req.UserID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid order data: "+err.Error())
		return
	}

	if err := h.orderStore.Create(r.Context(), order); err != nil {
		HandleAPIError(w, r, err, "Failed to create order")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, order)
}

// Delete handles DELETE /orders/{id}. The order and its cart rows go in
// one transaction; the response carries the deleted order.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	order, err := h.orderService.DeleteOrder(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, order)
}

// ListProducts handles GET /orders/{id}/products, resolving the order's
// cart to full product records in one query.
func (h *OrderHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	// Distinguish an unknown order from one with an empty cart.
	if _, err := h.orderStore.GetByID(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	products, err := h.cartStore.ListProductsByOrder(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list order products")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, products)
}

// AddProduct handles POST /orders/{id}/products.
func (h *OrderHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req AddCartProductRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	item, err := h.cartStore.AddProduct(r.Context(), id, req.ProductID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, item)
}

// ListByUser handles GET /users/{id}/orders.
func (h *OrderHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	orders, err := h.orderStore.ListByUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list user orders")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, orders)
}
