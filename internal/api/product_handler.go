package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/graceshop/shop-api/internal/api/shared"
	"github.com/graceshop/shop-api/internal/domain"
	"github.com/graceshop/shop-api/internal/store"
)

// ProductHandler handles catalog API requests.
type ProductHandler struct {
	productStore store.ProductStore
	validator    *validator.Validate
}

// NewProductHandler creates a new ProductHandler with the given dependencies.
func NewProductHandler(productStore store.ProductStore) *ProductHandler {
	return &ProductHandler{
		productStore: productStore,
		validator:    validator.New(),
	}
}

// List handles GET /products, with an optional ?category= filter.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		products []domain.Product
		err      error
	)

	if category := r.URL.Query().Get("category"); category != "" {
		products, err = h.productStore.ListByCategory(r.Context(), category)
	} else {
		products, err = h.productStore.List(r.Context())
	}

	if err != nil {
		HandleAPIError(w, r, err, "Failed to list products")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, products)
}

// Get handles GET /products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	product, err := h.productStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, product)
}

// Create handles POST /products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	product, err := domain.NewProduct(
		req.Name,
		req.Description,
		req.Price,
		req.Quantity,
		req.Category,
		req.Inventory,
	)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid product data: "+err.Error())
		return
	}

	if err := h.productStore.Create(r.Context(), product); err != nil {
		HandleAPIError(w, r, err, "Failed to create product")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, product)
}

// Update handles PUT /products/{id}. Only fields present in the body are
// written; the response carries the post-update record.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateProductRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	product, err := h.productStore.Update(r.Context(), id, store.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Category:    req.Category,
		Inventory:   req.Inventory,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, product)
}

// Delete handles DELETE /products/{id}, returning the deleted record.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	product, err := h.productStore.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, product)
}
