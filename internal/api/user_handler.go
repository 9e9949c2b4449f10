package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/graceshop/shop-api/internal/api/shared"
	"github.com/graceshop/shop-api/internal/store"
)

// UserHandler handles user profile API requests. Every response goes
// through the store's restricted projection, so password hashes and
// address fields never appear in listings.
type UserHandler struct {
	userStore store.UserStore
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore) *UserHandler {
	return &UserHandler{
		userStore: userStore,
		validator: validator.New(),
	}
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list users")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, users)
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// Update handles PUT /users/{id}. Only the fields present in the body are
// written; a password is re-hashed by the store before storage. Non-admins
// may only update their own account and may never touch the role flags.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	callerID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req UpdateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	if !isAdminFromContext(r) {
		if callerID != id {
			shared.RespondWithError(w, r, http.StatusForbidden,
				"Cannot modify another user's account")
			return
		}
		if req.IsAdmin != nil || req.IsUser != nil {
			shared.RespondWithError(w, r, http.StatusForbidden,
				"Admin access required to change role flags")
			return
		}
	}

	user, err := h.userStore.Update(r.Context(), id, store.UserUpdate{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		Zip:      req.Zip,
		IsAdmin:  req.IsAdmin,
		IsUser:   req.IsUser,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}
