package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/graceshop/shop-api/internal/api/shared"
	"github.com/graceshop/shop-api/internal/domain"
)

// getPathID extracts a positive integer identifier from the URL path.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, fmt.Errorf("%w: %s is required", domain.ErrInvalidID, paramName)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidID, paramName)
	}

	return id, nil
}

// getUserIDFromContext extracts the authenticated user's id from the
// request context, where the auth middleware placed it.
func getUserIDFromContext(r *http.Request) (int64, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}

// isAdminFromContext reports whether the auth middleware marked the
// request as coming from an admin.
func isAdminFromContext(r *http.Request) bool {
	isAdmin, ok := r.Context().Value(shared.IsAdminContextKey).(bool)
	return ok && isAdmin
}
