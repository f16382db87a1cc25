package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/jwt"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/logger"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Not found
	Message string `json:"message"`
}

// MessageResponse is the body of requests that return no record
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// default: Destination deleted
	Message string `json:"message"`
}

// errorStatuses maps service errors to statuses. An empty message means the
// error text itself is shown.
var errorStatuses = []struct {
	err     error
	status  int
	message string
}{
	{services.ErrValidation, http.StatusBadRequest, ""},
	{services.ErrDuplicateKey, http.StatusBadRequest, "Username or email already exists"},
	{services.ErrInvalidCredentials, http.StatusBadRequest, "Invalid credentials"},
	{services.ErrUnauthenticated, http.StatusUnauthorized, "Authentication required"},
	{services.ErrForbidden, http.StatusForbidden, "Access denied"},
	{services.ErrNotFound, http.StatusNotFound, "Not found"},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes err as {message}. Unknown errors become 500 and are logged.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			message := e.message
			if message == "" {
				message = err.Error()
			}
			writeJSON(w, e.status, ErrorResponse{Message: message})
			return
		}
	}

	logger.FromContext(ctx).Errorw("internal server error", "err", err)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
}

// currentUser returns the identity put in the context by the auth middleware.
func currentUser(r *http.Request) (uuid.UUID, error) {
	claims, ok := jwt.ClaimsFromContext(r.Context())
	if !ok || claims.UserID == uuid.Nil {
		return uuid.Nil, services.ErrUnauthenticated
	}
	return claims.UserID, nil
}

// pathID parses the {id} URL parameter. A malformed id cannot name any
// record, so it is reported as not found.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, services.ErrNotFound
	}
	return id, nil
}

// scopedRequest returns the caller and the {id} of an id-scoped route.
func scopedRequest(r *http.Request) (userID, id uuid.UUID, err error) {
	if userID, err = currentUser(r); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if id, err = pathID(r); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return userID, id, nil
}
