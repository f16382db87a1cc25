package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/jwt"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authed attaches the identity the auth middleware would have stored.
func authed(r *http.Request, userID uuid.UUID) *http.Request {
	return r.WithContext(jwt.WithClaims(r.Context(), &jwt.Claims{UserID: userID}))
}

// withID attaches the {id} route parameter chi would have parsed.
func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Message
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedCode    int
		expectedMessage string
	}{
		{"validation shows detail", fmt.Errorf("%w: name is required", services.ErrValidation), http.StatusBadRequest, "validation failed: name is required"},
		{"duplicate key", fmt.Errorf("%w: users_email_key", services.ErrDuplicateKey), http.StatusBadRequest, "Username or email already exists"},
		{"invalid credentials", services.ErrInvalidCredentials, http.StatusBadRequest, "Invalid credentials"},
		{"unauthenticated", services.ErrUnauthenticated, http.StatusUnauthorized, "Authentication required"},
		{"forbidden", services.ErrForbidden, http.StatusForbidden, "Access denied"},
		{"not found", services.ErrNotFound, http.StatusNotFound, "Not found"},
		{"storage", services.ErrStorage, http.StatusInternalServerError, "Internal server error"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeError(context.Background(), rr, tt.err)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedMessage, decodeMessage(t, rr))
		})
	}
}

func TestScopedRequest(t *testing.T) {
	userID := uuid.New()
	id := uuid.New()

	t.Run("ok", func(t *testing.T) {
		r := withID(authed(httptest.NewRequest(http.MethodGet, "/", nil), userID), id.String())
		gotUser, gotID, err := scopedRequest(r)
		require.NoError(t, err)
		assert.Equal(t, userID, gotUser)
		assert.Equal(t, id, gotID)
	})

	t.Run("no identity", func(t *testing.T) {
		r := withID(httptest.NewRequest(http.MethodGet, "/", nil), id.String())
		_, _, err := scopedRequest(r)
		assert.ErrorIs(t, err, services.ErrUnauthenticated)
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		r := withID(authed(httptest.NewRequest(http.MethodGet, "/", nil), userID), "not-a-uuid")
		_, _, err := scopedRequest(r)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}
