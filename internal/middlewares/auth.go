package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/jwt"
	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
//
//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthMiddleware verifies the bearer token and stores its claims in the
// request context. Requests without a valid token get 401.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.FromContext(ctx).Warnw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.FromContext(ctx).Warnw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(jwt.WithClaims(ctx, claims)))
		})
	}
}

type errorResponse struct {
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Message: message})
}
