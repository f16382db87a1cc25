package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/logger"
)

//go:generate mockgen -source=health.go -destination=mock_health.go -package=handlers

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

const healthTimeout = 2 * time.Second

// NewHealthHandler returns an HTTP handler for liveness and database checks.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.MessageResponse
// @Failure 503 {object} handlers.ErrorResponse "Database unavailable"
// @Router /healthz [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.FromContext(ctx).Errorw("health check failed", "err", err)
			writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Message: "Database unavailable"})
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "ok"})
	}
}
