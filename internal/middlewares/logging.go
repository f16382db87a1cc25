package middlewares

import (
	"net/http"
	"strconv"
	"time"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/logger"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// LoggingMiddleware logs requests and responses.
// It reuses a valid incoming X-Request-ID or generates one, and puts it
// into the request context for every downstream log line.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(reqID); err != nil {
			reqID = uuid.New().String()
		}

		start := time.Now()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		ctx := logger.WithRequestID(r.Context(), reqID)
		r = r.WithContext(ctx)
		w.Header().Set(RequestIDHeader, reqID)

		next.ServeHTTP(rw, r)

		log := logger.FromContext(ctx)
		log.Infow("request",
			"method", r.Method,
			"uri", r.RequestURI,
			"duration", time.Since(start),
		)
		log.Infow("response",
			"status", rw.statusCode,
			"response_size", strconv.Itoa(rw.size)+"B",
		)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}
