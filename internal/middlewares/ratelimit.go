package middlewares

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/AnkitGupta-dev/travel-wishlist-app/internal/logger"
	"golang.org/x/time/rate"
)

// visitorTTL is how long an idle client keeps its token bucket.
const visitorTTL = 10 * time.Minute

// maxVisitors bounds the number of tracked clients between sweeps.
const maxVisitors = 10000

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limits requests per client IP with a token bucket per client.
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	capacity  int
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter allows rps requests per second per client, with bursts up to burst.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		visitors:  make(map[string]*visitor),
		limit:     rate.Limit(rps),
		burst:     burst,
		capacity:  maxVisitors,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// Allow reports whether a request from key may proceed.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	v, ok := rl.visitors[key]
	if !ok {
		if len(rl.visitors) >= rl.capacity {
			rl.evict(now)
		}
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// sweep drops idle visitors at most once per TTL. Callers hold rl.mu.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < visitorTTL {
		return
	}
	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) >= visitorTTL {
			delete(rl.visitors, key)
		}
	}
	rl.lastSweep = now
}

// evict makes room for a new visitor: idle entries go first, then the least
// recently seen one. Callers hold rl.mu.
func (rl *RateLimiter) evict(now time.Time) {
	rl.lastSweep = now.Add(-visitorTTL)
	rl.sweep(now)
	if len(rl.visitors) < rl.capacity {
		return
	}

	var oldestKey string
	var oldest time.Time
	for key, v := range rl.visitors {
		if oldestKey == "" || v.lastSeen.Before(oldest) {
			oldestKey, oldest = key, v.lastSeen
		}
	}
	delete(rl.visitors, oldestKey)
}

// Middleware rejects requests over the limit with 429.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientIP(r)
		if !rl.Allow(key) {
			logger.FromContext(r.Context()).Warnw("rate limit exceeded", "client", key, "uri", r.RequestURI)
			w.Header().Set("Retry-After", "1")
			writeError(w, http.StatusTooManyRequests, "Too many requests, try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP keys on the socket peer address. Forwarding headers are client
// controlled and never consulted.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
