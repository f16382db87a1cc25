package middlewares

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Middleware(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(remote string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = remote
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, do("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1:1002"))

	// other clients have their own bucket
	assert.Equal(t, http.StatusOK, do("10.0.0.2:1000"))
}

func TestRateLimiter_Refill(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 1)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("k"))
	assert.False(t, rl.Allow("k"))

	now = now.Add(time.Second)
	assert.True(t, rl.Allow("k"))
}

func TestRateLimiter_Sweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 1)
	rl.now = func() time.Time { return now }
	rl.lastSweep = now

	rl.Allow("idle")
	now = now.Add(visitorTTL + time.Second)
	rl.Allow("active")

	_, idle := rl.visitors["idle"]
	assert.False(t, idle)
	assert.Len(t, rl.visitors, 1)
}

func TestRateLimiter_IgnoresForwardingHeaders(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 20)
	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "192.0.2.10:4000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.0.%d", i))
		req.Header.Set("X-Real-IP", fmt.Sprintf("10.0.1.%d", i))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	for i, code := range codes[1:] {
		assert.Equal(t, http.StatusTooManyRequests, code, "request %d", i+1)
	}
}

func TestRateLimiter_Capacity(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(0.001, 1)
	rl.now = func() time.Time { return now }
	rl.capacity = 3

	for _, key := range []string{"a", "b", "c"} {
		rl.Allow(key)
		now = now.Add(time.Second)
	}
	// touching "a" makes "b" the least recently seen
	assert.False(t, rl.Allow("a"))
	now = now.Add(time.Millisecond)

	rl.Allow("d")

	assert.Len(t, rl.visitors, 3)
	_, b := rl.visitors["b"]
	assert.False(t, b, "least recently seen visitor is evicted")
	_, a := rl.visitors["a"]
	assert.True(t, a)
}
