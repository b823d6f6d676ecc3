package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllow(t *testing.T) {
	t.Run("enforces per key quota", func(t *testing.T) {
		rl := NewRateLimiter(time.Minute, 2)

		assert.True(t, rl.Allow("a"))
		assert.True(t, rl.Allow("a"))
		assert.False(t, rl.Allow("a"))
		assert.True(t, rl.Allow("b"))
	})

	t.Run("resets on window boundary", func(t *testing.T) {
		rl := NewRateLimiter(time.Minute, 1)
		current := time.Now()
		rl.now = func() time.Time { return current }

		assert.True(t, rl.Allow("a"))
		assert.False(t, rl.Allow("a"))

		current = current.Add(time.Minute)
		assert.True(t, rl.Allow("a"))
	})

	t.Run("windows are independent per key", func(t *testing.T) {
		rl := NewRateLimiter(time.Minute, 1)
		current := time.Now()
		rl.now = func() time.Time { return current }

		assert.True(t, rl.Allow("a"))

		current = current.Add(30 * time.Second)
		assert.True(t, rl.Allow("b"))
		assert.False(t, rl.Allow("b"))

		// a's window started 30s before b's; a rolls over, b does not.
		current = current.Add(30 * time.Second)
		assert.True(t, rl.Allow("a"))
		assert.False(t, rl.Allow("b"))
	})

	t.Run("prunes expired buckets on rollover", func(t *testing.T) {
		rl := NewRateLimiter(time.Minute, 1)
		current := time.Now()
		rl.now = func() time.Time { return current }

		rl.Allow("a")
		rl.Allow("b")

		current = current.Add(2 * time.Minute)
		rl.Allow("c")
		assert.Len(t, rl.buckets, 1)
	})
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", clientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", clientIP(req))
}

func TestRateLimiterIgnoresForwardedForTail(t *testing.T) {
	rl := NewRateLimiter(time.Minute, 1)
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	// Varying the appended hops must not mint a fresh quota.
	for i, xff := range []string{"203.0.113.7", "203.0.113.7, 10.1.1.1", "203.0.113.7, 10.2.2.2"} {
		req := httptest.NewRequest(http.MethodGet, "/patients", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		req.Header.Set("X-Forwarded-For", xff)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if i == 0 {
			assert.Equal(t, http.StatusNoContent, rec.Code)
		} else {
			assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		}
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	rl := NewRateLimiter(time.Minute, 1)
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	req.RemoteAddr = "10.0.0.1:5555"

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, req)
	assert.Equal(t, http.StatusNoContent, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, req)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	other := httptest.NewRequest(http.MethodGet, "/patients", nil)
	other.RemoteAddr = "10.0.0.2:5555"
	third := httptest.NewRecorder()
	handler.ServeHTTP(third, other)
	assert.Equal(t, http.StatusNoContent, third.Code)
}
