package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterBurstThenRefill(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	now := time.Now()
	rl.now = func() time.Time { return now }

	ok, _ := rl.Allow("session:a")
	assert.True(t, ok)
	ok, _ = rl.Allow("session:a")
	assert.True(t, ok)

	ok, retryAfter := rl.Allow("session:a")
	require.False(t, ok)
	assert.InDelta(t, time.Second.Seconds(), retryAfter.Seconds(), 0.05)

	// One token refills after a second.
	now = now.Add(time.Second)
	ok, _ = rl.Allow("session:a")
	assert.True(t, ok)
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	now := time.Now()
	rl.now = func() time.Time { return now }

	ok, _ := rl.Allow("session:a")
	assert.True(t, ok)
	ok, _ = rl.Allow("session:a")
	assert.False(t, ok)

	ok, _ = rl.Allow("session:b")
	assert.True(t, ok)
}

func TestRateLimiterEvictsIdleBuckets(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	now := time.Now()
	rl.now = func() time.Time { return now }

	rl.Allow("session:idle")
	require.Len(t, rl.buckets, 1)

	// Fully refilled buckets are swept on the eviction pass.
	now = now.Add(time.Minute)
	rl.allows = evictEvery - 1
	rl.Allow("session:active")
	assert.NotContains(t, rl.buckets, "session:idle")
	assert.Contains(t, rl.buckets, "session:active")
}

func TestClientKeyPrefersSessionHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/bookings", nil)
	req.Header.Set("X-Real-Ip", "10.0.0.9")
	assert.Equal(t, "ip:10.0.0.9", clientKey(req))

	req.Header.Set("X-Session-Id", "sess-1")
	assert.Equal(t, "session:sess-1", clientKey(req))
}

func TestRateLimitMiddlewareRetryAfter(t *testing.T) {
	handler := RateLimit(0.5, 1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/reviews", nil)
	req.Header.Set("X-Session-Id", "sess-2")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("Retry-After"))
}

func TestRateLimitSessionsShareNATSafely(t *testing.T) {
	handler := RateLimit(1, 1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	first := httptest.NewRequest(http.MethodPost, "/bookings", nil)
	first.Header.Set("X-Real-Ip", "10.0.0.9")
	first.Header.Set("X-Session-Id", "sess-a")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// A different session behind the same IP keeps its own budget.
	second := httptest.NewRequest(http.MethodPost, "/bookings", nil)
	second.Header.Set("X-Real-Ip", "10.0.0.9")
	second.Header.Set("X-Session-Id", "sess-b")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, second)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
