package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter throttles the site's mutating endpoints with a token bucket
// per client. Wizard and helpful-vote traffic is keyed by the anonymous
// session header when present, so visitors behind a shared NAT do not
// exhaust each other's budget; everything else falls back to the client IP.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	rate    float64 // tokens per second
	burst   int     // max tokens
	allows  int     // calls since the last stale sweep
	now     func() time.Time
}

type bucket struct {
	tokens   float64
	lastSeen time.Time
}

// Buckets idle long enough to have fully refilled carry no state worth
// keeping; they are swept inline every evictEvery calls.
const evictEvery = 256

// NewRateLimiter creates a limiter allowing rate requests/sec with the given
// burst size per client key.
func NewRateLimiter(rate float64, burst int) *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*bucket),
		rate:    rate,
		burst:   burst,
		now:     time.Now,
	}
}

// Allow reports whether the client key is within the rate limit, and when it
// is not, how long until the next token.
func (rl *RateLimiter) Allow(key string) (ok bool, retryAfter time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.allows++
	if rl.allows >= evictEvery {
		rl.allows = 0
		rl.evictStaleLocked(now)
	}

	b, found := rl.buckets[key]
	if !found {
		b = &bucket{tokens: float64(rl.burst), lastSeen: now}
		rl.buckets[key] = b
	}

	elapsed := now.Sub(b.lastSeen).Seconds()
	b.tokens = math.Min(b.tokens+elapsed*rl.rate, float64(rl.burst))
	b.lastSeen = now

	if b.tokens < 1 {
		wait := time.Duration((1 - b.tokens) / rl.rate * float64(time.Second))
		return false, wait
	}
	b.tokens--
	return true, 0
}

func (rl *RateLimiter) evictStaleLocked(now time.Time) {
	refill := time.Duration(float64(rl.burst) / rl.rate * float64(time.Second))
	cutoff := now.Add(-refill)
	for key, b := range rl.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(rl.buckets, key)
		}
	}
}

// clientKey resolves the bucket key for a request. Session-scoped endpoints
// send X-Session-Id; chi's RealIP middleware normalizes the rest.
func clientKey(r *http.Request) string {
	if sid := r.Header.Get("X-Session-Id"); sid != "" {
		return "session:" + sid
	}
	if xri := r.Header.Get("X-Real-Ip"); xri != "" {
		return "ip:" + xri
	}
	return "ip:" + r.RemoteAddr
}

// RateLimit returns an HTTP middleware that rejects requests exceeding the
// configured rate with 429 Too Many Requests and a Retry-After hint.
func RateLimit(rate float64, burst int) func(http.Handler) http.Handler {
	limiter := NewRateLimiter(rate, burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, retryAfter := limiter.Allow(clientKey(r))
			if !ok {
				secs := int(math.Ceil(retryAfter.Seconds()))
				if secs < 1 {
					secs = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
