// ABOUTME: Rate limiting middleware with fixed-window counters
// ABOUTME: Provides per-endpoint rate limits keyed by client IP or editor session

package middleware

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

type window struct {
	hits   int
	resets time.Time
}

// RateLimiter allows up to limit requests per key in each fixed window
type RateLimiter struct {
	mu        sync.Mutex
	windows   map[string]*window
	limit     int
	span      time.Duration
	nextSweep time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per key every span
func NewRateLimiter(limit int, span time.Duration) *RateLimiter {
	return &RateLimiter{
		windows: make(map[string]*window),
		limit:   limit,
		span:    span,
	}
}

// Allow counts a request for key. When the key is over its limit it returns false
// and the time left until its window resets.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if !now.Before(rl.nextSweep) {
		rl.sweep(now)
		rl.nextSweep = now.Add(rl.span)
	}

	w, ok := rl.windows[key]
	if !ok || !now.Before(w.resets) {
		rl.windows[key] = &window{hits: 1, resets: now.Add(rl.span)}
		return true, 0
	}
	if w.hits >= rl.limit {
		return false, w.resets.Sub(now)
	}
	w.hits++
	return true, 0
}

// sweep drops expired windows; rl.mu must be held
func (rl *RateLimiter) sweep(now time.Time) {
	for k, w := range rl.windows {
		if !now.Before(w.resets) {
			delete(rl.windows, k)
		}
	}
}

// ClientIP keys a request by the leftmost X-Forwarded-For address, or RemoteAddr.
// X-Forwarded-For is only trustworthy behind a proxy that sets it.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); net.ParseIP(ip) != nil {
			return "ip:" + ip
		}
	}

	host := r.RemoteAddr
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return "ip:" + host
}

// SessionOrIP keys session routes by the {id} path value so one client
// cannot exhaust another session's budget. Other routes fall back to ClientIP.
func SessionOrIP(r *http.Request) string {
	if id := r.PathValue("id"); id != "" {
		return "session:" + id
	}
	return ClientIP(r)
}

// RateLimit answers 429 with Retry-After once keyFunc's key is over the limit.
// A nil limiter or keyFunc disables it; an empty key is never limited.
func RateLimit(limiter *RateLimiter, keyFunc func(*http.Request) string) Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		if limiter == nil || keyFunc == nil {
			return next
		}
		return func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next(w, r)
				return
			}
			if ok, retryAfter := limiter.Allow(key); !ok {
				secs := int(math.Ceil(retryAfter.Seconds()))
				slog.Warn("Rate limit exceeded", "key", key, "path", r.URL.Path, "retry_after", secs)
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				writeJSONError(w, "Rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next(w, r)
		}
	}
}
