package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/almaspay/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

// RateLimiter caps requests per client IP over a sliding window. State lives
// in process memory; a restart resets all windows.
type RateLimiter struct {
	mu         sync.Mutex
	hits       map[string][]time.Time
	maxRequest int
	window     time.Duration
	lastSweep  time.Time
}

func NewRateLimiter(maxRequest int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		hits:       make(map[string][]time.Time),
		maxRequest: maxRequest,
		window:     window,
		lastSweep:  time.Now(),
	}
}

// Allow records a hit for ip unless its window is full. Returns the remaining
// budget after this request.
func (rl *RateLimiter) Allow(ip string, now time.Time) (int, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastSweep) > rl.window {
		rl.sweep(now)
		rl.lastSweep = now
	}

	recent := pruneOlder(rl.hits[ip], now.Add(-rl.window))
	if len(recent) >= rl.maxRequest {
		rl.hits[ip] = recent
		return 0, false
	}

	rl.hits[ip] = append(recent, now)
	return rl.maxRequest - len(recent) - 1, true
}

// sweep drops idle IPs so the map does not grow with one-off clients
func (rl *RateLimiter) sweep(now time.Time) {
	cutoff := now.Add(-rl.window)
	for ip, hits := range rl.hits {
		recent := pruneOlder(hits, cutoff)
		if len(recent) == 0 {
			delete(rl.hits, ip)
			continue
		}
		rl.hits[ip] = recent
	}
}

func pruneOlder(hits []time.Time, cutoff time.Time) []time.Time {
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

// RateLimit rejects callers exceeding maxRequest hits per window with a 429
func RateLimit(maxRequest int, window time.Duration) gin.HandlerFunc {
	limiter := NewRateLimiter(maxRequest, window)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		remaining, ok := limiter.Allow(ip, now)
		if !ok {
			logger.WarnWithContext(c.Request.Context(), "Rate limit exceeded").
				String("client_ip", ip).
				Method(c.Request.Method).
				Path(c.Request.URL.Path).
				Int("max_requests", maxRequest).
				Log()

			c.Header("Retry-After", strconv.Itoa(int(window.Seconds())))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success":     false,
				"error":       "Rate limit exceeded",
				"retry_after": window.Seconds(),
			})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(maxRequest))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(now.Add(window).Unix(), 10))

		c.Next()
	}
}
