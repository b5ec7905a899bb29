package api

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/config"
)

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

// requestLogger logs one line per request at debug level, errors at warn.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if status >= 500 {
			logger.Warn("Request failed", attrs...)
		} else {
			logger.Debug("Request handled", attrs...)
		}
	}
}

// ipWindow tracks request timestamps for one client inside the rolling
// window.
type ipWindow struct {
	times []time.Time
}

// rateLimiter enforces a per-IP rolling-window request budget.
type rateLimiter struct {
	mu       sync.Mutex
	clients  map[string]*ipWindow
	requests int
	window   time.Duration
}

func newRateLimiter(cfg config.RateLimitConfig) *rateLimiter {
	return &rateLimiter{
		clients:  make(map[string]*ipWindow),
		requests: cfg.Requests,
		window:   cfg.Window,
	}
}

// allow records one request for ip and reports whether it fits the
// window. Timestamps older than the window are pruned on access.
func (l *rateLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := now.Add(-l.window)
	w := l.clients[ip]
	if w == nil {
		w = &ipWindow{}
		l.clients[ip] = w
	}

	kept := w.times[:0]
	for _, t := range w.times {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	w.times = kept

	if len(w.times) >= l.requests {
		return false
	}
	w.times = append(w.times, now)
	return true
}

// rateLimit rejects requests over the per-IP budget with 429. A
// non-positive budget disables limiting.
func rateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	if cfg.Requests <= 0 || cfg.Window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiter := newRateLimiter(cfg)
	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP(), time.Now()) {
			writeError(c, http.StatusTooManyRequests, "rate limit exceeded")
			c.Abort()
			return
		}
		c.Next()
	}
}
