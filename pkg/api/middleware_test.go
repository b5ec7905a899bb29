package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/config"
)

func TestRateLimiterAllowsWithinBudget(t *testing.T) {
	limiter := newRateLimiter(config.RateLimitConfig{Requests: 3, Window: time.Minute})
	now := time.Now()

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.allow("10.0.0.1", now), "request %d should be allowed", i)
	}
	assert.False(t, limiter.allow("10.0.0.1", now))
}

func TestRateLimiterWindowSlides(t *testing.T) {
	limiter := newRateLimiter(config.RateLimitConfig{Requests: 2, Window: time.Minute})
	now := time.Now()

	assert.True(t, limiter.allow("10.0.0.1", now))
	assert.True(t, limiter.allow("10.0.0.1", now.Add(time.Second)))
	assert.False(t, limiter.allow("10.0.0.1", now.Add(2*time.Second)))

	// The first request ages out of the window.
	assert.True(t, limiter.allow("10.0.0.1", now.Add(61*time.Second)))
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	limiter := newRateLimiter(config.RateLimitConfig{Requests: 1, Window: time.Minute})
	now := time.Now()

	assert.True(t, limiter.allow("10.0.0.1", now))
	assert.False(t, limiter.allow("10.0.0.1", now))
	assert.True(t, limiter.allow("10.0.0.2", now))
}

func TestRateLimitMiddlewareReturns429(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(rateLimit(config.RateLimitConfig{Requests: 1, Window: time.Minute}))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(securityHeaders())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
