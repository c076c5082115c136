package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRateLimitedRouter(rl *RateLimiter) *gin.Engine {
	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("allows requests within rate limit", func(t *testing.T) {
		rl := NewRateLimiter(10, 20)
		router := newRateLimitedRouter(rl)

		for i := 0; i < 10; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("X-Forwarded-For", "192.168.1.1")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "10", w.Header().Get("X-RateLimit-Limit"))
		}
	})

	t.Run("blocks requests exceeding burst", func(t *testing.T) {
		rl := NewRateLimiter(1, 2)
		router := newRateLimitedRouter(rl)

		var lastCode int
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("X-Forwarded-For", "192.168.1.2")
			router.ServeHTTP(w, req)
			lastCode = w.Code
		}

		assert.Equal(t, http.StatusTooManyRequests, lastCode)
	})

	t.Run("limited response carries retry headers", func(t *testing.T) {
		rl := NewRateLimiter(1, 1)
		router := newRateLimitedRouter(rl)

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("X-Forwarded-For", "192.168.1.3")
			router.ServeHTTP(w, req)
			if w.Code == http.StatusTooManyRequests {
				assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
				assert.Equal(t, "1", w.Header().Get("Retry-After"))
			}
		}
	})

	t.Run("clients are limited independently", func(t *testing.T) {
		rl := NewRateLimiter(1, 1)
		router := newRateLimitedRouter(rl)

		// Exhaust one client's bucket
		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("X-Forwarded-For", "10.0.0.1")
			router.ServeHTTP(w, req)
		}

		// A different client is unaffected
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0.2")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("health endpoint is exempt", func(t *testing.T) {
		rl := NewRateLimiter(1, 1)
		router := newRateLimitedRouter(rl)

		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.Header.Set("X-Forwarded-For", "192.168.1.4")
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("concurrent access is safe", func(t *testing.T) {
		rl := NewRateLimiter(100, 200)
		router := newRateLimitedRouter(rl)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				w := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodGet, "/test", nil)
				req.Header.Set("X-Forwarded-For", fmt.Sprintf("172.16.0.%d", n))
				router.ServeHTTP(w, req)
			}(i)
		}
		wg.Wait()
	})
}
