package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimit(3, time.Minute))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	for i := 0; i < 3; i++ {
		if rec := do(); rec.Code != http.StatusOK {
			t.Fatalf("Request %d: expected 200, got %d", i+1, rec.Code)
		}
	}

	rec := do()
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("Expected 429 after limit, got %d", rec.Code)
	}
}

func TestRateLimitPerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimit(1, time.Minute))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	if rec := do("10.0.0.1:1234"); rec.Code != http.StatusOK {
		t.Fatalf("First client: expected 200, got %d", rec.Code)
	}
	if rec := do("10.0.0.1:1234"); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("First client second request: expected 429, got %d", rec.Code)
	}
	if rec := do("10.0.0.2:1234"); rec.Code != http.StatusOK {
		t.Fatalf("Second client: expected 200, got %d", rec.Code)
	}
}

func TestRateLimiterSweep(t *testing.T) {
	limiter := NewRateLimiter(5, 100*time.Millisecond)

	past := time.Now().Add(-time.Second)
	limiter.hits["10.0.0.1"] = []time.Time{past, past}
	limiter.hits["10.0.0.2"] = []time.Time{time.Now()}

	limiter.sweep(time.Now())

	if _, exists := limiter.hits["10.0.0.1"]; exists {
		t.Error("Expected idle client to be dropped")
	}
	if len(limiter.hits["10.0.0.2"]) != 1 {
		t.Error("Expected fresh entry to survive")
	}
}

func TestRateLimiterWindowSlides(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)
	base := time.Now()

	if _, ok := limiter.Allow("10.0.0.1", base); !ok {
		t.Fatal("First hit rejected")
	}
	if _, ok := limiter.Allow("10.0.0.1", base.Add(time.Second)); !ok {
		t.Fatal("Second hit rejected")
	}
	if _, ok := limiter.Allow("10.0.0.1", base.Add(2*time.Second)); ok {
		t.Fatal("Third hit inside window allowed")
	}

	// Once the first hit ages out, capacity frees up
	if _, ok := limiter.Allow("10.0.0.1", base.Add(61*time.Second)); !ok {
		t.Error("Expected hit after window to be allowed")
	}
}
