package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/agustiinveraa/inmoflow/internal/config"
	"github.com/agustiinveraa/inmoflow/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// limitedRouter stamps the given agency onto the request before the limiter,
// the way the membership middleware does in the real route setup.
func limitedRouter(rl *middleware.AgencyRateLimiter, agencyID *uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/clients",
		func(c *gin.Context) {
			if agencyID != nil {
				c.Set(middleware.AgencyIDKey, *agencyID)
			}
		},
		rl.Middleware(),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return router
}

func TestRateLimiterHonorsConfiguredBudget(t *testing.T) {
	// The operator's RATE_LIMIT_REQUESTS / RATE_LIMIT_DURATION pair becomes
	// the limiter's refill rate and burst.
	cfg := config.RateLimitConfig{Requests: 1, Duration: 60}
	rl := middleware.NewAgencyRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.Requests) / float64(cfg.Duration),
		BurstSize:         cfg.Requests,
		CleanupInterval:   time.Minute,
		EntryTTL:          time.Minute,
	})

	agencyID := uuid.New()
	router := limitedRouter(rl, &agencyID)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/clients", nil))
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/clients", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimiterIsolatesAgencies(t *testing.T) {
	rl := middleware.NewAgencyRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: 0.01,
		BurstSize:         1,
		CleanupInterval:   time.Minute,
		EntryTTL:          time.Minute,
	})

	busyID := uuid.New()
	busy := limitedRouter(rl, &busyID)

	w := httptest.NewRecorder()
	busy.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/clients", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	busy.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/clients", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// A different agency has its own budget
	otherID := uuid.New()
	other := limitedRouter(rl, &otherID)
	w = httptest.NewRecorder()
	other.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/clients", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterSkipsRequestsWithoutAgency(t *testing.T) {
	rl := middleware.NewAgencyRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: 0.01,
		BurstSize:         1,
		CleanupInterval:   time.Minute,
		EntryTTL:          time.Minute,
	})

	router := limitedRouter(rl, nil)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/clients", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
