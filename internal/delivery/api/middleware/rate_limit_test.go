package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"firelink/config"
	domainerrors "firelink/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func createTestLimitedServer(t *testing.T, cfg *config.RateLimitConfig) (*echo.Echo, *RateLimiter) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rl := newRateLimiter(cfg, time.Minute, logger)

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError
	e.GET("/auth/state", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, rl.Limit)

	return e, rl
}

func requestFrom(e *echo.Echo, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/auth/state", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRateLimiter_Limit(t *testing.T) {
	e, rl := createTestLimitedServer(t, &config.RateLimitConfig{RequestsPerSecond: 0.5, Burst: 2})

	assert.Equal(t, http.StatusNoContent, requestFrom(e, "10.0.0.1:1000").Code)
	assert.Equal(t, http.StatusNoContent, requestFrom(e, "10.0.0.1:1001").Code)

	rec := requestFrom(e, "10.0.0.1:1002")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), domainerrors.ErrRateLimited.ErrorCode())

	// Other clients have their own bucket.
	assert.Equal(t, http.StatusNoContent, requestFrom(e, "10.0.0.2:1000").Code)
	assert.Equal(t, 2, rl.LimiterCount())
}

func TestRateLimiter_Disabled(t *testing.T) {
	e, rl := createTestLimitedServer(t, nil)

	for range 10 {
		assert.Equal(t, http.StatusNoContent, requestFrom(e, "10.0.0.1:1000").Code)
	}
	assert.Zero(t, rl.LimiterCount())
}

func TestRateLimiter_CleanupDropsIdleClients(t *testing.T) {
	e, rl := createTestLimitedServer(t, &config.RateLimitConfig{RequestsPerSecond: 10, Burst: 10})

	requestFrom(e, "10.0.0.1:1000")
	requestFrom(e, "10.0.0.2:1000")
	assert.Equal(t, 2, rl.LimiterCount())

	rl.cleanup(time.Now().Add(time.Minute))
	assert.Equal(t, 2, rl.LimiterCount())

	rl.cleanup(time.Now().Add(3 * time.Minute))
	assert.Zero(t, rl.LimiterCount())
}
