package middleware

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"sync"
	"time"

	"firelink/config"
	deliverycontext "firelink/internal/delivery/context"
	domainerrors "firelink/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const defaultLimiterCleanupInterval = 5 * time.Minute

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiterParams holds dependencies for RateLimiter, injected by Fx.
type RateLimiterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// RateLimiter throttles the auth endpoints per client IP.
type RateLimiter struct {
	enabled         bool
	limit           rate.Limit
	burst           int
	cleanupInterval time.Duration
	logger          *slog.Logger

	mu       sync.RWMutex
	limiters map[string]*clientLimiter

	stopCh chan struct{}
}

// NewRateLimiter creates the limiter and stops its cleanup loop with the application.
func NewRateLimiter(params RateLimiterParams) *RateLimiter {
	rl := newRateLimiter(params.Config.RateLimit, defaultLimiterCleanupInterval, params.Logger)
	if rl.enabled {
		go rl.cleanupLoop()
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				rl.Stop()

				return nil
			},
		})
	}

	return rl
}

func newRateLimiter(cfg *config.RateLimitConfig, cleanupInterval time.Duration, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		cleanupInterval: cleanupInterval,
		logger:          logger,
		limiters:        make(map[string]*clientLimiter),
		stopCh:          make(chan struct{}),
	}
	if cfg != nil && cfg.RequestsPerSecond > 0 {
		rl.enabled = true
		rl.limit = rate.Limit(cfg.RequestsPerSecond)
		rl.burst = max(cfg.Burst, 1)
	}

	return rl
}

// Stop ends the cleanup loop.
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

// Limit rejects requests above the configured rate with ErrRateLimited.
func (rl *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !rl.enabled {
			return next(c)
		}

		clientIP := c.RealIP()
		if !rl.limiterFor(clientIP).Allow() {
			retryAfter := max(int(math.Ceil(1.0/float64(rl.limit))), 1)
			c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), rl.logger).Warn("Rate limit exceeded",
				slog.String("remote_ip", clientIP),
			)

			return errors.WithStack(domainerrors.ErrRateLimited)
		}

		return next(c)
	}
}

// LimiterCount returns the number of tracked clients.
func (rl *RateLimiter) LimiterCount() int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()

	return len(rl.limiters)
}

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.RLock()
	cl, exists := rl.limiters[key]
	rl.mu.RUnlock()

	if exists {
		rl.mu.Lock()
		cl.lastAccess = time.Now()
		rl.mu.Unlock()

		return cl.limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if cl, exists := rl.limiters[key]; exists {
		cl.lastAccess = time.Now()

		return cl.limiter
	}

	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.limiters[key] = &clientLimiter{limiter: limiter, lastAccess: time.Now()}

	return limiter
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup(time.Now())
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup drops clients idle for more than two cleanup intervals.
func (rl *RateLimiter) cleanup(now time.Time) {
	ttl := rl.cleanupInterval * 2

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, cl := range rl.limiters {
		if now.Sub(cl.lastAccess) > ttl {
			delete(rl.limiters, key)
		}
	}
}
