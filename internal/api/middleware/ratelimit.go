package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/talentboard/job-board-api/internal/api/metrics"
)

const (
	defaultWindow = 15 * time.Minute
	defaultMax    = 100
)

// RateLimitConfig configures one limiter instance. Class labels the route
// class in metrics ("global", "auth", "sensitive").
type RateLimitConfig struct {
	Class   string
	Window  time.Duration
	Max     int
	Message string
}

type rateWindow struct {
	count int
	start time.Time
}

// RateLimiter is a fixed-window request counter keyed by client IP. All
// increments for a key are serialized under the mutex, so simultaneous
// bursts from one client cannot undercount.
type RateLimiter struct {
	cfg RateLimitConfig

	mu        sync.Mutex
	windows   map[string]*rateWindow
	lastSweep time.Time

	now func() time.Time
}

func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.Window <= 0 {
		cfg.Window = defaultWindow
	}
	if cfg.Max <= 0 {
		cfg.Max = defaultMax
	}
	if cfg.Message == "" {
		cfg.Message = "Too many requests from this IP, please try again later"
	}
	now := time.Now
	return &RateLimiter{
		cfg:       cfg,
		windows:   make(map[string]*rateWindow),
		lastSweep: now(),
		now:       now,
	}
}

// Allow records a hit for key and reports whether it fits the window
// budget. When the budget is exhausted it returns the time remaining until
// the window resets.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	w := rl.windows[key]
	if w == nil || now.Sub(w.start) >= rl.cfg.Window {
		rl.windows[key] = &rateWindow{count: 1, start: now}
		return true, 0
	}

	w.count++
	if w.count > rl.cfg.Max {
		return false, w.start.Add(rl.cfg.Window).Sub(now)
	}
	return true, 0
}

// sweep drops expired windows at most once per window, bounding the map.
// Caller holds the mutex.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.cfg.Window {
		return
	}
	for key, w := range rl.windows {
		if now.Sub(w.start) >= rl.cfg.Window {
			delete(rl.windows, key)
		}
	}
	rl.lastSweep = now
}

// Middleware rejects over-budget clients with 429 before any downstream
// stage runs, including authentication and password hashing.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, retryAfter := rl.Allow(c.RealIP())
			if !ok {
				secs := int(retryAfter/time.Second) + 1
				c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
				metrics.RateLimitRejectionsTotal.WithLabelValues(rl.cfg.Class).Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, rl.cfg.Message)
			}
			return next(c)
		}
	}
}
