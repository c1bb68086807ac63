package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

type window struct {
	count int
	start time.Time
}

// RateLimiter enforces a fixed-window per-IP request limit.
func RateLimiter(limit int, span time.Duration) echo.MiddlewareFunc {
	var (
		mu      sync.Mutex
		windows = make(map[string]*window)
	)

	prune := func(now time.Time) {
		for key, w := range windows {
			if now.Sub(w.start) > 2*span {
				delete(windows, key)
			}
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			now := time.Now()
			key := c.RealIP()

			mu.Lock()
			if len(windows) > 1024 {
				prune(now)
			}

			w, ok := windows[key]
			if !ok || now.Sub(w.start) > span {
				w = &window{start: now}
				windows[key] = w
			}

			if w.count >= limit {
				mu.Unlock()
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			w.count++
			mu.Unlock()

			return next(c)
		}
	}
}
