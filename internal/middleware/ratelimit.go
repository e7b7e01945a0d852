package middleware

import (
	"net/http"
	"time"

	"interview-hub/internal/cache"

	"github.com/labstack/echo/v4"
)

// RateLimit applies a fixed-window request limit per client IP, counted in
// Redis so every instance shares the window. The window starts on the first
// request from an IP and the key expires with it. On Redis errors the request
// proceeds uncounted.
func RateLimit(rdb cache.Cache, max int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := "ratelimit:" + c.RealIP()

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if count == 1 {
				if err := rdb.Expire(ctx, key, window).Err(); err != nil {
					// A counter with no expiry would limit this IP forever;
					// drop it and let the request through.
					rdb.Del(ctx, key)
					return next(c)
				}
			}
			if count > int64(max) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
