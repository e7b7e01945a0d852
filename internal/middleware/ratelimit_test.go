package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"interview-hub/internal/cache"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRateLimit(t *testing.T) {
	newCtx := func() (echo.Context, *httptest.ResponseRecorder) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}
	ok := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }

	t.Run("under limit", func(t *testing.T) {
		expired := ""
		rdb := &cache.FakeCache{
			IncrFn: func(ctx context.Context, key string) *redis.IntCmd {
				return redis.NewIntResult(1, nil)
			},
			ExpireFn: func(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd {
				expired = key
				require.Equal(t, time.Minute, ttl)
				return redis.NewBoolResult(true, nil)
			},
		}
		ctx, rec := newCtx()
		require.NoError(t, RateLimit(rdb, 2, time.Minute)(ok)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		// window starts on the first hit only
		require.Equal(t, "ratelimit:10.0.0.1", expired)
	})

	t.Run("over limit", func(t *testing.T) {
		rdb := &cache.FakeCache{
			IncrFn: func(ctx context.Context, key string) *redis.IntCmd {
				return redis.NewIntResult(3, nil)
			},
		}
		ctx, _ := newCtx()
		err := RateLimit(rdb, 2, time.Minute)(ok)(ctx)
		require.Error(t, err)
		he, isHTTP := err.(*echo.HTTPError)
		require.True(t, isHTTP)
		require.Equal(t, http.StatusTooManyRequests, he.Code)
	})

	t.Run("expire error drops the counter and passes through", func(t *testing.T) {
		deleted := ""
		rdb := &cache.FakeCache{
			IncrFn: func(ctx context.Context, key string) *redis.IntCmd {
				return redis.NewIntResult(1, nil)
			},
			ExpireFn: func(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd {
				return redis.NewBoolResult(false, errors.New("down"))
			},
			DelFn: func(ctx context.Context, keys ...string) *redis.IntCmd {
				require.Len(t, keys, 1)
				deleted = keys[0]
				return redis.NewIntResult(1, nil)
			},
		}
		ctx, rec := newCtx()
		require.NoError(t, RateLimit(rdb, 1, time.Minute)(ok)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		// a counter without an expiry would never reset
		require.Equal(t, "ratelimit:10.0.0.1", deleted)
	})

	t.Run("redis error passes through", func(t *testing.T) {
		rdb := &cache.FakeCache{
			IncrFn: func(ctx context.Context, key string) *redis.IntCmd {
				return redis.NewIntResult(0, errors.New("down"))
			},
		}
		ctx, rec := newCtx()
		require.NoError(t, RateLimit(rdb, 1, time.Minute)(ok)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})
}
