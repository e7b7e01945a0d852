package router

import (
	"net/http"
	"testing"
	"time"

	"interview-hub/internal/cache"
	"interview-hub/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, Options{RateLimitMax: 100, RateLimitWindow: time.Minute})

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/auth/register",
		http.MethodPost + " /api/auth/login",
		http.MethodGet + " /api/auth/verify",
		http.MethodGet + " /api/submissions",
		http.MethodPost + " /api/submissions",
		http.MethodGet + " /api/submissions/user/submissions",
		http.MethodGet + " /api/submissions/:id",
		http.MethodPut + " /api/submissions/:id",
		http.MethodDelete + " /api/submissions/:id",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}
