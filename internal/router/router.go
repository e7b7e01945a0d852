package router

import (
	"time"

	"github.com/labstack/echo/v4"

	"interview-hub/internal/cache"
	"interview-hub/internal/database"
	"interview-hub/internal/handler"
	"interview-hub/internal/handler/auth"
	"interview-hub/internal/handler/submissions"
	"interview-hub/internal/middleware"
)

// Options carries the rate-limit settings resolved from the environment.
type Options struct {
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// Setup registers every route. The rate limiter wraps the whole /api group.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, opts Options) {
	api := e.Group("/api", middleware.RateLimit(rdb, opts.RateLimitMax, opts.RateLimitWindow))

	api.GET("/ping", handler.PingHandler(db, rdb))

	api.POST("/auth/register", auth.RegisterHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db))
	api.GET("/auth/verify", auth.VerifyHandler(db), middleware.RequireAuth)

	apiSubs := api.Group("/submissions")
	apiSubs.GET("", submissions.ListSubmissionsHandler(db))
	apiSubs.POST("", submissions.CreateSubmissionHandler(db), middleware.RequireAuth)
	apiSubs.GET("/user/submissions", submissions.ListMySubmissionsHandler(db), middleware.RequireAuth)
	apiSubs.GET("/:id", submissions.GetSubmissionHandler(db))
	apiSubs.PUT("/:id", submissions.UpdateSubmissionHandler(db), middleware.RequireAuth)
	apiSubs.DELETE("/:id", submissions.DeleteSubmissionHandler(db), middleware.RequireAuth)
}
