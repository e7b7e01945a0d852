// @title        Interview Hub API
// @version      1.0
// @description  REST backend for crowdsourced interview-experience sharing
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"interview-hub/internal/cache"
	"interview-hub/internal/database"
	"interview-hub/internal/router"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "interview-hub/docs"

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL not set")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return fmt.Errorf("REDIS_ADDR not set")
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisIndex := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB: %v", err)
		}
		redisIndex = i
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	rateLimitMax := 100
	if v := os.Getenv("RATE_LIMIT_MAX"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m <= 0 {
			return fmt.Errorf("invalid RATE_LIMIT_MAX: %q", v)
		}
		rateLimitMax = m
	}
	rateLimitWindow := 15 * time.Minute
	if v := os.Getenv("RATE_LIMIT_WINDOW"); v != "" {
		w, err := time.ParseDuration(v)
		if err != nil || w <= 0 {
			return fmt.Errorf("invalid RATE_LIMIT_WINDOW: %q", v)
		}
		rateLimitWindow = w
	}

	db, err := newPgxPool(context.Background(), dbURL)
	if err != nil {
		return fmt.Errorf("database connection failed: %v", err)
	}
	defer db.Close()

	redis, err := newRedisClient(redisAddr, redisPassword, redisIndex)
	if err != nil {
		return fmt.Errorf("redis connection failed: %v", err)
	}
	defer redis.Close()

	if err := runMigrationsFn(dbURL); err != nil {
		return fmt.Errorf("migration failed: %v", err)
	}

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	router.Setup(e, db, redis, router.Options{
		RateLimitMax:    rateLimitMax,
		RateLimitWindow: rateLimitWindow,
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, ":"+port)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
