package auth

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"interview-hub/internal/api"
	"interview-hub/internal/database"
	"interview-hub/internal/middleware"
	"interview-hub/internal/model"
	"interview-hub/internal/service"
	"interview-hub/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	hashPassword     = service.HashPassword
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
	createUser       = store.CreateUser
	getUserByEmail   = store.GetUserByEmail
	getUserByID      = store.GetUserByID
)

func userResponse(u *model.User) api.UserResponse {
	return api.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// @Summary     Register a new user
// @Description Create an account and return a bearer token (email is lowercased)
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "Registration payload"
// @Success     201 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		req.Email = strings.ToLower(req.Email)
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid email format"})
		}

		// The unique index on email covers the race between this check and
		// the insert below.
		if _, err := getUserByEmail(c.Request().Context(), db, req.Email); err == nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "User already exists"})
		} else if !errors.Is(err, pgx.ErrNoRows) {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
		})
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}

		token, err := issueAccessToken(*user, service.AccessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusCreated, api.AuthResponse{
			Token:   token,
			User:    userResponse(user),
			Message: "Registration successful",
		})
	}
}

// @Summary     Log in
// @Description Verify email and password, return a bearer token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "Login payload"
// @Success     200 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		// Unknown email and wrong password answer identically so responses
		// cannot be used to enumerate accounts.
		user, err := getUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Invalid credentials"})
			}
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}
		if err := authenticateUser(c.Request().Context(), *user, req.Password); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Invalid credentials"})
		}

		token, err := issueAccessToken(*user, service.AccessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.AuthResponse{
			Token:   token,
			User:    userResponse(user),
			Message: "Login successful",
		})
	}
}

// @Summary     Verify token
// @Description Echo the authenticated user for a valid bearer token
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.VerifyResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/verify [get]
func VerifyHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok || claims.UserID == 0 {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		user, err := getUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid token"})
		}
		return c.JSON(http.StatusOK, api.VerifyResponse{Valid: true, User: userResponse(user)})
	}
}
