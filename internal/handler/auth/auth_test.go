package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"interview-hub/internal/database"
	"interview-hub/internal/middleware"
	"interview-hub/internal/model"
	"interview-hub/internal/service"
	"interview-hub/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func newJSONCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func restore() {
	hashPassword = service.HashPassword
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
	createUser = store.CreateUser
	getUserByEmail = store.GetUserByEmail
	getUserByID = store.GetUserByID
}

func TestRegisterHandler(t *testing.T) {
	e := echo.New()
	e.Validator = &stubValidator{}

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, "{")
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		bad := echo.New()
		bad.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newJSONCtx(bad, `{"name":"A"}`)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, `{"name":"A","email":"not-an-email","password":"secret1"}`)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid email format")
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByEmail = func(ctx context.Context, db database.DB, email string) (*model.User, error) {
			require.Equal(t, "alice@example.com", email)
			return &model.User{ID: 1}, nil
		}
		ctx, rec := newJSONCtx(e, `{"name":"A","email":"Alice@Example.com","password":"secret1"}`)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "User already exists")
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		t.Setenv("JWT_SECRET", "s")
		getUserByEmail = func(ctx context.Context, db database.DB, email string) (*model.User, error) {
			return nil, fmt.Errorf("not found: %w", pgx.ErrNoRows)
		}
		createUser = func(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
			require.Equal(t, "alice@example.com", u.Email)
			require.NotEqual(t, "secret1", u.PasswordHash)
			u.ID = 7
			u.CreatedAt = time.Now()
			return u, nil
		}
		ctx, rec := newJSONCtx(e, `{"name":"Alice","email":"Alice@Example.com","password":"secret1"}`)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Contains(t, rec.Body.String(), `"token"`)
		require.Contains(t, rec.Body.String(), "Registration successful")
		require.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("create error", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByEmail = func(ctx context.Context, db database.DB, email string) (*model.User, error) {
			return nil, fmt.Errorf("not found: %w", pgx.ErrNoRows)
		}
		createUser = func(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
			return nil, errors.New("insert failed")
		}
		ctx, rec := newJSONCtx(e, `{"name":"Alice","email":"alice@example.com","password":"secret1"}`)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "internal server error")
		require.NotContains(t, rec.Body.String(), "insert failed")
	})

	t.Run("lookup failure", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByEmail = func(ctx context.Context, db database.DB, email string) (*model.User, error) {
			return nil, errors.New("connection refused")
		}
		createUser = func(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
			t.Fatal("create must not run when the lookup fails")
			return nil, nil
		}
		ctx, rec := newJSONCtx(e, `{"name":"Alice","email":"alice@example.com","password":"secret1"}`)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "internal server error")
	})

	t.Run("token error", func(t *testing.T) {
		t.Cleanup(restore)
		t.Setenv("JWT_SECRET", "")
		getUserByEmail = func(ctx context.Context, db database.DB, email string) (*model.User, error) {
			return nil, fmt.Errorf("not found: %w", pgx.ErrNoRows)
		}
		createUser = func(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
			u.ID = 7
			return u, nil
		}
		ctx, rec := newJSONCtx(e, `{"name":"Alice","email":"alice@example.com","password":"secret1"}`)
		require.NoError(t, RegisterHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	e := echo.New()
	e.Validator = &stubValidator{}

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, "{")
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByEmail = func(ctx context.Context, db database.DB, email string) (*model.User, error) {
			return nil, fmt.Errorf("not found: %w", pgx.ErrNoRows)
		}
		ctx, rec := newJSONCtx(e, `{"email":"a@b.c","password":"x"}`)
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid credentials")
	})

	t.Run("store failure", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByEmail = func(ctx context.Context, db database.DB, email string) (*model.User, error) {
			return nil, errors.New("connection refused")
		}
		ctx, rec := newJSONCtx(e, `{"email":"a@b.c","password":"x"}`)
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "internal server error")
		require.NotContains(t, rec.Body.String(), "connection refused")
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Cleanup(restore)
		hash, _ := service.HashPassword("other")
		getUserByEmail = func(ctx context.Context, db database.DB, email string) (*model.User, error) {
			return &model.User{ID: 1, PasswordHash: hash}, nil
		}
		ctx, rec := newJSONCtx(e, `{"email":"a@b.c","password":"x"}`)
		require.NoError(t, LoginHandler(nil)(ctx))
		// indistinguishable from the unknown-email case
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid credentials")
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		t.Setenv("JWT_SECRET", "s")
		hash, _ := service.HashPassword("pw")
		getUserByEmail = func(ctx context.Context, db database.DB, email string) (*model.User, error) {
			require.Equal(t, "a@b.c", email)
			return &model.User{ID: 1, Name: "A", Email: email, PasswordHash: hash}, nil
		}
		ctx, rec := newJSONCtx(e, `{"email":"A@B.C","password":"pw"}`)
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"token"`)
		require.Contains(t, rec.Body.String(), "Login successful")
	})

	t.Run("token error", func(t *testing.T) {
		t.Cleanup(restore)
		t.Setenv("JWT_SECRET", "")
		hash, _ := service.HashPassword("pw")
		getUserByEmail = func(ctx context.Context, db database.DB, email string) (*model.User, error) {
			return &model.User{ID: 1, PasswordHash: hash}, nil
		}
		ctx, rec := newJSONCtx(e, `{"email":"a@b.c","password":"pw"}`)
		require.NoError(t, LoginHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestVerifyHandler(t *testing.T) {
	e := echo.New()

	newCtx := func(claims *service.CustomClaims) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		if claims != nil {
			ctx.Set(middleware.ContextUserKey, claims)
		}
		return ctx, rec
	}

	t.Run("missing claims", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newCtx(nil)
		require.NoError(t, VerifyHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("user gone", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByID = func(ctx context.Context, db database.DB, id int) (*model.User, error) {
			return nil, fmt.Errorf("not found: %w", pgx.ErrNoRows)
		}
		ctx, rec := newCtx(&service.CustomClaims{UserID: 3})
		require.NoError(t, VerifyHandler(nil)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		getUserByID = func(ctx context.Context, db database.DB, id int) (*model.User, error) {
			require.Equal(t, 3, id)
			return &model.User{ID: 3, Name: "A", Email: "a@b.c"}, nil
		}
		ctx, rec := newCtx(&service.CustomClaims{UserID: 3})
		require.NoError(t, VerifyHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"valid":true`)
	})
}
