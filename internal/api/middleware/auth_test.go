package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pzaichkin/taskdeck/internal/api/middleware"
	"github.com/pzaichkin/taskdeck/internal/mocks"
	"github.com/pzaichkin/taskdeck/internal/service/auth"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	next := func(captured *uuid.UUID) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id, ok := middleware.GetUserID(r); ok {
				*captured = id
			}
			w.WriteHeader(http.StatusOK)
		})
	}

	t.Run("valid token passes the user ID through", func(t *testing.T) {
		t.Parallel()

		jwt := &mocks.MockJWTService{Claims: &auth.Claims{UserID: userID}}
		var captured uuid.UUID
		handler := middleware.NewAuthMiddleware(jwt).Authenticate(next(&captured))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID, captured)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		t.Parallel()

		handler := middleware.NewAuthMiddleware(&mocks.MockJWTService{}).
			Authenticate(next(new(uuid.UUID)))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Authorization header required")
	})

	t.Run("malformed header is unauthorized", func(t *testing.T) {
		t.Parallel()

		handler := middleware.NewAuthMiddleware(&mocks.MockJWTService{}).
			Authenticate(next(new(uuid.UUID)))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token is unauthorized", func(t *testing.T) {
		t.Parallel()

		jwt := &mocks.MockJWTService{ValidateErr: auth.ErrExpiredToken}
		handler := middleware.NewAuthMiddleware(jwt).Authenticate(next(new(uuid.UUID)))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer stale-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Token expired")
	})

	t.Run("invalid token is unauthorized", func(t *testing.T) {
		t.Parallel()

		jwt := &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken}
		handler := middleware.NewAuthMiddleware(jwt).Authenticate(next(new(uuid.UUID)))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid token")
	})
}
