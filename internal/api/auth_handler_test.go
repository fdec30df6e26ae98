package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pzaichkin/taskdeck/internal/api"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("creates a user and returns a token", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		router := env.router(uuid.Nil)

		body := strings.NewReader(`{"email":"a@b.com","password":"Abc123!"}`)
		req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp api.AuthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.NotNil(t, resp.UserID)
		assert.NotEqual(t, uuid.Nil, *resp.UserID)
		assert.Equal(t, "signed-token", resp.Token)
		assert.Len(t, env.users.Users, 1)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		env.seedUser(t, "a@b.com")
		router := env.router(uuid.Nil)

		body := strings.NewReader(`{"email":"a@b.com","password":"Abc123!"}`)
		req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("weak password is a bad request", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		router := env.router(uuid.Nil)

		body := strings.NewReader(`{"email":"a@b.com","password":"abc123!"}`)
		req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "uppercase")
	})

	t.Run("malformed email fails request validation", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		router := env.router(uuid.Nil)

		body := strings.NewReader(`{"email":"not-an-email","password":"Abc123!"}`)
		req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, env.users.Users)
	})

	t.Run("invalid JSON is a bad request", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		router := env.router(uuid.Nil)

		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("returns a token for valid credentials", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		env.seedUser(t, "a@b.com")
		router := env.router(uuid.Nil)

		body := strings.NewReader(`{"email":"a@b.com","password":"Abc123!"}`)
		req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.AuthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "signed-token", resp.Token)
	})

	t.Run("unknown email is unauthorized", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		router := env.router(uuid.Nil)

		body := strings.NewReader(`{"email":"nobody@b.com","password":"Abc123!"}`)
		req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid email or password")
	})
}

func TestDeleteAccount(t *testing.T) {
	t.Parallel()

	t.Run("removes the authenticated user", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		user := env.seedUser(t, "a@b.com")
		router := env.router(user.ID)

		req := httptest.NewRequest(http.MethodDelete, "/auth/me", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, env.users.Users)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		router := env.router(uuid.New())

		req := httptest.NewRequest(http.MethodDelete, "/auth/me", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
