package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
	"zenith-bank/config"
	"zenith-bank/logger"
	"zenith-bank/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.Init()
	config.AppConfig.JWT.SecretKey = "test-secret"
	os.Exit(m.Run())
}

func signTestToken(t *testing.T, userID int, isAdmin bool, ttl time.Duration) string {
	claims := &model.AppClaims{
		UserID:  userID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.AppConfig.JWT.SecretKey))
	assert.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("valid token populates the request context", func(t *testing.T) {
		var gotUserID int
		var gotIsAdmin bool
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUserID, _ = r.Context().Value(UserIDKey).(int)
			gotIsAdmin, _ = r.Context().Value(IsAdminKey).(bool)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, 42, true, time.Minute))
		rec := httptest.NewRecorder()

		AuthMiddleware(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 42, gotUserID)
		assert.True(t, gotIsAdmin)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
		rec := httptest.NewRecorder()

		AuthMiddleware(http.NotFoundHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()

		AuthMiddleware(http.NotFoundHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, 42, false, -time.Minute))
		rec := httptest.NewRecorder()

		AuthMiddleware(http.NotFoundHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAdminMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		req = req.WithContext(context.WithValue(req.Context(), IsAdminKey, true))
		rec := httptest.NewRecorder()

		AdminMiddleware(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("regular user is denied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		req = req.WithContext(context.WithValue(req.Context(), IsAdminKey, false))
		rec := httptest.NewRecorder()

		AdminMiddleware(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing admin flag is denied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		rec := httptest.NewRecorder()

		AdminMiddleware(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
