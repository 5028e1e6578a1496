package handler

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"zenith-bank/model"
	"zenith-bank/service"

	"github.com/stretchr/testify/assert"
)

// ghostUserRepo knows no users, so every login attempt fails.
type ghostUserRepo struct{}

func (ghostUserRepo) CreateUser(tx *sql.Tx, user *model.User) error { return nil }
func (ghostUserRepo) GetUserByUsername(username string) (*model.User, error) {
	return nil, sql.ErrNoRows
}
func (ghostUserRepo) GetUserByEmail(email string) (*model.User, error) { return nil, sql.ErrNoRows }
func (ghostUserRepo) GetUserByID(id int) (*model.User, error)         { return nil, sql.ErrNoRows }
func (ghostUserRepo) CountUsers() (int, error)                        { return 0, nil }

type noopTokenRepo struct{}

func (noopTokenRepo) Create(token *model.RefreshToken) error { return nil }
func (noopTokenRepo) GetByTokenHash(tokenHash string) (*model.RefreshToken, error) {
	return nil, sql.ErrNoRows
}
func (noopTokenRepo) DeleteByUserID(userID int) error { return nil }

func postLogin(h *UserHandler, remoteAddr string) *httptest.ResponseRecorder {
	body := `{"username": "ghost", "password": "password123"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	ErrorHandlingMiddleware(h.Login)(rec, req)
	return rec
}

func TestUserHandler_LoginRateLimiting(t *testing.T) {
	authService := service.NewAuthService(ghostUserRepo{}, noopTokenRepo{})

	t.Run("repeated failures from one address are throttled", func(t *testing.T) {
		h := NewUserHandler(nil, authService, service.NewLoginLimiter(3, time.Minute))

		for i := 0; i < 3; i++ {
			rec := postLogin(h, "1.2.3.4:5678")
			assert.Equal(t, http.StatusUnauthorized, rec.Code, "attempt %d", i)
		}

		rec := postLogin(h, "1.2.3.4:5678")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), "Too many attempts")
	})

	t.Run("other addresses are unaffected", func(t *testing.T) {
		h := NewUserHandler(nil, authService, service.NewLoginLimiter(1, time.Minute))

		postLogin(h, "1.2.3.4:5678")
		assert.Equal(t, http.StatusTooManyRequests, postLogin(h, "1.2.3.4:9999").Code, "same host, different port")
		assert.Equal(t, http.StatusUnauthorized, postLogin(h, "5.6.7.8:5678").Code)
	})
}

func TestUserHandler_LoginValidation(t *testing.T) {
	authService := service.NewAuthService(ghostUserRepo{}, noopTokenRepo{})
	h := NewUserHandler(nil, authService, service.NewLoginLimiter(5, time.Minute))

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username": "ghost"}`))
	req.RemoteAddr = "1.2.3.4:5678"
	rec := httptest.NewRecorder()

	ErrorHandlingMiddleware(h.Login)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
