package service

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"
	"zenith-bank/config"
	"zenith-bank/logger"
	"zenith-bank/model"
	"zenith-bank/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrBadPassword         = errors.New("wrong password")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// TokenPair is the result of a successful login: a short-lived access token
// and a longer-lived refresh token.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthService handles password verification and token issuance.
type AuthService struct {
	userRepo  repository.IUserRepository
	tokenRepo repository.ITokenRepository
}

func NewAuthService(userRepo repository.IUserRepository, tokenRepo repository.ITokenRepository) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
	}
}

func getJwtKey() []byte {
	return []byte(config.AppConfig.JWT.SecretKey)
}

func accessTokenTTL() time.Duration {
	if minutes := config.AppConfig.JWT.AccessTTLMinutes; minutes > 0 {
		return time.Duration(minutes) * time.Minute
	}
	return 15 * time.Minute
}

func refreshTokenTTL() time.Duration {
	if days := config.AppConfig.JWT.RefreshTTLDays; days > 0 {
		return time.Duration(days) * 24 * time.Hour
	}
	return 7 * 24 * time.Hour
}

func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), nil
}

func (s *AuthService) CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateAccessToken signs a short-lived JWT carrying the user's id and
// admin flag.
func (s *AuthService) GenerateAccessToken(user *model.User) (string, error) {
	claims := &model.AppClaims{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL())),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(getJwtKey())
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", user.ID).Error("Failed to sign JWT")
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}

	return tokenString, nil
}

// Login verifies the credentials and issues a token pair. The raw refresh
// token is returned to the caller; only its hash is persisted.
func (s *AuthService) Login(username, password string) (*TokenPair, error) {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !s.CheckPasswordHash(password, user.Password) {
		logger.Log.WithField("username", username).Warn("Login attempt with wrong password")
		return nil, ErrBadPassword
	}

	accessToken, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	rawRefresh := uuid.NewString()
	refreshToken := &model.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(rawRefresh),
		ExpiresAt: time.Now().Add(refreshTokenTTL()),
	}
	if err := s.tokenRepo.Create(refreshToken); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: rawRefresh}, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *AuthService) Refresh(rawRefresh string) (string, error) {
	stored, err := s.tokenRepo.GetByTokenHash(hashToken(rawRefresh))
	if err != nil {
		if err == sql.ErrNoRows {
			return "", ErrInvalidRefreshToken
		}
		return "", err
	}

	if time.Now().After(stored.ExpiresAt) {
		return "", ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetUserByID(stored.UserID)
	if err != nil {
		return "", err
	}

	return s.GenerateAccessToken(user)
}

// Logout invalidates every refresh token the user holds.
func (s *AuthService) Logout(userID int) error {
	return s.tokenRepo.DeleteByUserID(userID)
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
