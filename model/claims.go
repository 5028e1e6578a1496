package model

import "github.com/golang-jwt/jwt/v5"

type AppClaims struct {
	UserID  int  `json:"user_id"`
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}
