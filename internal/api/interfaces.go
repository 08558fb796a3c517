package api

import (
	"github.com/berkaychi/ClimbUpAPI-sub001/pkg/entity"
	"github.com/golang-jwt/jwt/v5"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}
