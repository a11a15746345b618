package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/lendapi/base/ctx"
)

// JwtCustomClaims binds the caller address to a token
type JwtCustomClaims struct {
	Address string `json:"address"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	SignToken(c ctx.Ctx, address Address) (string, error)
	ParseToken(c ctx.Ctx, token string) (string, error)
}
