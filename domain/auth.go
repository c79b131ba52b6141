package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/storefront/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"address"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	// GenerateNonce issues a one time nonce the wallet has to sign
	GenerateNonce(ctx ctx.Ctx, address Address) (string, error)
	// SignToken exchanges a signature over the nonce message for a JWT
	SignToken(ctx ctx.Ctx, address Address, signature string) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (Address, error)
}
