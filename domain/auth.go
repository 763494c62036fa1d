package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/bidbay/goapi/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"data"`
	jwt.StandardClaims
}

// AuthUsecase mints bearer tokens for wallet owners. Callers first fetch
// a nonce, sign the nonce message with the wallet key, then trade the
// signature for a token.
type AuthUsecase interface {
	GenerateNonce(ctx ctx.Ctx, address Address) (int32, error)
	SignToken(ctx ctx.Ctx, address Address, signature string) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (address string, err error)
}
