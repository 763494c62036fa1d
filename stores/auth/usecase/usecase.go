package usecase

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/bidbay/goapi/base/ctx"
	"github.com/bidbay/goapi/base/ethereum"
	"github.com/bidbay/goapi/domain"
	"github.com/bidbay/goapi/domain/account"
)

const nonceRange = int32(9999999)

type AuthUseCaseCfg struct {
	AccountRepo  account.Repo
	JwtSecret    string
	TokenTTL     time.Duration
	SignatureMsg string
}

type impl struct {
	accountRepo  account.Repo
	jwtSecret    []byte
	tokenTTL     time.Duration
	signatureMsg string
}

func New(cfg *AuthUseCaseCfg) domain.AuthUsecase {
	return &impl{
		accountRepo:  cfg.AccountRepo,
		jwtSecret:    []byte(cfg.JwtSecret),
		tokenTTL:     cfg.TokenTTL,
		signatureMsg: cfg.SignatureMsg,
	}
}

func (im *impl) GenerateNonce(ctx ctx.Ctx, address domain.Address) (int32, error) {
	if address.IsZero() {
		return 0, domain.ErrZeroAddress
	}

	nonce := rand.Int31n(nonceRange)
	if err := im.accountRepo.Upsert(ctx, &account.Account{
		Address: address,
		Nonce:   nonce,
	}); err != nil {
		ctx.WithField("err", err).Error("accountRepo.Upsert failed")
		return 0, err
	}
	return nonce, nil
}

func (im *impl) SignToken(ctx ctx.Ctx, address domain.Address, signature string) (string, error) {
	if address.IsZero() {
		return "", domain.ErrZeroAddress
	}

	a, err := im.accountRepo.Get(ctx, address)
	if err == domain.ErrNotFound {
		return "", domain.ErrInvalidNonce
	} else if err != nil {
		ctx.WithField("err", err).Error("accountRepo.Get failed")
		return "", err
	}
	if a.Nonce == account.InvalidNonce {
		return "", domain.ErrInvalidNonce
	}

	// a nonce is consumed by its first validation attempt, pass or fail
	defer im.accountRepo.Upsert(ctx, &account.Account{
		Address: address,
		Nonce:   account.InvalidNonce,
	})

	msg := im.makeMessageWithNonce(strconv.Itoa(int(a.Nonce)))
	if isValid, err := ethereum.ValidateMsgSignature(msg, signature, string(address)); err != nil {
		ctx.WithField("err", err).Error("ValidateMsgSignature failed")
		return "", domain.ErrInvalidSignature
	} else if !isValid {
		return "", domain.ErrInvalidSignature
	}

	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(im.tokenTTL).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) makeMessageWithNonce(nonce string) []byte {
	return []byte(fmt.Sprintf(im.signatureMsg, nonce))
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (string, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return claims.Address, nil
	}

	return "", domain.ErrNoRights
}
