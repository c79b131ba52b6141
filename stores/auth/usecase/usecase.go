package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/ethereum"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/keys"
	"github.com/x-xyz/storefront/service/redis"
)

const (
	nonceTtl = 10 * time.Minute
	tokenTtl = 24 * time.Hour
)

var timeNow = time.Now

type impl struct {
	jwtSecret          []byte
	signingMsgTemplate string
	redis              redis.Service
}

// New returns the wallet sign-in usecase. signingMsgTemplate holds one %s for the nonce.
func New(jwtSecret, signingMsgTemplate string, redis redis.Service) domain.AuthUsecase {
	return &impl{
		jwtSecret:          []byte(jwtSecret),
		signingMsgTemplate: signingMsgTemplate,
		redis:              redis,
	}
}

func nonceKey(address domain.Address) string {
	return keys.RedisKey(keys.PfxNonce, address.ToLowerStr())
}

func (im *impl) GenerateNonce(ctx ctx.Ctx, address domain.Address) (string, error) {
	nonce := uuid.NewString()
	if err := im.redis.Set(ctx, nonceKey(address), []byte(nonce), nonceTtl); err != nil {
		ctx.WithField("err", err).Error("redis.Set failed")
		return "", err
	}
	return nonce, nil
}

func (im *impl) SignToken(ctx ctx.Ctx, address domain.Address, signature string) (string, error) {
	key := nonceKey(address)
	nonce, err := im.redis.Get(ctx, key)
	if err == redis.ErrNotFound {
		return "", domain.ErrInvalidNonce
	} else if err != nil {
		ctx.WithField("err", err).Error("redis.Get failed")
		return "", err
	}

	msg := fmt.Sprintf(im.signingMsgTemplate, string(nonce))
	if ok, err := ethereum.ValidateMsgSignature([]byte(msg), signature, string(address)); err != nil || !ok {
		ctx.WithField("err", err).WithField("address", address).Warn("invalid signature")
		return "", domain.ErrInvalidSignature
	}

	// a nonce signs in once
	if _, err := im.redis.Del(ctx, key); err != nil {
		ctx.WithField("err", err).Error("redis.Del failed")
		return "", err
	}

	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: timeNow().Add(tokenTtl).Unix(),
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

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (domain.Address, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return domain.Address(claims.Address), nil
	}

	return "", domain.ErrInvalidSignature
}
