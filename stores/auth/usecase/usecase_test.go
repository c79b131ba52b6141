package usecase_test

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/ethereum"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/service/redis"
	"github.com/x-xyz/storefront/service/redis/mocks"
	"github.com/x-xyz/storefront/stores/auth/usecase"
)

const (
	hardhatKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	template   = "Welcome to the alley!\n\nNonce: %s"
	nonceKey   = "nonce:0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"
)

func sign(t *testing.T, msg string) string {
	key, _, err := ethereum.ParsePrivateKey(hardhatKey)
	require.NoError(t, err)
	sig, err := crypto.Sign(accounts.TextHash([]byte(msg)), key)
	require.NoError(t, err)
	sig[crypto.RecoveryIDOffset] += 27
	return hexutil.Encode(sig)
}

func TestSignAndParseToken(t *testing.T) {
	req := require.New(t)
	r := &mocks.Service{}
	stored := []byte{}
	r.On("Set", mock.Anything, nonceKey, mock.Anything, 10*time.Minute).Return(nil).Run(func(args mock.Arguments) {
		stored = args.Get(2).([]byte)
	}).Once()
	r.On("Get", mock.Anything, nonceKey).Return(func(ctx.Ctx, string) []byte { return stored }, nil).Once()
	r.On("Del", mock.Anything, nonceKey).Return(1, nil).Once()

	address := domain.Address("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	u := usecase.New("jwt-secret", template, r)
	c := ctx.Background()

	nonce, err := u.GenerateNonce(c, address)
	req.NoError(err)
	req.NotEmpty(nonce)

	tkn, err := u.SignToken(c, address, sign(t, "Welcome to the alley!\n\nNonce: "+nonce))
	req.NoError(err)
	req.NotEmpty(tkn)

	ads, err := u.ParseToken(c, tkn)
	req.NoError(err)
	req.Equal(address.ToLower(), ads)
	r.AssertExpectations(t)
}

func TestSignTokenWrongSignature(t *testing.T) {
	req := require.New(t)
	r := &mocks.Service{}
	r.On("Get", mock.Anything, nonceKey).Return([]byte("abc"), nil).Once()

	u := usecase.New("jwt-secret", template, r)
	_, err := u.SignToken(ctx.Background(), "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", sign(t, "Welcome to the alley!\n\nNonce: xyz"))
	req.ErrorIs(err, domain.ErrInvalidSignature)
	r.AssertNotCalled(t, "Del", mock.Anything, mock.Anything)
}

func TestSignTokenNoNonce(t *testing.T) {
	r := &mocks.Service{}
	r.On("Get", mock.Anything, nonceKey).Return(nil, redis.ErrNotFound).Once()

	u := usecase.New("jwt-secret", template, r)
	_, err := u.SignToken(ctx.Background(), "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", "0x00")
	require.ErrorIs(t, err, domain.ErrInvalidNonce)
}

func TestParseTokenOtherSecret(t *testing.T) {
	r := &mocks.Service{}
	_, err := usecase.New("a", template, r).ParseToken(ctx.Background(), "not.a.token")
	require.Error(t, err)
}
