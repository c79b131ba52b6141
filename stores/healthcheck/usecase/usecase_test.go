package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/storefront/base/ctx"
	hcdomain "github.com/x-xyz/storefront/domain/healthcheck"
	"github.com/x-xyz/storefront/domain/healthcheck/mocks"
)

func TestCheck(t *testing.T) {
	repo := &mocks.Repo{}
	repo.On("PingMongo", mock.Anything).Return(nil)
	repo.On("PingRedis", mock.Anything).Return(errors.New("connection refused"))
	repo.On("PingChain", mock.Anything).Return(nil)

	failed := New(repo).Check(ctx.Background())
	require.Len(t, failed, 1)
	require.EqualError(t, failed[hcdomain.DepRedis], "connection refused")
}

func TestCheckHealthy(t *testing.T) {
	repo := &mocks.Repo{}
	repo.On("PingMongo", mock.Anything).Return(nil)
	repo.On("PingRedis", mock.Anything).Return(nil)
	repo.On("PingChain", mock.Anything).Return(nil)

	require.Empty(t, New(repo).Check(ctx.Background()))
}
