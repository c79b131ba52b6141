package ens

import (
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/service/cache"
	"github.com/x-xyz/storefront/service/cache/provider/local"
)

type ensSuite struct {
	suite.Suite

	im    *impl
	calls int
}

func (s *ensSuite) SetupTest() {
	s.calls = 0
	s.im = New(nil, cache.New(cache.ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "ens",
		Cache: local.NewLocal("ens", 1),
	})).(*impl)
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(ensSuite))
}

func (s *ensSuite) TestReverseResolve() {
	address := domain.Address("0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872")
	s.im.reverseResolve = func(_ bind.ContractBackend, a common.Address) (string, error) {
		s.calls++
		s.Equal(address.Common(), a)
		return "machibigbrother.eth", nil
	}

	for i := 0; i < 2; i++ {
		res, err := s.im.ReverseResolve(ctx.Background(), address)
		s.NoError(err)
		s.Equal("machibigbrother.eth", res)
	}
	s.Equal(1, s.calls)
}

func (s *ensSuite) TestReverseResolveNoName() {
	s.im.reverseResolve = func(bind.ContractBackend, common.Address) (string, error) {
		return "", errors.New("not a resolver")
	}
	res, err := s.im.ReverseResolve(ctx.Background(), "0x94ead797046c7b654cab82c1c27ad223b6501f1f")
	s.NoError(err)
	s.Equal("", res)
}

func (s *ensSuite) TestReverseResolveFailed() {
	s.im.reverseResolve = func(bind.ContractBackend, common.Address) (string, error) {
		return "", errors.New("timeout")
	}
	_, err := s.im.ReverseResolve(ctx.Background(), "0x94ead797046c7b654cab82c1c27ad223b6501f1f")
	s.Error(err)
}

func (s *ensSuite) TestResolve() {
	want := common.HexToAddress("0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872")
	s.im.resolve = func(bind.ContractBackend, string) (common.Address, error) {
		return want, nil
	}
	res, err := s.im.Resolve(ctx.Background(), "machibigbrother.eth")
	s.NoError(err)
	s.Equal(domain.ToAddress(want), res)
}
