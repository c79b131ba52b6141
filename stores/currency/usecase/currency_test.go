package usecase

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/currency"
	"github.com/x-xyz/storefront/service/cache"
	"github.com/x-xyz/storefront/service/cache/provider/local"
	"github.com/x-xyz/storefront/service/chain/contract/mocks"
)

const usdc = domain.Address("0x72F60F2F9695C5911bA57ee43339AD82ce8ABB6A")

type currencySuite struct {
	suite.Suite
	erc20 *mocks.Erc20Contract
	u     currency.Usecase
}

func (s *currencySuite) SetupTest() {
	s.erc20 = &mocks.Erc20Contract{}
	s.u = New(&Config{
		ChainId: 5,
		Erc20:   s.erc20,
		Cache: cache.New(cache.ServiceConfig{
			Ttl:   time.Hour,
			Pfx:   "currency",
			Cache: local.NewLocal("currency", 1),
		}),
	})
}

func TestCurrencySuite(t *testing.T) {
	suite.Run(t, new(currencySuite))
}

func (s *currencySuite) TestNative() {
	cur, err := s.u.Get(ctx.Background(), domain.NativeCurrency)
	s.Require().NoError(err)
	s.Equal("ETH", cur.Symbol)
	s.Equal(int32(18), cur.Decimals)
	s.erc20.AssertNotCalled(s.T(), "Symbol", mock.Anything, mock.Anything)
}

func (s *currencySuite) TestErc20Cached() {
	s.erc20.On("Symbol", mock.Anything, usdc).Return("USDC", nil).Once()
	s.erc20.On("Decimals", mock.Anything, usdc).Return(int32(6), nil).Once()

	for i := 0; i < 3; i++ {
		cur, err := s.u.Get(ctx.Background(), usdc)
		s.Require().NoError(err)
		s.Equal(currency.Currency{Address: usdc.ToLower(), Symbol: "USDC", Decimals: 6}, *cur)
	}
	s.erc20.AssertExpectations(s.T())
}

func (s *currencySuite) TestErc20Failed() {
	s.erc20.On("Symbol", mock.Anything, usdc).Return("", errors.New("execution reverted")).Once()
	_, err := s.u.Get(ctx.Background(), usdc)
	s.Error(err)
}

func (s *currencySuite) TestPrice() {
	amount, _ := new(big.Int).SetString("1500000000000000000", 10)
	p, err := s.u.Price(ctx.Background(), domain.NativeCurrency, amount)
	s.Require().NoError(err)
	s.Equal("1.5", p.DisplayValue)
	s.Equal("1500000000000000000", p.Amount)
	s.Equal("ETH", p.Symbol)

	s.erc20.On("Symbol", mock.Anything, usdc).Return("USDC", nil).Once()
	s.erc20.On("Decimals", mock.Anything, usdc).Return(int32(6), nil).Once()
	p, err = s.u.Price(ctx.Background(), usdc, big.NewInt(2500000))
	s.Require().NoError(err)
	s.Equal("2.5", p.DisplayValue)
}
