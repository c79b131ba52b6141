package usecase

import (
	"math/big"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/base/price"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/currency"
	"github.com/x-xyz/storefront/domain/keys"
	"github.com/x-xyz/storefront/service/cache"
	"github.com/x-xyz/storefront/service/chain/contract"
)

type Config struct {
	ChainId domain.ChainId
	Erc20   contract.Erc20Contract
	Cache   cache.Service
	// NativeSymbol defaults to ETH
	NativeSymbol string
}

type impl struct {
	chainId      domain.ChainId
	erc20        contract.Erc20Contract
	cache        cache.Service
	nativeSymbol string
}

func New(cfg *Config) currency.Usecase {
	symbol := cfg.NativeSymbol
	if symbol == "" {
		symbol = "ETH"
	}
	return &impl{
		chainId:      cfg.ChainId,
		erc20:        cfg.Erc20,
		cache:        cfg.Cache,
		nativeSymbol: symbol,
	}
}

func (im *impl) Get(c ctx.Ctx, address domain.Address) (*currency.Currency, error) {
	if address.IsNative() {
		return &currency.Currency{Address: address.ToLower(), Symbol: im.nativeSymbol, Decimals: 18}, nil
	}
	if address.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}

	res := currency.Currency{}
	key := keys.RedisKey(keys.PfxCurrency, im.chainId.String(), address.ToLowerStr())
	if err := im.cache.GetByFunc(c, key, &res, func() (interface{}, error) {
		return im.fetch(c, address)
	}); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("cache.GetByFunc failed")
		return nil, err
	}
	return &res, nil
}

func (im *impl) fetch(c ctx.Ctx, address domain.Address) (*currency.Currency, error) {
	symbol, err := im.erc20.Symbol(c, address)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("erc20.Symbol failed")
		return nil, err
	}
	decimals, err := im.erc20.Decimals(c, address)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("erc20.Decimals failed")
		return nil, err
	}
	return &currency.Currency{Address: address.ToLower(), Symbol: symbol, Decimals: decimals}, nil
}

func (im *impl) Price(c ctx.Ctx, address domain.Address, amount *big.Int) (*currency.Price, error) {
	cur, err := im.Get(c, address)
	if err != nil {
		return nil, err
	}
	if amount == nil {
		amount = big.NewInt(0)
	}
	return &currency.Price{
		Currency:     cur.Address,
		Symbol:       cur.Symbol,
		Decimals:     cur.Decimals,
		Amount:       amount.String(),
		DisplayValue: price.FromWei(amount, cur.Decimals).String(),
	}, nil
}
