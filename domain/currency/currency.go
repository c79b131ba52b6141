package currency

import (
	"math/big"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
)

type Currency struct {
	Address  domain.Address `json:"address"`
	Symbol   string         `json:"symbol"`
	Decimals int32          `json:"decimals"`
}

// Price is an on-chain amount together with its rendering
type Price struct {
	Currency     domain.Address `json:"currency"`
	Symbol       string         `json:"symbol"`
	Decimals     int32          `json:"decimals"`
	Amount       string         `json:"amount"`
	DisplayValue string         `json:"displayValue"`
}

type Usecase interface {
	Get(ctx ctx.Ctx, address domain.Address) (*Currency, error)
	// Price formats amount (smallest unit) of the given currency
	Price(ctx ctx.Ctx, address domain.Address, amount *big.Int) (*Price, error)
}
