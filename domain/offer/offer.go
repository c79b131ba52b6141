package offer

import (
	"time"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/currency"
)

type Offer struct {
	Id            string         `json:"id"`
	Offeror       domain.Address `json:"offerorAddress"`
	AssetContract domain.Address `json:"assetContractAddress"`
	TokenId       domain.TokenId `json:"tokenId"`
	Quantity      string         `json:"quantity"`
	Price         currency.Price `json:"currencyValue"`
	Expiration    time.Time      `json:"endTime"`
}

type Usecase interface {
	// GetAllValid returns the currently valid offers on one token, in contract order
	GetAllValid(ctx ctx.Ctx, assetContract domain.Address, tokenId domain.TokenId) ([]Offer, error)
}
