package usecase

import (
	"math/big"
	"time"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/base/metrics"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/currency"
	"github.com/x-xyz/storefront/domain/offer"
	"github.com/x-xyz/storefront/service/chain/contract"
)

var met = metrics.New("offer")

type impl struct {
	marketplace contract.Marketplace
	currency    currency.Usecase
}

func New(marketplace contract.Marketplace, currency currency.Usecase) offer.Usecase {
	return &impl{marketplace: marketplace, currency: currency}
}

func (im *impl) GetAllValid(c ctx.Ctx, assetContract domain.Address, tokenId domain.TokenId) ([]offer.Offer, error) {
	defer met.BumpTime("time", "func", "GetAllValid").End()

	id, ok := tokenId.BigInt()
	if !ok {
		return nil, domain.ErrBadParamInput
	}

	total, err := im.marketplace.TotalOffers(c)
	if err != nil {
		c.WithField("err", err).Error("marketplace.TotalOffers failed")
		return nil, err
	}
	res := []offer.Offer{}
	if total.Sign() == 0 {
		return res, nil
	}

	raws, err := im.marketplace.GetAllValidOffers(c, big.NewInt(0), new(big.Int).Sub(total, big.NewInt(1)))
	if err != nil {
		c.WithField("err", err).Error("marketplace.GetAllValidOffers failed")
		return nil, err
	}

	for _, raw := range raws {
		if !domain.ToAddress(raw.AssetContract).Equals(assetContract) || raw.TokenId.Cmp(id) != 0 {
			continue
		}
		price, err := im.currency.Price(c, domain.ToAddress(raw.Currency), raw.TotalPrice)
		if err != nil {
			c.WithFields(log.Fields{
				"err":      err,
				"offerId":  raw.OfferId,
				"currency": raw.Currency,
			}).Error("currency.Price failed")
			return nil, err
		}
		res = append(res, offer.Offer{
			Id:            raw.OfferId.String(),
			Offeror:       domain.ToAddress(raw.Offeror),
			AssetContract: domain.ToAddress(raw.AssetContract),
			TokenId:       domain.TokenId(raw.TokenId.String()),
			Quantity:      raw.Quantity.String(),
			Price:         *price,
			Expiration:    expiration(raw.ExpirationTimestamp),
		})
	}
	return res, nil
}

// expiration maps timestamps past int64, such as a max uint256 "never expires", to the zero time
func expiration(ts *big.Int) time.Time {
	if ts == nil || !ts.IsInt64() || ts.Sign() == 0 {
		return time.Time{}
	}
	return time.Unix(ts.Int64(), 0).UTC()
}
