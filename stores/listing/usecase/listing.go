package usecase

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/base/metrics"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/currency"
	"github.com/x-xyz/storefront/domain/listing"
	"github.com/x-xyz/storefront/service/chain/contract"
)

var met = metrics.New("listing")

var timeNow = time.Now

type impl struct {
	marketplace contract.Marketplace
	currency    currency.Usecase
}

func New(marketplace contract.Marketplace, currency currency.Usecase) listing.Usecase {
	return &impl{marketplace: marketplace, currency: currency}
}

func (im *impl) GetDirectListing(c ctx.Ctx, id string) (*listing.Listing, error) {
	defer met.BumpTime("time", "func", "GetDirectListing").End()

	listingId, ok := domain.TokenId(id).BigInt()
	if !ok {
		return nil, domain.ErrNotFound
	}
	raw, err := im.marketplace.GetListing(c, listingId)
	if err != nil {
		if err != domain.ErrNotFound {
			c.WithFields(log.Fields{
				"err":       err,
				"listingId": id,
			}).Error("marketplace.GetListing failed")
		}
		return nil, err
	}

	l, err := im.fromDirect(c, raw)
	if err != nil {
		return nil, err
	}
	if !l.IsActive(timeNow()) {
		return nil, domain.ErrNotFound
	}
	return l, nil
}

func (im *impl) GetValidDirectListings(c ctx.Ctx, assetContract domain.Address) ([]listing.Listing, error) {
	defer met.BumpTime("time", "func", "GetValidDirectListings").End()

	total, err := im.marketplace.TotalListings(c)
	if err != nil {
		c.WithField("err", err).Error("marketplace.TotalListings failed")
		return nil, err
	}
	res := []listing.Listing{}
	if total.Sign() == 0 {
		return res, nil
	}
	raws, err := im.marketplace.GetAllValidListings(c, big.NewInt(0), new(big.Int).Sub(total, big.NewInt(1)))
	if err != nil {
		c.WithField("err", err).Error("marketplace.GetAllValidListings failed")
		return nil, err
	}
	for i := range raws {
		if !domain.ToAddress(raws[i].AssetContract).Equals(assetContract) {
			continue
		}
		l, err := im.fromDirect(c, &raws[i])
		if err != nil {
			return nil, err
		}
		res = append(res, *l)
	}
	return res, nil
}

func (im *impl) GetValidAuctions(c ctx.Ctx, assetContract domain.Address) ([]listing.Listing, error) {
	defer met.BumpTime("time", "func", "GetValidAuctions").End()

	total, err := im.marketplace.TotalAuctions(c)
	if err != nil {
		c.WithField("err", err).Error("marketplace.TotalAuctions failed")
		return nil, err
	}
	res := []listing.Listing{}
	if total.Sign() == 0 {
		return res, nil
	}
	raws, err := im.marketplace.GetAllValidAuctions(c, big.NewInt(0), new(big.Int).Sub(total, big.NewInt(1)))
	if err != nil {
		c.WithField("err", err).Error("marketplace.GetAllValidAuctions failed")
		return nil, err
	}
	for i := range raws {
		if !domain.ToAddress(raws[i].AssetContract).Equals(assetContract) {
			continue
		}
		l, err := im.fromAuction(c, &raws[i])
		if err != nil {
			return nil, err
		}
		res = append(res, *l)
	}
	return res, nil
}

func (im *impl) fromDirect(c ctx.Ctx, raw *contract.MarketplaceListing) (*listing.Listing, error) {
	price, err := im.currency.Price(c, domain.ToAddress(raw.Currency), raw.PricePerToken)
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"listingId": raw.ListingId,
			"currency":  raw.Currency,
		}).Error("currency.Price failed")
		return nil, err
	}
	return &listing.Listing{
		Id:            raw.ListingId.String(),
		Kind:          listing.KindDirect,
		AssetContract: domain.ToAddress(raw.AssetContract),
		TokenId:       domain.TokenId(raw.TokenId.String()),
		Quantity:      raw.Quantity.String(),
		Creator:       domain.ToAddress(raw.ListingCreator),
		Price:         price,
		StartTime:     unix(raw.StartTimestamp.Uint64()),
		EndTime:       unix(raw.EndTimestamp.Uint64()),
		Status:        listing.Status(raw.Status),
	}, nil
}

func (im *impl) fromAuction(c ctx.Ctx, raw *contract.MarketplaceAuction) (*listing.Listing, error) {
	cur := domain.ToAddress(raw.Currency)
	buyout, err := im.currency.Price(c, cur, raw.BuyoutBidAmount)
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": raw.AuctionId,
			"currency":  raw.Currency,
		}).Error("currency.Price failed")
		return nil, err
	}
	minBid, err := im.currency.Price(c, cur, raw.MinimumBidAmount)
	if err != nil {
		return nil, err
	}
	return &listing.Listing{
		Id:            raw.AuctionId.String(),
		Kind:          listing.KindAuction,
		AssetContract: domain.ToAddress(raw.AssetContract),
		TokenId:       domain.TokenId(raw.TokenId.String()),
		Quantity:      raw.Quantity.String(),
		Creator:       domain.ToAddress(raw.AuctionCreator),
		Price:         buyout,
		MinimumBid:    minBid,
		WinningBid:    im.winningBid(c, raw.AuctionId),
		StartTime:     unix(raw.StartTimestamp),
		EndTime:       unix(raw.EndTimestamp),
		Status:        listing.Status(raw.Status),
	}, nil
}

// winningBid is best effort, an auction still renders without its current bid
func (im *impl) winningBid(c ctx.Ctx, auctionId *big.Int) *currency.Price {
	bid, err := im.marketplace.GetWinningBid(c, auctionId)
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": auctionId,
		}).Warn("marketplace.GetWinningBid failed")
		return nil
	}
	if bid.Bidder == (common.Address{}) || bid.BidAmount == nil || bid.BidAmount.Sign() == 0 {
		return nil
	}
	price, err := im.currency.Price(c, domain.ToAddress(bid.Currency), bid.BidAmount)
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": auctionId,
			"currency":  bid.Currency,
		}).Warn("currency.Price failed")
		return nil
	}
	return price
}

// unix maps the contract's 0 "unset" timestamp to the zero time
func unix(sec uint64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(int64(sec), 0).UTC()
}
