package contract

import (
	"errors"
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/x-xyz/storefront/base/abi"
	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/service/chain"
)

const FlavorMarketplaceV3 = "marketplace-v3"

var ErrUnsupportedFlavor = errors.New("unsupported marketplace flavor")

// MarketplaceListing mirrors IDirectListings.Listing
type MarketplaceListing struct {
	ListingId      *big.Int
	TokenId        *big.Int
	Quantity       *big.Int
	PricePerToken  *big.Int
	StartTimestamp *big.Int
	EndTimestamp   *big.Int
	ListingCreator common.Address
	AssetContract  common.Address
	Currency       common.Address
	TokenType      uint8
	Status         uint8
	Reserved       bool
}

// MarketplaceAuction mirrors IEnglishAuctions.Auction
type MarketplaceAuction struct {
	AuctionId           *big.Int
	TokenId             *big.Int
	Quantity            *big.Int
	MinimumBidAmount    *big.Int
	BuyoutBidAmount     *big.Int
	TimeBufferInSeconds uint64
	BidBufferBps        uint64
	StartTimestamp      uint64
	EndTimestamp        uint64
	AuctionCreator      common.Address
	AssetContract       common.Address
	Currency            common.Address
	TokenType           uint8
	Status              uint8
}

// MarketplaceOffer mirrors IOffers.Offer
type MarketplaceOffer struct {
	OfferId             *big.Int
	TokenId             *big.Int
	Quantity            *big.Int
	TotalPrice          *big.Int
	ExpirationTimestamp *big.Int
	Offeror             common.Address
	AssetContract       common.Address
	Currency            common.Address
	TokenType           uint8
	Status              uint8
}

// WinningBid is the getWinningBid output, a zero Bidder means no bid yet
type WinningBid struct {
	Bidder    common.Address
	Currency  common.Address
	BidAmount *big.Int
}

// OfferParams is the makeOffer input tuple
type OfferParams struct {
	AssetContract       common.Address
	TokenId             *big.Int
	Quantity            *big.Int
	Currency            common.Address
	TotalPrice          *big.Int
	ExpirationTimestamp *big.Int
}

type Marketplace interface {
	Address() common.Address
	// GetListing returns domain.ErrNotFound when the call reverts or the slot is empty
	GetListing(ctx bCtx.Ctx, listingId *big.Int) (*MarketplaceListing, error)
	TotalListings(ctx bCtx.Ctx) (*big.Int, error)
	GetAllValidListings(ctx bCtx.Ctx, startId, endId *big.Int) ([]MarketplaceListing, error)
	TotalAuctions(ctx bCtx.Ctx) (*big.Int, error)
	GetAllValidAuctions(ctx bCtx.Ctx, startId, endId *big.Int) ([]MarketplaceAuction, error)
	GetWinningBid(ctx bCtx.Ctx, auctionId *big.Int) (*WinningBid, error)
	TotalOffers(ctx bCtx.Ctx) (*big.Int, error)
	GetAllValidOffers(ctx bCtx.Ctx, startId, endId *big.Int) ([]MarketplaceOffer, error)
	BuyFromListing(ctx bCtx.Ctx, listingId *big.Int, buyFor common.Address, quantity *big.Int, currency common.Address, expectedTotalPrice *big.Int) (domain.TxHash, error)
	MakeOffer(ctx bCtx.Ctx, params OfferParams) (domain.TxHash, error)
}

type marketplaceV3 struct {
	chainService chain.Client
	abi          ethabi.ABI
	address      common.Address
}

// NewMarketplace resolves the marketplace handle for a deployed contract
func NewMarketplace(chainService chain.Client, address domain.Address, flavor string) (Marketplace, error) {
	if flavor != FlavorMarketplaceV3 {
		return nil, ErrUnsupportedFlavor
	}
	if address.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}
	return &marketplaceV3{
		chainService: chainService,
		abi:          baseabi.MarketplaceV3ABI,
		address:      address.Common(),
	}, nil
}

func (m *marketplaceV3) Address() common.Address {
	return m.address
}

func (m *marketplaceV3) GetListing(ctx bCtx.Ctx, listingId *big.Int) (*MarketplaceListing, error) {
	unpacked, err := m.chainService.Call(ctx, m.address, nil, m.abi, "getListing", listingId)
	if err != nil {
		// getListing reverts for ids that were never created, node failures end up here too
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": listingId,
		}).Warn("chainService.Call getListing failed")
		return nil, domain.ErrNotFound
	}
	listing := *ethabi.ConvertType(unpacked[0], new(MarketplaceListing)).(*MarketplaceListing)
	if listing.AssetContract == (common.Address{}) || listing.ListingCreator == (common.Address{}) {
		return nil, domain.ErrNotFound
	}
	return &listing, nil
}

func (m *marketplaceV3) TotalListings(ctx bCtx.Ctx) (*big.Int, error) {
	return m.total(ctx, "totalListings")
}

func (m *marketplaceV3) GetAllValidListings(ctx bCtx.Ctx, startId, endId *big.Int) ([]MarketplaceListing, error) {
	unpacked, err := m.chainService.Call(ctx, m.address, nil, m.abi, "getAllValidListings", startId, endId)
	if err != nil {
		return nil, err
	}
	all := *ethabi.ConvertType(unpacked[0], new([]MarketplaceListing)).(*[]MarketplaceListing)
	res := make([]MarketplaceListing, 0, len(all))
	for _, l := range all {
		if l.AssetContract == (common.Address{}) {
			ctx.WithField("listingId", l.ListingId).Warn("dropped listing without asset contract")
			continue
		}
		res = append(res, l)
	}
	return res, nil
}

func (m *marketplaceV3) TotalAuctions(ctx bCtx.Ctx) (*big.Int, error) {
	return m.total(ctx, "totalAuctions")
}

func (m *marketplaceV3) GetAllValidAuctions(ctx bCtx.Ctx, startId, endId *big.Int) ([]MarketplaceAuction, error) {
	unpacked, err := m.chainService.Call(ctx, m.address, nil, m.abi, "getAllValidAuctions", startId, endId)
	if err != nil {
		return nil, err
	}
	all := *ethabi.ConvertType(unpacked[0], new([]MarketplaceAuction)).(*[]MarketplaceAuction)
	res := make([]MarketplaceAuction, 0, len(all))
	for _, a := range all {
		if a.AssetContract == (common.Address{}) {
			ctx.WithField("auctionId", a.AuctionId).Warn("dropped auction without asset contract")
			continue
		}
		res = append(res, a)
	}
	return res, nil
}

func (m *marketplaceV3) GetWinningBid(ctx bCtx.Ctx, auctionId *big.Int) (*WinningBid, error) {
	unpacked, err := m.chainService.Call(ctx, m.address, nil, m.abi, "getWinningBid", auctionId)
	if err != nil {
		return nil, err
	}
	return &WinningBid{
		Bidder:    unpacked[0].(common.Address),
		Currency:  unpacked[1].(common.Address),
		BidAmount: unpacked[2].(*big.Int),
	}, nil
}

func (m *marketplaceV3) TotalOffers(ctx bCtx.Ctx) (*big.Int, error) {
	return m.total(ctx, "totalOffers")
}

func (m *marketplaceV3) GetAllValidOffers(ctx bCtx.Ctx, startId, endId *big.Int) ([]MarketplaceOffer, error) {
	unpacked, err := m.chainService.Call(ctx, m.address, nil, m.abi, "getAllValidOffers", startId, endId)
	if err != nil {
		return nil, err
	}
	all := *ethabi.ConvertType(unpacked[0], new([]MarketplaceOffer)).(*[]MarketplaceOffer)
	res := make([]MarketplaceOffer, 0, len(all))
	for _, o := range all {
		if o.AssetContract == (common.Address{}) || o.Offeror == (common.Address{}) {
			ctx.WithField("offerId", o.OfferId).Warn("dropped malformed offer")
			continue
		}
		res = append(res, o)
	}
	return res, nil
}

func (m *marketplaceV3) BuyFromListing(ctx bCtx.Ctx, listingId *big.Int, buyFor common.Address, quantity *big.Int, currency common.Address, expectedTotalPrice *big.Int) (domain.TxHash, error) {
	var value *big.Int
	if domain.ToAddress(currency).IsNative() {
		value = expectedTotalPrice
	}
	return m.chainService.Transact(ctx, m.address, m.abi, value, "buyFromListing", listingId, buyFor, quantity, currency, expectedTotalPrice)
}

func (m *marketplaceV3) MakeOffer(ctx bCtx.Ctx, params OfferParams) (domain.TxHash, error) {
	return m.chainService.Transact(ctx, m.address, m.abi, nil, "makeOffer", params)
}

func (m *marketplaceV3) total(ctx bCtx.Ctx, method string) (*big.Int, error) {
	unpacked, err := m.chainService.Call(ctx, m.address, nil, m.abi, method)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"method": method,
		}).Error("chainService.Call failed")
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}
