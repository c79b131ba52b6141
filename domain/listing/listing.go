package listing

import (
	"time"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/asset"
	"github.com/x-xyz/storefront/domain/currency"
)

type Kind string

const (
	KindDirect  Kind = "direct"
	KindAuction Kind = "auction"
)

// Status mirrors the marketplace contract enum
type Status uint8

const (
	StatusUnset Status = iota
	StatusCreated
	StatusCompleted
	StatusCancelled
)

type Listing struct {
	Id            string         `json:"id"`
	Kind          Kind           `json:"kind"`
	AssetContract domain.Address `json:"assetContractAddress"`
	TokenId       domain.TokenId `json:"tokenId"`
	Quantity      string         `json:"quantity"`
	Creator       domain.Address `json:"creatorAddress"`
	// Price is the per token price of a direct listing or the buyout of an auction
	Price      *currency.Price `json:"currencyValuePerToken,omitempty"`
	MinimumBid *currency.Price `json:"minimumBidCurrencyValue,omitempty"`
	// WinningBid is the highest bid of an auction, nil until someone bids
	WinningBid *currency.Price `json:"winningBidCurrencyValue,omitempty"`
	StartTime  time.Time       `json:"startTime"`
	EndTime    time.Time       `json:"endTime"`
	Status     Status          `json:"status"`
}

// IsActive reports whether the listing can be bought at now
func (l *Listing) IsActive(now time.Time) bool {
	if l == nil || l.Status != StatusCreated {
		return false
	}
	if now.Before(l.StartTime) {
		return false
	}
	return l.EndTime.IsZero() || now.Before(l.EndTime)
}

type GridItem struct {
	Listing Listing      `json:"listing"`
	Asset   *asset.Asset `json:"asset,omitempty"`
}

// Grid is a collection view; EmptyText is shown when Items is empty
type Grid struct {
	Items     []GridItem `json:"items"`
	EmptyText string     `json:"emptyText,omitempty"`
}

type Usecase interface {
	// GetDirectListing returns domain.ErrNotFound for unknown or inactive ids
	GetDirectListing(ctx ctx.Ctx, id string) (*Listing, error)
	GetValidAuctions(ctx ctx.Ctx, assetContract domain.Address) ([]Listing, error)
	GetValidDirectListings(ctx ctx.Ctx, assetContract domain.Address) ([]Listing, error)
}

const DefaultEmptyText = "No listings found."

// GridConfig names a collection view served under /grids/:name
type GridConfig struct {
	Contract  domain.Address `mapstructure:"contract"`
	Kind      Kind           `mapstructure:"kind"`
	EmptyText string         `mapstructure:"emptyText"`
}

type GridUsecase interface {
	// GetGrid lists the valid listings of kind on contract, with asset
	// metadata attached when withAsset is set
	GetGrid(ctx ctx.Ctx, contract domain.Address, kind Kind, withAsset bool) (*Grid, error)
	// GetNamedGrid serves a configured grid, domain.ErrNotFound for unknown names
	GetNamedGrid(ctx ctx.Ctx, name string, withAsset bool) (*Grid, error)
}
