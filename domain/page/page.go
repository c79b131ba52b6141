package page

import (
	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/asset"
	"github.com/x-xyz/storefront/domain/history"
	"github.com/x-xyz/storefront/domain/listing"
	"github.com/x-xyz/storefront/domain/notification"
	"github.com/x-xyz/storefront/domain/offer"
)

const NotForSale = "Not for sale"

// Section is the loading state shared by every page block
type Section struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

type ListingSection struct {
	Section
	Listing      *listing.Listing `json:"listing,omitempty"`
	ForSale      bool             `json:"forSale"`
	PriceDisplay string           `json:"priceDisplay"`
	BuyEnabled   bool             `json:"buyEnabled"`
}

type OwnerSection struct {
	Section
	Address domain.Address `json:"address,omitempty"`
	Display string         `json:"display"`
	EnsName string         `json:"ensName,omitempty"`
}

type AssetSection struct {
	Section
	Asset *asset.Asset `json:"asset,omitempty"`
}

type OfferRow struct {
	offer.Offer
	OfferorDisplay string `json:"offerorDisplay"`
	PriceDisplay   string `json:"priceDisplay"`
}

type OffersSection struct {
	Section
	// Column is the header of the price column
	Column string     `json:"column"`
	Items  []OfferRow `json:"items"`
}

type HistoryRow struct {
	history.TransferEvent
	FromDisplay string `json:"fromDisplay"`
	ToDisplay   string `json:"toDisplay"`
	ExplorerUrl string `json:"explorerUrl"`
}

type HistorySection struct {
	Section
	Items    []HistoryRow `json:"items"`
	Complete bool         `json:"complete"`
}

type Gradient struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type ListingPage struct {
	ListingId    string              `json:"listingId"`
	Listing      ListingSection      `json:"listing"`
	Owner        OwnerSection        `json:"owner"`
	Asset        AssetSection        `json:"asset"`
	Offers       OffersSection       `json:"offers"`
	History      HistorySection      `json:"history"`
	Gradient     *Gradient           `json:"gradient,omitempty"`
	BidInput     string              `json:"bidInput"`
	Notification *notification.Toast `json:"notification,omitempty"`
}

type Request struct {
	ListingId string
	BidInput  string
	// ActionId attaches the toast of a previously dispatched action
	ActionId string
}

type Usecase interface {
	GetListingPage(ctx ctx.Ctx, req Request) (*ListingPage, error)
}
