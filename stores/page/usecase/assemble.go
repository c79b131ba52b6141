package usecase

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"

	"github.com/x-xyz/storefront/base/price"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/asset"
	"github.com/x-xyz/storefront/domain/currency"
	"github.com/x-xyz/storefront/domain/history"
	"github.com/x-xyz/storefront/domain/listing"
	"github.com/x-xyz/storefront/domain/notification"
	"github.com/x-xyz/storefront/domain/offer"
	"github.com/x-xyz/storefront/domain/page"
)

// Display holds the presentation settings of a page
type Display struct {
	ChainId     domain.ChainId
	ExplorerUrl string
	OwnerHead   int
	OwnerTail   int
	ShortHead   int
	ShortTail   int
	OfferColumn string
}

// Result is the outcome of one section fetch; Done is false while it is still pending
type Result struct {
	Done bool
	Err  error
}

// Inputs is everything a listing page is rendered from
type Inputs struct {
	ListingId string
	BidInput  string
	Now       time.Time

	Listing    *listing.Listing
	ListingErr error

	Offers       []offer.Offer
	OffersResult Result

	History       *history.History
	HistoryResult Result

	Asset       *asset.Asset
	AssetResult Result

	Owner       domain.Address
	EnsName     string
	OwnerResult Result

	Notification *notification.Toast
}

// Assemble renders the page state. Sections whose fetch has not completed are
// reported as loading.
func Assemble(d Display, in Inputs) *page.ListingPage {
	p := &page.ListingPage{
		ListingId:    in.ListingId,
		BidInput:     in.BidInput,
		Notification: in.Notification,
		Offers:       page.OffersSection{Column: d.OfferColumn, Items: []page.OfferRow{}},
		History:      page.HistorySection{Items: []page.HistoryRow{}},
	}

	p.Listing = listingSection(in)
	if in.Listing == nil {
		return p
	}

	g := GradientOf(d.ChainId, in.Listing.AssetContract, in.Listing.TokenId)
	p.Gradient = &g

	p.Offers.Section = sectionOf(in.OffersResult)
	for _, o := range in.Offers {
		p.Offers.Items = append(p.Offers.Items, page.OfferRow{
			Offer:          o,
			OfferorDisplay: Truncate(string(o.Offeror), d.ShortHead, d.ShortTail),
			PriceDisplay:   o.Price.DisplayValue,
		})
	}

	p.History.Section = sectionOf(in.HistoryResult)
	if in.History != nil {
		p.History.Complete = in.History.Complete
		for _, e := range in.History.Events {
			p.History.Items = append(p.History.Items, page.HistoryRow{
				TransferEvent: e,
				FromDisplay:   Truncate(string(e.From), d.ShortHead, d.ShortTail),
				ToDisplay:     Truncate(string(e.To), d.ShortHead, d.ShortTail),
				ExplorerUrl:   ExplorerTxUrl(d.ExplorerUrl, e.TxHash),
			})
		}
	}

	p.Asset = page.AssetSection{Section: sectionOf(in.AssetResult), Asset: in.Asset}

	p.Owner = page.OwnerSection{
		Section: sectionOf(in.OwnerResult),
		Address: in.Owner,
		Display: Truncate(string(in.Owner), d.OwnerHead, d.OwnerTail),
		EnsName: in.EnsName,
	}
	if in.EnsName != "" {
		p.Owner.Display = in.EnsName
	}
	return p
}

func listingSection(in Inputs) page.ListingSection {
	s := page.ListingSection{PriceDisplay: page.NotForSale}
	if in.ListingErr != nil && in.ListingErr != domain.ErrNotFound {
		s.Error = in.ListingErr.Error()
	}
	if in.Listing == nil {
		return s
	}
	s.Listing = in.Listing
	if display := PriceDisplay(in.Listing.Price); display != "" {
		s.ForSale = true
		s.PriceDisplay = display
	}
	s.BuyEnabled = s.ForSale && in.Listing.Kind == listing.KindDirect && in.Listing.IsActive(in.Now)
	return s
}

func sectionOf(r Result) page.Section {
	if !r.Done {
		return page.Section{Loading: true}
	}
	if r.Err != nil && r.Err != domain.ErrNotFound {
		return page.Section{Error: r.Err.Error()}
	}
	return page.Section{}
}

// PriceDisplay renders "<value> <symbol>", empty when the price is unresolved
func PriceDisplay(p *currency.Price) string {
	if p == nil || p.DisplayValue == "" {
		return ""
	}
	d, err := decimal.NewFromString(p.DisplayValue)
	if err != nil {
		return ""
	}
	return price.Display(d, p.Symbol)
}

// Truncate keeps the first head and last tail characters around "...".
// Strings shorter than head+tail are returned unchanged.
func Truncate(s string, head, tail int) string {
	if len(s) < head+tail {
		return s
	}
	return s[:head] + "..." + s[len(s)-tail:]
}

func ExplorerTxUrl(explorerUrl string, hash domain.TxHash) string {
	return strings.TrimRight(explorerUrl, "/") + "/tx/" + string(hash)
}

// GradientOf derives two colors from the token identity
func GradientOf(chainId domain.ChainId, contract domain.Address, tokenId domain.TokenId) page.Gradient {
	h := crypto.Keccak256([]byte(chainId.String()), []byte(contract.ToLowerStr()), []byte(tokenId))
	return page.Gradient{
		From: "#" + hex.EncodeToString(h[0:3]),
		To:   "#" + hex.EncodeToString(h[3:6]),
	}
}
