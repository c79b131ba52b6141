package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/currency"
	"github.com/x-xyz/storefront/domain/history"
	"github.com/x-xyz/storefront/domain/listing"
	"github.com/x-xyz/storefront/domain/offer"
	"github.com/x-xyz/storefront/domain/page"
)

var display = Display{
	ChainId:     5,
	ExplorerUrl: "https://goerli.etherscan.io/",
	OwnerHead:   8,
	OwnerTail:   4,
	ShortHead:   4,
	ShortTail:   2,
	OfferColumn: "USDC",
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		s          string
		head, tail int
		want       string
	}{
		{"0x71c4658acc7b53ee814a29ce31100ff85ca23ca7", 8, 4, "0x71c465...3ca7"},
		{"0x71c4658acc7b53ee814a29ce31100ff85ca23ca7", 4, 2, "0x71...a7"},
		{"0x1234567890", 8, 4, "0x123456...7890"},
		{"0x12345678", 8, 4, "0x12345678"},
		{"", 4, 2, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Truncate(tt.s, tt.head, tt.tail), tt.s)
	}
}

func TestGradientOf(t *testing.T) {
	contract := domain.Address("0x71c4658acc7b53ee814a29ce31100ff85ca23ca7")
	g1 := GradientOf(5, contract, "1")
	require.Regexp(t, "^#[0-9a-f]{6}$", g1.From)
	require.Regexp(t, "^#[0-9a-f]{6}$", g1.To)
	require.Equal(t, g1, GradientOf(5, "0x71C4658ACC7B53EE814A29CE31100FF85CA23CA7", "1"))
	require.NotEqual(t, g1, GradientOf(5, contract, "2"))
	require.NotEqual(t, g1, GradientOf(1, contract, "1"))
}

func TestExplorerTxUrl(t *testing.T) {
	assert.Equal(t, "https://goerli.etherscan.io/tx/0xabc", ExplorerTxUrl("https://goerli.etherscan.io/", "0xabc"))
	assert.Equal(t, "https://goerli.etherscan.io/tx/0xabc", ExplorerTxUrl("https://goerli.etherscan.io", "0xabc"))
}

func TestPriceDisplay(t *testing.T) {
	assert.Equal(t, "1.5 ETH", PriceDisplay(&currency.Price{DisplayValue: "1.5", Symbol: "ETH"}))
	assert.Equal(t, "", PriceDisplay(&currency.Price{}))
	assert.Equal(t, "", PriceDisplay(nil))
}

func activeListing(now time.Time) *listing.Listing {
	return &listing.Listing{
		Id:            "42",
		Kind:          listing.KindDirect,
		AssetContract: "0x71c4658acc7b53ee814a29ce31100ff85ca23ca7",
		TokenId:       "7",
		Creator:       "0x00000000000000000000000000000000000000aa",
		Price:         &currency.Price{Currency: domain.NativeCurrency, Symbol: "ETH", Decimals: 18, Amount: "1500000000000000000", DisplayValue: "1.5"},
		StartTime:     now.Add(-time.Hour),
		Status:        listing.StatusCreated,
	}
}

func TestAssembleForSale(t *testing.T) {
	now := time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC)
	p := Assemble(display, Inputs{
		ListingId: "42",
		BidInput:  "100",
		Now:       now,
		Listing:   activeListing(now),
		Offers: []offer.Offer{{
			Id:      "0",
			Offeror: "0x00000000000000000000000000000000000000b1",
			Price:   currency.Price{DisplayValue: "5", Symbol: "USDC"},
		}},
		OffersResult: Result{Done: true},
		History: &history.History{Complete: true, Events: []history.TransferEvent{
			{TxHash: "0xfeed", From: domain.EmptyAddress, To: "0x00000000000000000000000000000000000a11ce", Label: history.LabelMint},
		}},
		HistoryResult: Result{Done: true},
		AssetResult:   Result{Done: true, Err: domain.ErrNotFound},
		Owner:         "0x00000000000000000000000000000000000a11ce",
		OwnerResult:   Result{Done: true},
	})

	require.True(t, p.Listing.ForSale)
	require.True(t, p.Listing.BuyEnabled)
	require.Equal(t, "1.5 ETH", p.Listing.PriceDisplay)
	require.Equal(t, "100", p.BidInput)
	require.NotNil(t, p.Gradient)

	require.Equal(t, "USDC", p.Offers.Column)
	require.Len(t, p.Offers.Items, 1)
	require.Equal(t, "0x00...b1", p.Offers.Items[0].OfferorDisplay)
	require.Equal(t, "5", p.Offers.Items[0].PriceDisplay)

	require.Len(t, p.History.Items, 1)
	require.Equal(t, "0x00...00", p.History.Items[0].FromDisplay)
	require.Equal(t, "https://goerli.etherscan.io/tx/0xfeed", p.History.Items[0].ExplorerUrl)

	require.Equal(t, page.Section{}, p.Asset.Section)
	require.Equal(t, "0x000000...11ce", p.Owner.Display)
}

func TestAssembleNotForSale(t *testing.T) {
	p := Assemble(display, Inputs{ListingId: "404", ListingErr: domain.ErrNotFound})
	require.False(t, p.Listing.ForSale)
	require.False(t, p.Listing.BuyEnabled)
	require.Equal(t, page.NotForSale, p.Listing.PriceDisplay)
	require.Empty(t, p.Listing.Error)
	require.Nil(t, p.Gradient)
	require.NotNil(t, p.Offers.Items)
	require.Empty(t, p.Offers.Items)

	p = Assemble(display, Inputs{ListingId: "1", ListingErr: errors.New("dial tcp: connection refused")})
	require.Equal(t, page.NotForSale, p.Listing.PriceDisplay)
	require.Equal(t, "dial tcp: connection refused", p.Listing.Error)
}

func TestAssemblePendingSections(t *testing.T) {
	now := time.Now()
	p := Assemble(display, Inputs{
		ListingId:    "42",
		Now:          now,
		Listing:      activeListing(now),
		OffersResult: Result{Done: true, Err: errors.New("execution reverted")},
	})
	require.Equal(t, "execution reverted", p.Offers.Error)
	require.False(t, p.Offers.Loading)
	require.True(t, p.History.Loading)
	require.True(t, p.Asset.Loading)
	require.True(t, p.Owner.Loading)
}

func TestAssembleExpiredListingNotBuyable(t *testing.T) {
	now := time.Now()
	l := activeListing(now)
	l.EndTime = now.Add(-time.Minute)
	p := Assemble(display, Inputs{ListingId: "42", Now: now, Listing: l})
	require.True(t, p.Listing.ForSale)
	require.False(t, p.Listing.BuyEnabled)
}
