package usecase

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/action"
	actionMocks "github.com/x-xyz/storefront/domain/action/mocks"
	"github.com/x-xyz/storefront/domain/asset"
	assetMocks "github.com/x-xyz/storefront/domain/asset/mocks"
	"github.com/x-xyz/storefront/domain/history"
	historyMocks "github.com/x-xyz/storefront/domain/history/mocks"
	listingMocks "github.com/x-xyz/storefront/domain/listing/mocks"
	"github.com/x-xyz/storefront/domain/notification"
	"github.com/x-xyz/storefront/domain/offer"
	offerMocks "github.com/x-xyz/storefront/domain/offer/mocks"
	"github.com/x-xyz/storefront/domain/page"
	contractMocks "github.com/x-xyz/storefront/service/chain/contract/mocks"
	ensMocks "github.com/x-xyz/storefront/service/ens/mocks"
)

const owner = domain.Address("0x00000000000000000000000000000000000a11ce")

type pageSuite struct {
	suite.Suite
	listing *listingMocks.Usecase
	offer   *offerMocks.Usecase
	history *historyMocks.Usecase
	asset   *assetMocks.Usecase
	erc721  *contractMocks.Erc721Contract
	ens     *ensMocks.ENS
	action  *actionMocks.Usecase
	u       page.Usecase
}

func (s *pageSuite) SetupTest() {
	s.listing = &listingMocks.Usecase{}
	s.offer = &offerMocks.Usecase{}
	s.history = &historyMocks.Usecase{}
	s.asset = &assetMocks.Usecase{}
	s.erc721 = &contractMocks.Erc721Contract{}
	s.ens = &ensMocks.ENS{}
	s.action = &actionMocks.Usecase{}
	s.u = New(&Config{
		Display:        display,
		SectionTimeout: 200 * time.Millisecond,
		HistoryLimit:   50,
		Listing:        s.listing,
		Offer:          s.offer,
		History:        s.history,
		Asset:          s.asset,
		Erc721:         s.erc721,
		Ens:            s.ens,
		Action:         s.action,
	})
}

func TestPageSuite(t *testing.T) {
	suite.Run(t, new(pageSuite))
}

func (s *pageSuite) mockSections(l string) {
	now := time.Now()
	s.listing.On("GetDirectListing", mock.Anything, l).Return(activeListing(now), nil).Once()
	contract := activeListing(now).AssetContract
	s.offer.On("GetAllValid", mock.Anything, contract, domain.TokenId("7")).Return([]offer.Offer{}, nil).Once()
	s.asset.On("Get", mock.Anything, contract, domain.TokenId("7")).Return(&asset.Asset{Name: "Grifter #7"}, nil).Once()
	s.erc721.On("OwnerOf", mock.Anything, contract, big.NewInt(7)).Return(owner, nil).Once()
	s.ens.On("ReverseResolve", mock.Anything, owner).Return("alley.eth", nil).Once()
}

func (s *pageSuite) TestGetListingPage() {
	s.mockSections("42")
	s.history.On("List", mock.Anything, mock.Anything, domain.TokenId("7"), 50).Return(&history.History{
		Complete: true,
		Events:   []history.TransferEvent{{TxHash: "0xfeed", Label: history.LabelMint}},
	}, nil).Once()

	p, err := s.u.GetListingPage(ctx.Background(), page.Request{ListingId: "42", BidInput: "12"})
	s.Require().NoError(err)
	s.Equal("1.5 ETH", p.Listing.PriceDisplay)
	s.True(p.Listing.BuyEnabled)
	s.Equal("12", p.BidInput)
	s.False(p.Offers.Loading)
	s.Empty(p.Offers.Items)
	s.Len(p.History.Items, 1)
	s.Equal("Grifter #7", p.Asset.Asset.Name)
	s.Equal("alley.eth", p.Owner.Display)
	s.Equal(owner, p.Owner.Address)
	s.Nil(p.Notification)
}

func (s *pageSuite) TestSlowSectionStaysLoading() {
	s.mockSections("42")
	s.history.On("List", mock.Anything, mock.Anything, domain.TokenId("7"), 50).
		After(time.Second).
		Return(&history.History{Complete: true}, nil).Once()

	start := time.Now()
	p, err := s.u.GetListingPage(ctx.Background(), page.Request{ListingId: "42"})
	s.Require().NoError(err)
	s.Less(int64(time.Since(start)), int64(time.Second))
	s.True(p.History.Loading)
	s.False(p.Offers.Loading)
	s.False(p.Asset.Loading)
	s.False(p.Owner.Loading)
}

func (s *pageSuite) TestNotForSale() {
	s.listing.On("GetDirectListing", mock.Anything, "404").Return(nil, domain.ErrNotFound).Once()

	p, err := s.u.GetListingPage(ctx.Background(), page.Request{ListingId: "404"})
	s.Require().NoError(err)
	s.False(p.Listing.ForSale)
	s.Equal(page.NotForSale, p.Listing.PriceDisplay)
	s.offer.AssertNotCalled(s.T(), "GetAllValid", mock.Anything, mock.Anything, mock.Anything)
}

func (s *pageSuite) TestActionNotification() {
	s.mockSections("42")
	s.history.On("List", mock.Anything, mock.Anything, domain.TokenId("7"), 50).Return(&history.History{Complete: true}, nil).Once()
	s.action.On("Get", mock.Anything, "action-1").Return(&action.Record{
		Id:     "action-1",
		Kind:   action.KindBuy,
		Status: action.StatusFailed,
		Reason: "insufficient funds",
	}, nil).Once()

	p, err := s.u.GetListingPage(ctx.Background(), page.Request{ListingId: "42", ActionId: "action-1"})
	s.Require().NoError(err)
	s.Require().NotNil(p.Notification)
	s.Equal(notification.KindError, p.Notification.Kind)
	s.Equal("Purchase failed! Reason: insufficient funds", p.Notification.Message)
}
