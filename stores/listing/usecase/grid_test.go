package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/asset"
	assetMocks "github.com/x-xyz/storefront/domain/asset/mocks"
	"github.com/x-xyz/storefront/domain/listing"
	listingMocks "github.com/x-xyz/storefront/domain/listing/mocks"
)

const alley = domain.Address("0x71c4658acc7b53ee814a29ce31100ff85ca23ca7")

func newGrid(l *listingMocks.Usecase, a *assetMocks.Usecase) listing.GridUsecase {
	return NewGrid(&GridConfig{
		Listing: l,
		Asset:   a,
		Grids: map[string]listing.GridConfig{
			"Grifters": {
				Contract:  alley,
				Kind:      listing.KindAuction,
				EmptyText: "Sorry. Looks like no grifters are in the alley today.",
			},
		},
	})
}

func TestGetNamedGridEmpty(t *testing.T) {
	l := &listingMocks.Usecase{}
	l.On("GetValidAuctions", mock.Anything, alley).Return([]listing.Listing{}, nil).Once()

	grid, err := newGrid(l, &assetMocks.Usecase{}).GetNamedGrid(ctx.Background(), "grifters", true)
	require.NoError(t, err)
	require.Empty(t, grid.Items)
	require.Equal(t, "Sorry. Looks like no grifters are in the alley today.", grid.EmptyText)
	l.AssertExpectations(t)
}

func TestGetNamedGridUnknown(t *testing.T) {
	_, err := newGrid(&listingMocks.Usecase{}, &assetMocks.Usecase{}).GetNamedGrid(ctx.Background(), "punks", false)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetGridWithAssets(t *testing.T) {
	l := &listingMocks.Usecase{}
	a := &assetMocks.Usecase{}
	l.On("GetValidDirectListings", mock.Anything, alley).Return([]listing.Listing{
		{Id: "1", AssetContract: alley, TokenId: "10"},
		{Id: "2", AssetContract: alley, TokenId: "20"},
	}, nil).Once()
	a.On("Get", mock.Anything, alley, domain.TokenId("10")).Return(&asset.Asset{Name: "Grifter #10"}, nil).Once()
	a.On("Get", mock.Anything, alley, domain.TokenId("20")).Return(nil, errors.New("gateway timeout")).Once()

	grid, err := newGrid(l, a).GetGrid(ctx.Background(), alley, listing.KindDirect, true)
	require.NoError(t, err)
	require.Len(t, grid.Items, 2)
	require.Equal(t, "Grifter #10", grid.Items[0].Asset.Name)
	require.Nil(t, grid.Items[1].Asset)
	require.Empty(t, grid.EmptyText)
	a.AssertExpectations(t)
}

func TestGetGridDefaultEmptyText(t *testing.T) {
	l := &listingMocks.Usecase{}
	l.On("GetValidDirectListings", mock.Anything, alley).Return([]listing.Listing{}, nil).Once()

	grid, err := newGrid(l, &assetMocks.Usecase{}).GetGrid(ctx.Background(), alley, listing.KindDirect, false)
	require.NoError(t, err)
	require.Equal(t, listing.DefaultEmptyText, grid.EmptyText)
}

func TestGetGridBadKind(t *testing.T) {
	_, err := newGrid(&listingMocks.Usecase{}, &assetMocks.Usecase{}).GetGrid(ctx.Background(), alley, "raffle", false)
	require.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestGetGridEmptyTextSharedContract(t *testing.T) {
	l := &listingMocks.Usecase{}
	l.On("GetValidAuctions", mock.Anything, alley).Return([]listing.Listing{}, nil)
	g := NewGrid(&GridConfig{
		Listing: l,
		Asset:   &assetMocks.Usecase{},
		Grids: map[string]listing.GridConfig{
			"Night": {Contract: alley, Kind: listing.KindAuction, EmptyText: "The alley is closed tonight."},
			"Alley": {Contract: alley, Kind: listing.KindAuction, EmptyText: "Sorry. Looks like no grifters are in the alley today."},
			"Dawn":  {Contract: alley, Kind: listing.KindAuction, EmptyText: "Come back at dawn."},
			"Quiet": {Contract: alley, Kind: listing.KindAuction},
		},
	})

	for i := 0; i < 50; i++ {
		grid, err := g.GetGrid(ctx.Background(), alley, listing.KindAuction, false)
		require.NoError(t, err)
		require.Equal(t, "Sorry. Looks like no grifters are in the alley today.", grid.EmptyText)
	}
}
