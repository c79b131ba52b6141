package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/listing"
	listingMocks "github.com/x-xyz/storefront/domain/listing/mocks"
	"github.com/x-xyz/storefront/middleware"
)

const alley = domain.Address("0x71c4658acc7b53ee814a29ce31100ff85ca23ca7")

func newServer(l *listingMocks.Usecase, g *listingMocks.GridUsecase) *echo.Echo {
	e := echo.New()
	e.Use(middleware.InitMiddleware().AddContext())
	New(e, l, g)
	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestGetListing(t *testing.T) {
	l := &listingMocks.Usecase{}
	l.On("GetDirectListing", mock.Anything, "42").Return(&listing.Listing{Id: "42", AssetContract: alley}, nil).Once()
	l.On("GetDirectListing", mock.Anything, "43").Return(nil, domain.ErrNotFound).Once()
	e := newServer(l, &listingMocks.GridUsecase{})

	rec := get(e, "/listings/42")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"forSale":true`)

	rec = get(e, "/listings/43")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"forSale":false`)
	l.AssertExpectations(t)
}

func TestGetAuctionsGrid(t *testing.T) {
	g := &listingMocks.GridUsecase{}
	g.On("GetGrid", mock.Anything, alley, listing.KindAuction, true).Return(&listing.Grid{
		Items:     []listing.GridItem{},
		EmptyText: "Sorry. Looks like no grifters are in the alley today.",
	}, nil).Once()
	e := newServer(&listingMocks.Usecase{}, g)

	rec := get(e, "/collections/"+string(alley)+"/auctions?withAsset=true")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "no grifters")

	rec = get(e, "/collections/0xnope/auctions")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	g.AssertExpectations(t)
}

func TestGetNamedGridUnknown(t *testing.T) {
	g := &listingMocks.GridUsecase{}
	g.On("GetNamedGrid", mock.Anything, "punks", false).Return(nil, domain.ErrNotFound).Once()

	rec := get(newServer(&listingMocks.Usecase{}, g), "/grids/punks")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
