package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/delivery"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/listing"
	"github.com/x-xyz/storefront/middleware"
)

type handler struct {
	listing listing.Usecase
	grid    listing.GridUsecase
}

func New(e *echo.Echo, listingUC listing.Usecase, gridUC listing.GridUsecase) {
	h := &handler{
		listing: listingUC,
		grid:    gridUC,
	}

	e.GET("/listings/:listingId", h.getListing)

	collections := e.Group("/collections/:contract", middleware.IsValidAddress("contract"))
	collections.GET("/auctions", h.getAuctions)
	collections.GET("/listings", h.getDirectListings)

	e.GET("/grids/:name", h.getNamedGrid)
}

type listingResp struct {
	ForSale bool             `json:"forSale"`
	Listing *listing.Listing `json:"listing,omitempty"`
}

// getListing
//
//	@Summary		Direct listing by id
//	@Description	Unknown, inactive or unparsable ids answer forSale=false
//	@Tags			listings
//	@Produce		json
//	@Param			listingId	path		string	true	"listing id"
//	@Success		200			{object}	object{data=listingResp}
//	@Router			/listings/{listingId} [get]
func (h *handler) getListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	id := c.Param("listingId")

	l, err := h.listing.GetDirectListing(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return delivery.MakeJsonResp(c, http.StatusOK, listingResp{ForSale: false})
	} else if err != nil {
		ctx.WithFields(log.Fields{"err": err, "listingId": id}).Error("listing.GetDirectListing failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, listingResp{ForSale: true, Listing: l})
}

type gridParams struct {
	Contract  domain.Address `param:"contract"`
	WithAsset bool           `query:"withAsset"`
}

// getAuctions
//
//	@Summary	Valid auctions of a collection
//	@Tags		collections
//	@Produce	json
//	@Param		contract	path		string	true	"collection address"
//	@Param		withAsset	query		bool	false	"attach token metadata"
//	@Success	200			{object}	object{data=listing.Grid}
//	@Failure	400
//	@Router		/collections/{contract}/auctions [get]
func (h *handler) getAuctions(c echo.Context) error {
	return h.serveGrid(c, listing.KindAuction)
}

// getDirectListings
//
//	@Summary	Valid direct listings of a collection
//	@Tags		collections
//	@Produce	json
//	@Param		contract	path		string	true	"collection address"
//	@Param		withAsset	query		bool	false	"attach token metadata"
//	@Success	200			{object}	object{data=listing.Grid}
//	@Failure	400
//	@Router		/collections/{contract}/listings [get]
func (h *handler) getDirectListings(c echo.Context) error {
	return h.serveGrid(c, listing.KindDirect)
}

func (h *handler) serveGrid(c echo.Context, kind listing.Kind) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := gridParams{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	grid, err := h.grid.GetGrid(ctx, p.Contract, kind, p.WithAsset)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, grid)
}

// getNamedGrid
//
//	@Summary	Configured collection grid
//	@Tags		collections
//	@Produce	json
//	@Param		name		path		string	true	"grid name"
//	@Param		withAsset	query		bool	false	"attach token metadata"
//	@Success	200			{object}	object{data=listing.Grid}
//	@Failure	404
//	@Router		/grids/{name} [get]
func (h *handler) getNamedGrid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Name      string `param:"name"`
		WithAsset bool   `query:"withAsset"`
	}
	p := params{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	grid, err := h.grid.GetNamedGrid(ctx, p.Name, p.WithAsset)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, grid)
}
