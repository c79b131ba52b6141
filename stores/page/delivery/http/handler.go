package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/delivery"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain/page"
)

type handler struct {
	page page.Usecase
}

func New(e *echo.Echo, pageUC page.Usecase) {
	h := &handler{pageUC}

	g := e.Group("/pages")
	g.GET("/listing/:listingId", h.getListingPage)
}

// getListingPage
//
//	@Summary		Listing detail page
//	@Description	Sections are fetched in parallel; a section still in flight at the deadline is returned with loading=true
//	@Tags			pages
//	@Produce		json
//	@Param			listingId	path		string	true	"listing id"
//	@Param			bid			query		string	false	"bid input echoed back into the form"
//	@Param			actionId	query		string	false	"dispatched action whose toast should be shown"
//	@Success		200			{object}	object{data=page.ListingPage}
//	@Router			/pages/listing/{listingId} [get]
func (h *handler) getListingPage(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		ListingId string `param:"listingId"`
		Bid       string `query:"bid"`
		ActionId  string `query:"actionId"`
	}
	p := params{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.page.GetListingPage(ctx, page.Request{
		ListingId: p.ListingId,
		BidInput:  p.Bid,
		ActionId:  p.ActionId,
	})
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "listingId": p.ListingId}).Error("page.GetListingPage failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
