package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/delivery"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/offer"
	"github.com/x-xyz/storefront/middleware"
)

type handler struct {
	offer offer.Usecase
}

func New(e *echo.Echo, offerUC offer.Usecase) {
	h := &handler{offerUC}

	g := e.Group("/tokens/:contract/:tokenId", middleware.IsValidAddress("contract"), middleware.IsValidUint256("tokenId"))
	g.GET("/offers", h.getOffers)
}

// getOffers
//
//	@Summary		Valid offers on a token
//	@Description	Fetched from the marketplace on every call
//	@Tags			tokens
//	@Produce		json
//	@Param			contract	path		string	true	"token contract"
//	@Param			tokenId		path		string	true	"token id"
//	@Success		200			{object}	object{data=[]offer.Offer}
//	@Failure		400
//	@Router			/tokens/{contract}/{tokenId}/offers [get]
func (h *handler) getOffers(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	contract := domain.Address(c.Param("contract"))
	tokenId := domain.TokenId(c.Param("tokenId"))

	offers, err := h.offer.GetAllValid(ctx, contract, tokenId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, offers)
}
