package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/delivery"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/action"
	authMiddleware "github.com/x-xyz/storefront/stores/auth/delivery/http/middleware"
)

type handler struct {
	action action.Usecase
}

func New(e *echo.Echo, actionUC action.Usecase, authM *authMiddleware.AuthMiddleware) {
	h := &handler{actionUC}

	e.POST("/listings/:listingId/buy", h.buy, authM.Auth())
	e.POST("/listings/:listingId/offer", h.offer, authM.Auth())

	e.GET("/actions/:id", h.get)
	e.GET("/account/actions", h.findMine, authM.Auth())
}

// buy
//
//	@Summary		Buy a direct listing
//	@Description	Submits buyFromListing for the signed in account. Failures come back as an error toast.
//	@Tags			actions
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			listingId	path		string	true	"listing id"
//	@Success		200			{object}	object{data=action.Result}
//	@Failure		401
//	@Router			/listings/{listingId}/buy [post]
func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	account := c.Get(authMiddleware.AddressKey).(domain.Address)
	listingId := c.Param("listingId")

	res, err := h.action.BuyListing(ctx, account, listingId)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "listingId": listingId}).Error("action.BuyListing failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// offer
//
//	@Summary		Make an offer on a listed token
//	@Description	An empty bid is answered with a validation toast and nothing is sent
//	@Tags			actions
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			listingId	path		string					true	"listing id"
//	@Param			body		body		object{bidValue=string}	true	"bid in display units"
//	@Success		200			{object}	object{data=action.Result}
//	@Failure		400,401
//	@Router			/listings/{listingId}/offer [post]
func (h *handler) offer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	account := c.Get(authMiddleware.AddressKey).(domain.Address)

	type payload struct {
		ListingId string `param:"listingId"`
		BidValue  string `json:"bidValue"`
	}
	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.action.PlaceOffer(ctx, account, p.ListingId, p.BidValue)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "listingId": p.ListingId}).Error("action.PlaceOffer failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// get
//
//	@Summary	Dispatched action status
//	@Tags		actions
//	@Produce	json
//	@Param		id	path		string	true	"action id"
//	@Success	200	{object}	object{data=action.Record}
//	@Failure	404
//	@Router		/actions/{id} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	r, err := h.action.Get(ctx, c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, r)
}

// findMine
//
//	@Summary	Actions of the signed in account, newest first
//	@Tags		actions
//	@Produce	json
//	@Security	ApiKeyAuth
//	@Param		status	query		string	false	"pending, confirmed or failed"
//	@Param		limit	query		int		false	"max records"
//	@Success	200		{object}	object{data=[]action.Record}
//	@Failure	400,401
//	@Router		/account/actions [get]
func (h *handler) findMine(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	account := c.Get(authMiddleware.AddressKey).(domain.Address)

	type params struct {
		Status string `query:"status" validate:"omitempty,oneof=pending confirmed failed"`
		Limit  int64  `query:"limit" validate:"min=0,max=100"`
	}
	p := params{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []action.FindAllOptions{action.WithAccount(account)}
	if p.Status != "" {
		opts = append(opts, action.WithStatus(action.Status(p.Status)))
	}
	if p.Limit > 0 {
		opts = append(opts, action.WithLimit(p.Limit))
	}

	records, err := h.action.FindAll(ctx, opts...)
	if err != nil {
		ctx.WithField("err", err).Error("action.FindAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, records)
}
