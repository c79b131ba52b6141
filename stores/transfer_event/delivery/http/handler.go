package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/delivery"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/history"
	"github.com/x-xyz/storefront/middleware"
)

const defaultLimit = 50

type handler struct {
	history history.Usecase
}

func New(e *echo.Echo, historyUC history.Usecase) {
	h := &handler{historyUC}

	g := e.Group("/tokens/:contract/:tokenId", middleware.IsValidAddress("contract"), middleware.IsValidUint256("tokenId"))
	g.GET("/history", h.getHistory)
}

// getHistory
//
//	@Summary		Transfer history of a token
//	@Description	Newest first. The oldest event is labelled Mint when the history is complete.
//	@Tags			tokens
//	@Produce		json
//	@Param			contract	path		string	true	"token contract"
//	@Param			tokenId		path		string	true	"token id"
//	@Param			limit		query		int		false	"max events, 0 for all"	default(50)
//	@Success		200			{object}	object{data=history.History}
//	@Failure		400
//	@Router			/tokens/{contract}/{tokenId}/history [get]
func (h *handler) getHistory(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	contract := domain.Address(c.Param("contract"))
	tokenId := domain.TokenId(c.Param("tokenId"))

	limit := defaultLimit
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if limit < 0 {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	res, err := h.history.List(ctx, contract, tokenId, limit)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
