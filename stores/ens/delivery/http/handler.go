package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/delivery"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/service/ens"
)

type handler struct {
	ens ens.ENS
}

// record is returned by both lookups so clients can treat them alike
type record struct {
	Name    string         `json:"name"`
	Address domain.Address `json:"address"`
}

func New(e *echo.Echo, ens ens.ENS) {
	h := &handler{ens}

	g := e.Group("/ens")
	g.GET("/resolve/:name", h.resolve)
	g.GET("/reverse-resolve/:address", h.reverseResolve)
}

// resolve
//
//	@Summary	Address of an ENS name
//	@Tags		ens
//	@Produce	json
//	@Param		name	path		string	true	"ens name"
//	@Success	200		{object}	object{data=record}
//	@Failure	404
//	@Router		/ens/resolve/{name} [get]
func (h *handler) resolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	name := c.Param("name")

	address, err := h.ens.Resolve(ctx, name)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "name": name}).Error("ens.Resolve failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	if address.IsEmpty() {
		return delivery.MakeJsonResp(c, http.StatusNotFound, domain.ErrNotFound)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, record{Name: name, Address: address})
}

// reverseResolve
//
//	@Summary		Primary ENS name of an address
//	@Description	name is empty when the address has no primary name
//	@Tags			ens
//	@Produce		json
//	@Param			address	path		string	true	"account address"
//	@Success		200		{object}	object{data=record}
//	@Failure		400
//	@Router			/ens/reverse-resolve/{address} [get]
func (h *handler) reverseResolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Address domain.Address `param:"address" validate:"required,address"`
	}
	p := params{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	name, err := h.ens.ReverseResolve(ctx, p.Address)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "address": p.Address}).Error("ens.ReverseResolve failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, record{Name: name, Address: p.Address.ToLower()})
}
