package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/storefront/base/ctx"
	hcdomain "github.com/x-xyz/storefront/domain/healthcheck"
)

type healthCheckHandler struct {
	healthCheck hcdomain.Usecase
}

// New will initialize the healthcheck/
func New(e *echo.Echo, us hcdomain.Usecase) {
	handler := &healthCheckHandler{
		healthCheck: us,
	}
	g := e.Group("/health")
	g.GET("", handler.check)
}

// check
//
//	@Summary	Health check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	object{healthy=string}
//	@Failure	500	{object}	map[string]string	"failing dependencies"
//	@Router		/health [get]
func (h *healthCheckHandler) check(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	failed := h.healthCheck.Check(context)
	if len(failed) > 0 {
		res := map[string]string{}
		for dep, err := range failed {
			res[string(dep)] = err.Error()
		}
		return c.JSON(http.StatusInternalServerError, res)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"healthy": "ok",
	})
}
