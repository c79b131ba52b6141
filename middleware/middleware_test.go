package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/storefront/base/ctx"
)

func serve(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestPathValidators(t *testing.T) {
	m := InitMiddleware()
	e := echo.New()
	e.Use(m.AddContext(), m.ResponseLogger())
	e.GET("/tokens/:contract/:tokenId", func(c echo.Context) error {
		_ = c.Get("ctx").(ctx.Ctx)
		return c.NoContent(http.StatusNoContent)
	}, IsValidAddress("contract"), IsValidUint256("tokenId"))

	require.Equal(t, http.StatusNoContent, serve(e, "/tokens/0x71c4658acc7b53ee814a29ce31100ff85ca23ca7/7").Code)
	require.Equal(t, http.StatusBadRequest, serve(e, "/tokens/0x71c4/7").Code)
	require.Equal(t, http.StatusBadRequest, serve(e, "/tokens/0x71c4658acc7b53ee814a29ce31100ff85ca23ca7/-1").Code)
}
