package delivery

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// MakeJsonResp wraps data into the response envelope. An error as data
// overrides status for the known sentinel errors.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = statusOf(err, status)
		data = err.Error()
	}

	switch {
	case status >= 400:
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	case status >= 200 && status < 300:
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	default:
		return c.JSON(status, data)
	}
}

func statusOf(err error, fallback int) int {
	var verrs validator.ValidationErrors
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, query.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBadParamInput), errors.Is(err, domain.ErrInvalidAddress), errors.As(err, &verrs):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidSignature):
		return http.StatusUnauthorized
	}
	return fallback
}
