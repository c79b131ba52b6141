package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/x-xyz/storefront/domain"
)

func TestMakeJsonResp(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		data       interface{}
		wantStatus int
		wantState  JsonResponseStatus
		wantData   interface{}
	}{
		{
			name:       "success",
			status:     http.StatusOK,
			data:       "ok",
			wantStatus: http.StatusOK,
			wantState:  JsonResponseStatusSuccess,
			wantData:   "ok",
		},
		{
			name:       "wrapped not found",
			status:     http.StatusInternalServerError,
			data:       xerrors.Errorf("listing 9: %w", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantState:  JsonResponseStatusFail,
			wantData:   "listing 9: " + domain.ErrNotFound.Error(),
		},
		{
			name:       "bad param",
			status:     http.StatusInternalServerError,
			data:       domain.ErrBadParamInput,
			wantStatus: http.StatusBadRequest,
			wantState:  JsonResponseStatusFail,
			wantData:   domain.ErrBadParamInput.Error(),
		},
		{
			name:       "plain error keeps status",
			status:     http.StatusBadGateway,
			data:       xerrors.New("rpc down"),
			wantStatus: http.StatusBadGateway,
			wantState:  JsonResponseStatusFail,
			wantData:   "rpc down",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			req.NoError(MakeJsonResp(c, tt.status, tt.data))
			req.Equal(tt.wantStatus, rec.Code)

			var resp JsonResponse
			req.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
			req.Equal(tt.wantState, resp.Status)
			req.Equal(tt.wantData, resp.Data)
		})
	}
}
