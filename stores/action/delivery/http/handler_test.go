package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	customValidator "github.com/x-xyz/storefront/base/validator"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/action"
	actionMocks "github.com/x-xyz/storefront/domain/action/mocks"
	domainMocks "github.com/x-xyz/storefront/domain/mocks"
	"github.com/x-xyz/storefront/domain/notification"
	"github.com/x-xyz/storefront/middleware"
	authMiddleware "github.com/x-xyz/storefront/stores/auth/delivery/http/middleware"
)

const buyer = domain.Address("0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266")

type handlerSuite struct {
	suite.Suite
	e      *echo.Echo
	action *actionMocks.Usecase
	auth   *domainMocks.AuthUsecase
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.action = &actionMocks.Usecase{}
	s.auth = &domainMocks.AuthUsecase{}
	s.auth.On("ParseToken", mock.Anything, "good").Return(buyer, nil)
	s.auth.On("ParseToken", mock.Anything, "bad").Return(domain.Address(""), domain.ErrInvalidSignature)

	s.e = echo.New()
	s.e.Validator = customValidator.NewCustomValidator(validator.New())
	s.e.Use(middleware.InitMiddleware().AddContext())
	New(s.e, s.action, authMiddleware.New(s.auth))
}

func (s *handlerSuite) do(method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *handlerSuite) TestOffer() {
	toast := notification.Success("Bid success!")
	s.action.On("PlaceOffer", mock.Anything, buyer, "42", "0.5").Return(&action.Result{
		Toast:    toast,
		ActionId: "a1",
		TxHash:   "0xabc",
		Refetch:  []string{"offers"},
	}, nil).Once()

	rec := s.do(http.MethodPost, "/listings/42/offer", "good", `{"bidValue":"0.5"}`)
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Data   action.Result `json:"data"`
		Status string        `json:"status"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("success", resp.Status)
	s.Equal("Bid success!", resp.Data.Toast.Message)
	s.Equal([]string{"offers"}, resp.Data.Refetch)
	s.action.AssertExpectations(s.T())
}

func (s *handlerSuite) TestBuyRequiresAuth() {
	rec := s.do(http.MethodPost, "/listings/42/buy", "bad", "")
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.action.AssertNotCalled(s.T(), "BuyListing", mock.Anything, mock.Anything, mock.Anything)
}

func (s *handlerSuite) TestBuy() {
	s.action.On("BuyListing", mock.Anything, buyer, "42").Return(&action.Result{
		Toast: notification.Error("Purchase failed! Reason: No valid listing found for this NFT"),
	}, nil).Once()

	rec := s.do(http.MethodPost, "/listings/42/buy", "good", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Purchase failed!")
}

func (s *handlerSuite) TestGetUnknownAction() {
	s.action.On("Get", mock.Anything, "missing").Return(nil, domain.ErrNotFound).Once()

	rec := s.do(http.MethodGet, "/actions/missing", "", "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *handlerSuite) TestFindMine() {
	s.action.On("FindAll", mock.Anything, mock.Anything, mock.Anything).Return([]*action.Record{
		{Id: "a1", Account: buyer, Status: action.StatusPending},
	}, nil).Once()

	rec := s.do(http.MethodGet, "/account/actions?status=pending", "good", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"a1"`)

	rec = s.do(http.MethodGet, "/account/actions?status=lost", "good", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}
