package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"football-data-backend/internal/api/handlers"
	apperrors "football-data-backend/internal/errors"
	"football-data-backend/internal/mocks"
	"football-data-backend/internal/service"
	"football-data-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PayPalHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	svc       *mocks.MockPaymentServiceInterface
	httpSuite *testutils.HTTPTestSuite
}

func (suite *PayPalHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.svc = mocks.NewMockPaymentServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.register(handlers.NewPayPalHandler(suite.svc))
}

func (suite *PayPalHandlerTestSuite) register(h *handlers.PayPalHandler) {
	paypal := suite.httpSuite.Router.Group("/api/paypal")
	paypal.GET("/setup", h.Setup)
	paypal.POST("/order", h.CreateOrder)
	paypal.POST("/order/:id/capture", h.CaptureOrder)
}

func (suite *PayPalHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PayPalHandlerTestSuite) TestSetup() {
	suite.svc.EXPECT().Setup().Return(&service.PayPalSetupResponse{ClientToken: "client-abc"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/paypal/setup", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"clientToken":"client-abc"}`, recorder.Body.String())
}

func (suite *PayPalHandlerTestSuite) TestSetup_Error() {
	suite.svc.EXPECT().Setup().Return(nil, apperrors.NewConfigurationError("payment gateway is not configured"))

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/paypal/setup", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to setup PayPal")
}

func (suite *PayPalHandlerTestSuite) TestCreateOrder() {
	suite.svc.EXPECT().
		CreateOrder(gomock.Any(), &service.CreateOrderRequest{Amount: "10", Currency: "USD"}, gomock.Any()).
		Return(&service.CreateOrderResponse{ID: "PAY-1", Status: service.OrderStatusCreated}, nil)

	recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, "/api/paypal/order", `{"amount": 10, "currency": "USD"}`)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"id":"PAY-1","status":"CREATED"}`, recorder.Body.String())
}

func (suite *PayPalHandlerTestSuite) TestCreateOrder_ForwardedProto() {
	suite.svc.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any(), "https://football.example/").
		Return(&service.CreateOrderResponse{ID: "PAY-1", Status: service.OrderStatusCreated}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/paypal/order", strings.NewReader(`{"amount":"5"}`))
	req.Host = "football.example"
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-Proto", "https")
	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *PayPalHandlerTestSuite) TestCreateOrder_MalformedBody() {
	recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, "/api/paypal/order", `{"amount": `)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

func (suite *PayPalHandlerTestSuite) TestCreateOrder_GatewayError() {
	suite.svc.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewGatewayError("create order", errors.New("401 unauthorized")))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/paypal/order", map[string]interface{}{"amount": 10})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Payment creation failed")
	suite.Contains(recorder.Body.String(), "401 unauthorized")
}

func (suite *PayPalHandlerTestSuite) TestCreateOrder_ValidationError() {
	suite.svc.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("currency", "failed on len"))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/paypal/order", map[string]interface{}{"amount": 10, "currency": "DOLLARS"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request")
}

func (suite *PayPalHandlerTestSuite) TestCaptureOrder() {
	suite.svc.EXPECT().
		CaptureOrder(gomock.Any(), "PAY-1", &service.CaptureOrderRequest{PayerID: "PAYER-9"}).
		Return(&service.CaptureOrderResponse{Status: service.OrderStatusCompleted, ID: "PAY-1"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/paypal/order/PAY-1/capture", map[string]string{"payer_id": "PAYER-9"})

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"status":"COMPLETED","id":"PAY-1"}`, recorder.Body.String())
}

func (suite *PayPalHandlerTestSuite) TestCaptureOrder_EmptyBody() {
	suite.svc.EXPECT().
		CaptureOrder(gomock.Any(), "PAY-1", &service.CaptureOrderRequest{}).
		Return(&service.CaptureOrderResponse{Status: service.OrderStatusCompleted, ID: "PAY-1"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/paypal/order/PAY-1/capture", nil)

	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *PayPalHandlerTestSuite) TestCaptureOrder_Error() {
	suite.svc.EXPECT().CaptureOrder(gomock.Any(), "PAY-1", gomock.Any()).
		Return(nil, apperrors.NewGatewayError("capture order", errors.New("payer has not approved")))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/paypal/order/PAY-1/capture", map[string]string{"payer_id": "X"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Payment execution failed")
}

func TestPayPalHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PayPalHandlerTestSuite))
}

// Runs the real payment service behind the handler: invalid amounts must be
// rejected with 400 and never reach the gateway.
func TestCreateOrder_InvalidAmountRejectedBeforeGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockGateway(ctrl)

	httpSuite := testutils.SetupHTTPTest()
	h := handlers.NewPayPalHandler(service.NewPaymentService(gateway, validator.New()))
	httpSuite.Router.POST("/api/paypal/order", h.CreateOrder)

	for _, body := range []string{`{"amount": 0}`, `{"amount": -5}`, `{"amount": "-5"}`, `{}`, `{"amount": "ten"}`, `{"amount": 0.001}`, `{"amount": "0.004"}`} {
		recorder := httpSuite.MakeRawRequest(http.MethodPost, "/api/paypal/order", body)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid amount")
	}
}
