package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	apperrors "football-data-backend/internal/errors"
	"football-data-backend/internal/mocks"
	"football-data-backend/internal/paypal"
	"football-data-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const returnBase = "http://localhost:8000/"

type PaymentServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	ctx     context.Context
	gateway *mocks.MockGateway
	svc     *service.PaymentService
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ctx = context.Background()
	suite.gateway = mocks.NewMockGateway(suite.ctrl)
	suite.svc = service.NewPaymentService(suite.gateway, validator.New())
}

func (suite *PaymentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PaymentServiceTestSuite) TestSetup() {
	suite.gateway.EXPECT().ClientID().Return("client-abc").AnyTimes()

	resp, err := suite.svc.Setup()
	suite.Require().NoError(err)
	suite.Equal("client-abc", resp.ClientToken)
}

func (suite *PaymentServiceTestSuite) TestSetup_Unconfigured() {
	suite.gateway.EXPECT().ClientID().Return("")

	_, err := suite.svc.Setup()
	suite.True(apperrors.IsConfiguration(err))
}

func (suite *PaymentServiceTestSuite) TestCreateOrder_InvalidAmountNeverReachesGateway() {
	for _, amount := range []string{"0", "-5", "", "abc", "NaN", "Inf", "0.001", "0.004", "0.009", "10.005", "-0.01"} {
		suite.Run("amount "+amount, func() {
			// no gateway expectations: any call fails the test
			resp, err := suite.svc.CreateOrder(suite.ctx, &service.CreateOrderRequest{Amount: service.Amount(amount)}, returnBase)
			suite.Nil(resp)
			suite.ErrorIs(err, apperrors.ErrInvalidAmount)
			suite.True(apperrors.IsValidation(err))
		})
	}

	_, err := suite.svc.CreateOrder(suite.ctx, nil, returnBase)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
}

func (suite *PaymentServiceTestSuite) TestCreateOrder_SmallestAmounts() {
	testCases := []struct {
		amount string
		total  string
	}{
		{amount: "0.01", total: "0.01"},
		{amount: "19.99", total: "19.99"},
		{amount: "12.5", total: "12.50"},
		{amount: "7.000", total: "7.00"},
	}

	for _, tc := range testCases {
		suite.Run(tc.amount, func() {
			suite.gateway.EXPECT().
				CreateOrder(suite.ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, o *paypal.OrderRequest) (*paypal.Order, error) {
					suite.Equal(tc.total, o.Total)
					suite.Equal(tc.total, o.Items[0].UnitPrice)
					return &paypal.Order{ID: "ORDER-1", Status: "CREATED"}, nil
				})

			_, err := suite.svc.CreateOrder(suite.ctx, &service.CreateOrderRequest{Amount: service.Amount(tc.amount)}, returnBase)
			suite.NoError(err)
		})
	}
}

func (suite *PaymentServiceTestSuite) TestCreateOrder_BuildsDonationOrder() {
	var sent *paypal.OrderRequest
	suite.gateway.EXPECT().
		CreateOrder(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, o *paypal.OrderRequest) (*paypal.Order, error) {
			sent = o
			return &paypal.Order{
				ID:          "ORDER-42",
				Status:      "CREATED",
				ApprovalURL: "https://paypal.test/approve",
			}, nil
		})

	resp, err := suite.svc.CreateOrder(suite.ctx, &service.CreateOrderRequest{Amount: "10"}, returnBase)

	suite.Require().NoError(err)
	suite.Equal("ORDER-42", resp.ID)
	suite.Equal(service.OrderStatusCreated, resp.Status)
	suite.Equal("https://paypal.test/approve", resp.ApprovalURL)

	suite.Require().NotNil(sent)
	suite.Equal(paypal.IntentCapture, sent.Intent)
	suite.Equal("http://localhost:8000/success", sent.ReturnURL)
	suite.Equal("http://localhost:8000/cancel", sent.CancelURL)
	suite.Equal("10.00", sent.Total)
	suite.Equal(service.DefaultCurrency, sent.Currency)
	suite.Equal("Football App Donation", sent.Description)
	suite.Require().Len(sent.Items, 1)
	suite.Equal("donation", sent.Items[0].SKU)
	suite.Equal("1", sent.Items[0].Quantity)
	suite.Equal("10.00", sent.Items[0].UnitPrice)
}

func (suite *PaymentServiceTestSuite) TestCreateOrder_IntentAndCurrency() {
	testCases := []struct {
		intent         string
		currency       string
		expectIntent   string
		expectCurrency string
	}{
		{intent: "", currency: "", expectIntent: paypal.IntentCapture, expectCurrency: "USD"},
		{intent: "capture", currency: "mxn", expectIntent: paypal.IntentCapture, expectCurrency: "MXN"},
		{intent: "AUTHORIZE", currency: "EUR", expectIntent: paypal.IntentAuthorize, expectCurrency: "EUR"},
		{intent: "authorize", currency: "USD", expectIntent: paypal.IntentAuthorize, expectCurrency: "USD"},
	}

	for _, tc := range testCases {
		suite.Run(tc.intent+"/"+tc.currency, func() {
			suite.gateway.EXPECT().
				CreateOrder(suite.ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, o *paypal.OrderRequest) (*paypal.Order, error) {
					suite.Equal(tc.expectIntent, o.Intent)
					suite.Equal(tc.expectCurrency, o.Currency)
					return &paypal.Order{ID: "ORDER-1"}, nil
				})

			_, err := suite.svc.CreateOrder(suite.ctx, &service.CreateOrderRequest{Amount: "5.5", Intent: tc.intent, Currency: tc.currency}, returnBase)
			suite.NoError(err)
		})
	}
}

func (suite *PaymentServiceTestSuite) TestCreateOrder_RejectsBadCurrency() {
	_, err := suite.svc.CreateOrder(suite.ctx, &service.CreateOrderRequest{Amount: "5", Currency: "DOLLARS"}, returnBase)
	suite.True(apperrors.IsValidation(err))
	suite.NotErrorIs(err, apperrors.ErrInvalidAmount)
}

func (suite *PaymentServiceTestSuite) TestCreateOrder_GatewayFailure() {
	providerErr := &paypal.APIError{StatusCode: 422, Name: "UNPROCESSABLE_ENTITY", Message: "The requested action could not be performed"}
	suite.gateway.EXPECT().CreateOrder(suite.ctx, gomock.Any()).Return(nil, providerErr)

	_, err := suite.svc.CreateOrder(suite.ctx, &service.CreateOrderRequest{Amount: "3"}, returnBase)

	suite.True(apperrors.IsGateway(err))
	var apiErr *paypal.APIError
	suite.True(errors.As(err, &apiErr))
	suite.Equal("UNPROCESSABLE_ENTITY", apiErr.Name)
}

func (suite *PaymentServiceTestSuite) TestCreateOrder_MissingOrderID() {
	suite.gateway.EXPECT().CreateOrder(suite.ctx, gomock.Any()).Return(&paypal.Order{Status: "CREATED"}, nil)

	_, err := suite.svc.CreateOrder(suite.ctx, &service.CreateOrderRequest{Amount: "3"}, returnBase)

	suite.True(apperrors.IsGateway(err))
}

func (suite *PaymentServiceTestSuite) TestCaptureOrder() {
	gomock.InOrder(
		suite.gateway.EXPECT().GetOrder(suite.ctx, "ORDER-42").Return(&paypal.Order{ID: "ORDER-42", Status: "APPROVED", PayerID: "PAYER-1"}, nil),
		suite.gateway.EXPECT().CaptureOrder(suite.ctx, "ORDER-42").Return(&paypal.Order{ID: "ORDER-42", Status: "COMPLETED"}, nil),
	)

	resp, err := suite.svc.CaptureOrder(suite.ctx, "ORDER-42", &service.CaptureOrderRequest{PayerID: "PAYER-1"})

	suite.Require().NoError(err)
	suite.Equal(service.OrderStatusCompleted, resp.Status)
	suite.Equal("ORDER-42", resp.ID)
}

func (suite *PaymentServiceTestSuite) TestCaptureOrder_WithoutPayerID() {
	suite.gateway.EXPECT().GetOrder(suite.ctx, "ORDER-7").Return(&paypal.Order{ID: "ORDER-7", PayerID: "PAYER-1"}, nil)
	suite.gateway.EXPECT().CaptureOrder(suite.ctx, "ORDER-7").Return(&paypal.Order{Status: "COMPLETED"}, nil)

	resp, err := suite.svc.CaptureOrder(suite.ctx, "ORDER-7", nil)

	suite.Require().NoError(err)
	suite.Equal("ORDER-7", resp.ID)
}

func (suite *PaymentServiceTestSuite) TestCaptureOrder_Failures() {
	suite.gateway.EXPECT().GetOrder(suite.ctx, "ORDER-X").Return(nil, &paypal.APIError{StatusCode: 404, Name: "RESOURCE_NOT_FOUND"})
	_, err := suite.svc.CaptureOrder(suite.ctx, "ORDER-X", nil)
	suite.True(apperrors.IsGateway(err))
	suite.Contains(err.Error(), "find order")

	suite.gateway.EXPECT().GetOrder(suite.ctx, "ORDER-1").Return(&paypal.Order{ID: "ORDER-1"}, nil)
	suite.gateway.EXPECT().CaptureOrder(suite.ctx, "ORDER-1").Return(nil, errors.New("ORDER_NOT_APPROVED"))
	_, err = suite.svc.CaptureOrder(suite.ctx, "ORDER-1", nil)
	suite.True(apperrors.IsGateway(err))
	suite.Contains(err.Error(), "capture order")
}

func (suite *PaymentServiceTestSuite) TestCaptureOrder_PayerMismatch() {
	// no capture expectation: the order must not be captured
	suite.gateway.EXPECT().GetOrder(suite.ctx, "ORDER-2").Return(&paypal.Order{ID: "ORDER-2", PayerID: "PAYER-1"}, nil)

	_, err := suite.svc.CaptureOrder(suite.ctx, "ORDER-2", &service.CaptureOrderRequest{PayerID: "PAYER-2"})

	suite.True(apperrors.IsGateway(err))
	suite.Contains(err.Error(), "another payer")
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		body    string
		expect  service.Amount
		wantErr bool
	}{
		{body: `{"amount": 10}`, expect: "10"},
		{body: `{"amount": 12.5}`, expect: "12.5"},
		{body: `{"amount": "7.25"}`, expect: "7.25"},
		{body: `{"amount": " 3 "}`, expect: "3"},
		{body: `{"amount": null}`, expect: ""},
		{body: `{}`, expect: ""},
		{body: `{"amount": true}`, wantErr: true},
		{body: `{"amount": {"value": 1}}`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.body, func(t *testing.T) {
			var req service.CreateOrderRequest
			err := json.Unmarshal([]byte(tc.body), &req)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, req.Amount)
		})
	}
}
