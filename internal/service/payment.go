package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	apperrors "football-data-backend/internal/errors"
	"football-data-backend/internal/logger"
	"football-data-backend/internal/paypal"

	"github.com/go-playground/validator/v10"
)

// Order statuses reported to the browser
const (
	OrderStatusCreated   = "CREATED"
	OrderStatusCompleted = "COMPLETED"
)

// Donation defaults
const (
	DefaultCurrency = "USD"
	DefaultIntent   = "CAPTURE"

	donationName = "Football App Donation"
	donationSKU  = "donation"
)

// Amount accepts either a JSON number or a numeric string
type Amount string

// UnmarshalJSON implements json.Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*a = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a number or a numeric string")
	}
	*a = Amount(n.String())
	return nil
}

// Value parses the amount. It must be at least one cent with no more than
// two decimals.
func (a Amount) Value() (float64, error) {
	v, err := strconv.ParseFloat(string(a), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, apperrors.ErrInvalidAmount
	}
	cents := math.Round(v * 100)
	if cents < 1 || math.Abs(v*100-cents) > 1e-6 {
		return 0, apperrors.ErrInvalidAmount
	}
	return cents / 100, nil
}

// CreateOrderRequest represents a donation order request
type CreateOrderRequest struct {
	Amount   Amount `json:"amount" swaggertype:"string" example:"10.00"`
	Currency string `json:"currency,omitempty" validate:"omitempty,len=3,alpha" example:"USD"`
	Intent   string `json:"intent,omitempty" validate:"omitempty,alpha" example:"CAPTURE"`
}

// CaptureOrderRequest carries the payer returned by the provider after approval
type CaptureOrderRequest struct {
	PayerID string `json:"payer_id" example:"PAYERID123"`
}

// PayPalSetupResponse is handed to the browser SDK
type PayPalSetupResponse struct {
	ClientToken string `json:"clientToken"`
}

// CreateOrderResponse represents a created donation order
type CreateOrderResponse struct {
	ID          string `json:"id" example:"5O190127TN364715T"`
	Status      string `json:"status" example:"CREATED"`
	ApprovalURL string `json:"approval_url,omitempty"`
}

// CaptureOrderResponse represents a completed donation order
type CaptureOrderResponse struct {
	Status string `json:"status" example:"COMPLETED"`
	ID     string `json:"id" example:"5O190127TN364715T"`
}

// PaymentService drives the donation flow against the payment gateway
type PaymentService struct {
	gateway   paypal.Gateway
	validator *validator.Validate
}

// Ensure PaymentService implements PaymentServiceInterface
var _ PaymentServiceInterface = (*PaymentService)(nil)

// NewPaymentService creates a new payment service
func NewPaymentService(gateway paypal.Gateway, validator *validator.Validate) *PaymentService {
	return &PaymentService{
		gateway:   gateway,
		validator: validator,
	}
}

// Setup returns the public client id for the browser SDK
func (s *PaymentService) Setup() (*PayPalSetupResponse, error) {
	if s.gateway == nil || s.gateway.ClientID() == "" {
		return nil, apperrors.NewConfigurationError("payment gateway is not configured")
	}
	return &PayPalSetupResponse{ClientToken: s.gateway.ClientID()}, nil
}

// CreateOrder creates a single-item donation order. The amount is checked
// before the gateway is contacted.
func (s *PaymentService) CreateOrder(ctx context.Context, req *CreateOrderRequest, returnBase string) (*CreateOrderResponse, error) {
	if req == nil {
		return nil, apperrors.ErrInvalidAmount
	}
	amount, err := req.Amount.Value()
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = DefaultCurrency
	}
	price := strconv.FormatFloat(amount, 'f', 2, 64)

	order := &paypal.OrderRequest{
		Intent:      providerIntent(req.Intent),
		Currency:    currency,
		Total:       price,
		Description: donationName,
		Items: []paypal.Item{{
			Name:      donationName,
			SKU:       donationSKU,
			Quantity:  "1",
			UnitPrice: price,
		}},
		ReturnURL: returnBase + "success",
		CancelURL: returnBase + "cancel",
	}

	created, err := s.gateway.CreateOrder(ctx, order)
	if err != nil {
		return nil, apperrors.NewGatewayError("create order", err)
	}
	if created.ID == "" {
		return nil, apperrors.NewGatewayError("create order", errors.New("provider returned no order id"))
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"order_id": created.ID,
		"amount":   price,
		"currency": currency,
	}).Info("donation order created")

	return &CreateOrderResponse{
		ID:          created.ID,
		Status:      OrderStatusCreated,
		ApprovalURL: created.ApprovalURL,
	}, nil
}

// CaptureOrder looks the order up and captures it. When a payer id is given it
// must match the payer who approved the order.
func (s *PaymentService) CaptureOrder(ctx context.Context, id string, req *CaptureOrderRequest) (*CaptureOrderResponse, error) {
	payerID := ""
	if req != nil {
		payerID = req.PayerID
	}

	found, err := s.gateway.GetOrder(ctx, id)
	if err != nil {
		return nil, apperrors.NewGatewayError("find order", err)
	}
	if payerID != "" && found.PayerID != "" && found.PayerID != payerID {
		return nil, apperrors.NewGatewayError("capture order", fmt.Errorf("order %s was approved by another payer", id))
	}

	captured, err := s.gateway.CaptureOrder(ctx, id)
	if err != nil {
		return nil, apperrors.NewGatewayError("capture order", err)
	}

	orderID := captured.ID
	if orderID == "" {
		orderID = id
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"order_id": orderID,
		"status":   captured.Status,
	}).Info("donation order captured")

	return &CaptureOrderResponse{Status: OrderStatusCompleted, ID: orderID}, nil
}

// providerIntent normalizes the requested intent, defaulting to capture
func providerIntent(intent string) string {
	if intent == "" {
		return DefaultIntent
	}
	return strings.ToUpper(intent)
}

func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperrors.NewValidationError(strings.ToLower(verrs[0].Field()), "failed on "+verrs[0].Tag())
	}
	return apperrors.NewValidationError("", err.Error())
}
