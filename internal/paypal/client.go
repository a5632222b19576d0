package paypal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	sdk "github.com/plutov/paypal/v4"
)

// Provider endpoints per mode
const (
	SandboxBaseURL = sdk.APIBaseSandBox
	LiveBaseURL    = sdk.APIBaseLive
)

const defaultTimeout = 30 * time.Second

//go:generate mockgen -source=client.go -destination=../mocks/paypal_mocks.go -package=mocks

// Gateway is the subset of the PayPal Orders API used by the donation flow
type Gateway interface {
	ClientID() string
	CreateOrder(ctx context.Context, req *OrderRequest) (*Order, error)
	GetOrder(ctx context.Context, id string) (*Order, error)
	CaptureOrder(ctx context.Context, id string) (*Order, error)
}

// Options configures a Client
type Options struct {
	ClientID     string
	ClientSecret string
	// Sandbox selects the provider's non-billing environment
	Sandbox bool
	// BaseURL overrides the endpoint derived from Sandbox when set
	BaseURL string
	Timeout time.Duration
}

// Client adapts the PayPal SDK to Gateway. The SDK fetches the access token
// on first use and renews it before it expires.
type Client struct {
	clientID string
	baseURL  string
	api      *sdk.Client
}

// Ensure Client implements Gateway
var _ Gateway = (*Client)(nil)

// BaseURLFor returns the provider endpoint for the given mode
func BaseURLFor(sandbox bool) string {
	if sandbox {
		return SandboxBaseURL
	}
	return LiveBaseURL
}

// NewClient builds a Client for the configured credentials and mode
func NewClient(opts Options) (*Client, error) {
	if opts.ClientID == "" || opts.ClientSecret == "" {
		return nil, fmt.Errorf("paypal: client id and secret are required")
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = BaseURLFor(opts.Sandbox)
	}
	baseURL = strings.TrimRight(baseURL, "/")

	api, err := sdk.NewClient(opts.ClientID, opts.ClientSecret, baseURL)
	if err != nil {
		return nil, fmt.Errorf("paypal: %w", err)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	api.SetHTTPClient(&http.Client{Timeout: timeout})

	return &Client{
		clientID: opts.ClientID,
		baseURL:  baseURL,
		api:      api,
	}, nil
}

// ClientID returns the public client id handed to browser SDKs
func (c *Client) ClientID() string {
	return c.clientID
}

// CreateOrder creates a single purchase unit order and returns it with its approval link
func (c *Client) CreateOrder(ctx context.Context, req *OrderRequest) (*Order, error) {
	items := make([]sdk.Item, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, sdk.Item{
			Name:       it.Name,
			SKU:        it.SKU,
			Quantity:   it.Quantity,
			UnitAmount: &sdk.Money{Currency: req.Currency, Value: it.UnitPrice},
		})
	}

	unit := sdk.PurchaseUnitRequest{
		Description: req.Description,
		Amount: &sdk.PurchaseUnitAmount{
			Currency: req.Currency,
			Value:    req.Total,
			Breakdown: &sdk.PurchaseUnitAmountBreakdown{
				ItemTotal: &sdk.Money{Currency: req.Currency, Value: req.Total},
			},
		},
		Items: items,
	}

	var appCtx *sdk.ApplicationContext
	if req.ReturnURL != "" || req.CancelURL != "" {
		appCtx = &sdk.ApplicationContext{ReturnURL: req.ReturnURL, CancelURL: req.CancelURL}
	}

	order, err := c.api.CreateOrder(ctx, req.Intent, []sdk.PurchaseUnitRequest{unit}, nil, appCtx)
	if err != nil {
		return nil, toAPIError(err)
	}
	return fromSDKOrder(order), nil
}

// GetOrder looks up an order by id
func (c *Client) GetOrder(ctx context.Context, id string) (*Order, error) {
	order, err := c.api.GetOrder(ctx, id)
	if err != nil {
		return nil, toAPIError(err)
	}
	return fromSDKOrder(order), nil
}

// CaptureOrder captures an approved order
func (c *Client) CaptureOrder(ctx context.Context, id string) (*Order, error) {
	captured, err := c.api.CaptureOrder(ctx, id, sdk.CaptureOrderRequest{})
	if err != nil {
		return nil, toAPIError(err)
	}
	out := &Order{ID: captured.ID, Status: captured.Status}
	if captured.Payer != nil {
		out.PayerID = captured.Payer.PayerID
	}
	return out, nil
}

func fromSDKOrder(o *sdk.Order) *Order {
	out := &Order{ID: o.ID, Status: o.Status}
	if o.Payer != nil {
		out.PayerID = o.Payer.PayerID
	}
	for _, l := range o.Links {
		if l.Rel == linkApprove || l.Rel == linkPayerAction {
			out.ApprovalURL = l.Href
			break
		}
	}
	return out
}

// toAPIError turns the SDK's error payload into an APIError; transport
// failures pass through unchanged.
func toAPIError(err error) error {
	var resp *sdk.ErrorResponse
	if !errors.As(err, &resp) {
		return fmt.Errorf("paypal: %w", err)
	}
	apiErr := &APIError{Name: resp.Name, Message: resp.Message, DebugID: resp.DebugID}
	if resp.Response != nil {
		apiErr.StatusCode = resp.Response.StatusCode
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.Response.StatusCode)
		}
	}
	return apiErr
}
