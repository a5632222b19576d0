package paypal

import "fmt"

// Order intents understood by the Orders API
const (
	IntentCapture   = "CAPTURE"
	IntentAuthorize = "AUTHORIZE"
)

const (
	linkApprove     = "approve"
	linkPayerAction = "payer-action"
)

// OrderRequest describes a single purchase unit order
type OrderRequest struct {
	Intent      string
	Currency    string
	Total       string
	Description string
	Items       []Item
	ReturnURL   string
	CancelURL   string
}

// Item is one line of the purchase unit, priced in the order currency
type Item struct {
	Name      string
	SKU       string
	Quantity  string
	UnitPrice string
}

// Order is the part of a provider order the donation flow reads
type Order struct {
	ID          string
	Status      string
	PayerID     string
	ApprovalURL string
}

// APIError is a non-2xx answer from the provider
type APIError struct {
	StatusCode int    `json:"-"`
	Name       string `json:"name"`
	Message    string `json:"message"`
	DebugID    string `json:"debug_id"`
}

func (e *APIError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("paypal: %d %s: %s", e.StatusCode, e.Name, e.Message)
	}
	return fmt.Sprintf("paypal: %d: %s", e.StatusCode, e.Message)
}
