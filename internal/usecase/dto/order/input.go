package orderdto

type CustomerInput struct {
	CustomerID string
	Name       string
	Email      string
	Phone      string
}

type LineItemInput struct {
	SKU      string
	Name     string
	Quantity int64
	Price    float64
}

type CreateOrderInput struct {
	Amount   float64
	Currency string
	Customer CustomerInput
	Items    []LineItemInput
}

// WebhookEventInput is the already-decoded gateway notification.
// RawPayload keeps the original body for anomaly journaling.
type WebhookEventInput struct {
	OrderID       string
	GatewayStatus string
	Amount        float64
	RawPayload    string
}
