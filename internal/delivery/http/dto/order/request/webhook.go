package request

// PaymentWebhookRequest mirrors the gateway's notification schema:
// the order outcome is nested under data.order.
type PaymentWebhookRequest struct {
	Data *PaymentWebhookData `json:"data"`
}

type PaymentWebhookData struct {
	Order PaymentWebhookOrder `json:"order"`
}

type PaymentWebhookOrder struct {
	OrderID       string  `json:"order_id"`
	OrderStatus   string  `json:"order_status"`
	PaymentAmount float64 `json:"payment_amount"`
}
