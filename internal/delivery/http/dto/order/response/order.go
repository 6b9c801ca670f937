package response

type CreateOrderResponse struct {
	OrderID          string `json:"orderId"`
	PaymentSessionID string `json:"paymentSessionId"`
}

type OrderStatusResponse struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
	Settled bool   `json:"settled"`
}

type WebhookAckResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type AnomalyListResponse struct {
	Anomalies []Anomaly `json:"anomalies"`
	Total     int64     `json:"total"`
}

type Anomaly struct {
	ID            string  `json:"id"`
	OrderID       string  `json:"orderId"`
	GatewayStatus string  `json:"gatewayStatus"`
	Amount        float64 `json:"amount"`
	Reason        string  `json:"reason"`
	ReceivedAt    string  `json:"receivedAt"`
}
