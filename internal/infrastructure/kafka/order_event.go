package kafka

import "time"

type OrderEvent struct {
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	AmountFiat float64   `json:"amount_fiat"`
	Currency   string    `json:"currency"`
	CustomerID string    `json:"customer_id"`
	Source     string    `json:"source"` // "create", "verify", "webhook"
	OccurredAt time.Time `json:"occurred_at"`
}
