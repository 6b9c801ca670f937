package request

import "encoding/json"

// CreateOrderRequest is the storefront creation payload. Amount arrives as
// json.Number because some clients send it as a string.
type CreateOrderRequest struct {
	Amount   json.Number     `json:"amount"`
	Currency string          `json:"currency,omitempty"`
	Customer CustomerRequest `json:"customer"`
	Items    []LineItem      `json:"items,omitempty"`
}

type CustomerRequest struct {
	CustomerID string `json:"customerId,omitempty"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone"`
}

type LineItem struct {
	SKU      string  `json:"sku,omitempty"`
	Name     string  `json:"name"`
	Quantity int64   `json:"quantity"`
	Price    float64 `json:"price"`
}
