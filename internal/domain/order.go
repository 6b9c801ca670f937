package domain

import "time"

type PaymentStatus string

const (
	StatusPending   PaymentStatus = "PENDING"
	StatusPaid      PaymentStatus = "PAID"
	StatusFailed    PaymentStatus = "FAILED"
	StatusCancelled PaymentStatus = "CANCELLED"
)

// IsTerminal reports whether no further transition is permitted from s.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case StatusPaid, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

type Customer struct {
	CustomerID string
	Name       string
	Email      string
	Phone      string
}

// LineItem is an opaque storefront descriptor, passed through unchanged.
type LineItem struct {
	SKU      string  `json:"sku,omitempty"`
	Name     string  `json:"name"`
	Quantity int64   `json:"quantity"`
	Price    float64 `json:"price"`
}

type Order struct {
	ID               string
	Items            []LineItem
	AmountFiat       float64
	Currency         string
	Customer         Customer
	Status           PaymentStatus
	PaymentSessionID string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
