package orderdto

import "github.com/kartghar/payment-order-service/internal/domain"

type CreateOrderOutput struct {
	OrderID          string
	PaymentSessionID string
}

type OrderStatusOutput struct {
	OrderID string
	Status  domain.PaymentStatus
	// Settled is false while the order awaits a terminal outcome, so
	// callers can tell "not yet settled" apart from "failed".
	Settled bool
}
