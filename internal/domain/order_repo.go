package domain

import "context"

type OrderRepository interface {
	// CreateOrder inserts a new order. Returns ErrDuplicateOrderID if the id
	// already exists. Creation is the only operation allowed to insert.
	CreateOrder(ctx context.Context, order *Order) error

	GetOrderByID(ctx context.Context, orderID string) (*Order, error)

	// UpdateOrderStatus applies a conditional status transition in a single
	// atomic statement: the row is written only when the current status is
	// PENDING or already equals newStatus (idempotent success). Returns
	// ErrOrderNotFound for unknown ids and ErrInvalidTransition when the
	// order is terminal with a different status.
	UpdateOrderStatus(ctx context.Context, orderID string, newStatus PaymentStatus) (*Order, error)

	// SetPaymentSession stores the gateway session handle on the order.
	SetPaymentSession(ctx context.Context, orderID, sessionID string) error
}
