package domain

import "errors"

var (
	ErrValidation             = errors.New("validation failed")
	ErrOrderNotFound          = errors.New("order not found")
	ErrDuplicateOrderID       = errors.New("duplicate order id")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrReconciliationConflict = errors.New("reconciliation conflict")
	ErrGatewayUnavailable     = errors.New("payment gateway unavailable")
	ErrGatewayRejected        = errors.New("payment gateway rejected request")
	ErrGatewayFault           = errors.New("payment gateway fault")
)
