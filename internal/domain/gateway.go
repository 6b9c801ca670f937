package domain

import "context"

// Gateway order statuses we may receive, in the gateway's own vocabulary.
// The lifecycle coordinator owns the mapping into PaymentStatus.
const (
	GatewayStatusActive      = "ACTIVE"
	GatewayStatusPaid        = "PAID"
	GatewayStatusExpired     = "EXPIRED"
	GatewayStatusCancelled   = "CANCELLED"
	GatewayStatusFailed      = "FAILED"
	GatewayStatusUserDropped = "USER_DROPPED"
)

type SessionRequest struct {
	OrderID  string
	Amount   float64
	Currency string
	Customer Customer
}

type SessionResponse struct {
	PaymentSessionID string
}

type GatewayOrderStatus struct {
	OrderID      string
	RemoteStatus string
	Amount       float64
}

// PaymentGateway is the outbound port to the remote payment provider.
// Implementations classify failures into ErrGatewayUnavailable (transport,
// timeout), ErrGatewayRejected (4xx) and ErrGatewayFault (5xx, garbage).
type PaymentGateway interface {
	CreateSession(ctx context.Context, req *SessionRequest) (*SessionResponse, error)
	FetchStatus(ctx context.Context, orderID string) (*GatewayOrderStatus, error)
}
