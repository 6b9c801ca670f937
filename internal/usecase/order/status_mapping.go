package usecase

import "github.com/kartghar/payment-order-service/internal/domain"

// mapGatewayStatus translates the gateway vocabulary into the internal
// status machine. The mapping is total: any value not listed here means
// "no transition, remain PENDING" and is only logged. ACTIVE and EXPIRED
// deliberately do not cancel an order; only the gateway's terminal signals
// may settle one.
func mapGatewayStatus(remoteStatus string) (domain.PaymentStatus, bool) {
	switch remoteStatus {
	case domain.GatewayStatusPaid:
		return domain.StatusPaid, true
	case domain.GatewayStatusFailed:
		return domain.StatusFailed, true
	case domain.GatewayStatusUserDropped:
		return domain.StatusCancelled, true
	default:
		return "", false
	}
}
