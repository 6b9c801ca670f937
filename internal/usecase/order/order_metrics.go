package usecase

import (
	"errors"
	"log/slog"
	"time"

	"github.com/kartghar/payment-order-service/internal/domain"
	"github.com/kartghar/payment-order-service/internal/infrastructure/kafka"
)

func (uc *DefaultOrderUsecase) recordOrderCreatedMetrics(order *domain.Order) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordOrderCreated(order.Currency, order.AmountFiat)
}

func (uc *DefaultOrderUsecase) recordOrderSettledMetrics(order *domain.Order, source string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordOrderSettled(string(order.Status), source, order.Currency)
}

func (uc *DefaultOrderUsecase) recordGatewayCallMetrics(call string, duration time.Duration, err error) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordGatewayRequestDuration(call, duration.Seconds())
	if err != nil {
		uc.Metrics.RecordGatewayError(call, gatewayErrorKind(err))
	}
}

func (uc *DefaultOrderUsecase) recordWebhookEventMetrics(gatewayStatus string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordWebhookEvent(gatewayStatus)
}

func (uc *DefaultOrderUsecase) recordWebhookAnomalyMetrics(reason domain.AnomalyReason) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordWebhookAnomaly(string(reason))
}

func (uc *DefaultOrderUsecase) recordReconciliationConflictMetrics(source string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordReconciliationConflict(source)
}

func gatewayErrorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrGatewayUnavailable):
		return "unavailable"
	case errors.Is(err, domain.ErrGatewayRejected):
		return "rejected"
	case errors.Is(err, domain.ErrGatewayFault):
		return "fault"
	default:
		return "unknown"
	}
}

// publishOrderEvent fires the kafka event asynchronously; delivery is
// best-effort and never blocks or fails the request path.
func (uc *DefaultOrderUsecase) publishOrderEvent(event kafka.OrderEvent) {
	if uc.Publisher == nil {
		return
	}
	go func(event kafka.OrderEvent) {
		if err := uc.Publisher.PublishOrder(event); err != nil {
			slog.Error("failed to publish kafka OrderEvent",
				"order_id", event.OrderID, "status", event.Status, "error", err.Error())
		}
	}(event)
}
