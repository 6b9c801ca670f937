package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kartghar/payment-order-service/internal/domain"
	orderdto "github.com/kartghar/payment-order-service/internal/usecase/dto/order"
)

// HandleWebhook reconciles an asynchronous gateway notification. Gateways
// redeliver webhooks and race the client-initiated verify poll, so this
// path goes through the same conditional transition as VerifyOrder.
// Reconciliation conflicts and unknown orders are journaled, not failed:
// the transport layer acknowledges every structurally valid payload.
func (uc *DefaultOrderUsecase) HandleWebhook(ctx context.Context, event *orderdto.WebhookEventInput) error {
	if event == nil || event.OrderID == "" || event.GatewayStatus == "" {
		uc.journalMalformedWebhook(ctx, event)
		return fmt.Errorf("%w: webhook payload missing order id or status", domain.ErrValidation)
	}

	uc.recordWebhookEventMetrics(event.GatewayStatus)

	mapped, terminal := mapGatewayStatus(event.GatewayStatus)
	if !terminal {
		slog.Info("webhook carries no terminal outcome, order stays as is",
			"order_id", event.OrderID, "gateway_status", event.GatewayStatus)
		return nil
	}

	remote := &domain.GatewayOrderStatus{
		OrderID:      event.OrderID,
		RemoteStatus: event.GatewayStatus,
		Amount:       event.Amount,
	}

	_, err := uc.reconcile(ctx, event.OrderID, mapped, remote, "webhook")
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrOrderNotFound):
		// A webhook for an order this instance never created must not
		// fail the exchange; journal it for later inspection.
		uc.journalAnomaly(ctx, &domain.WebhookAnomaly{
			OrderID:       event.OrderID,
			GatewayStatus: event.GatewayStatus,
			Amount:        event.Amount,
			Reason:        domain.AnomalyUnknownOrder,
			Payload:       event.RawPayload,
			ReceivedAt:    time.Now(),
		})
		uc.recordWebhookAnomalyMetrics(domain.AnomalyUnknownOrder)
		slog.Warn("webhook for unknown order",
			"order_id", event.OrderID, "gateway_status", event.GatewayStatus)
		return nil
	case errors.Is(err, domain.ErrReconciliationConflict):
		// Already journaled and counted by reconcile. The gateway still
		// gets an ACK; operators resolve the disagreement manually.
		return nil
	default:
		return err
	}
}

func (uc *DefaultOrderUsecase) journalMalformedWebhook(ctx context.Context, event *orderdto.WebhookEventInput) {
	anomaly := &domain.WebhookAnomaly{
		Reason:     domain.AnomalyMalformed,
		ReceivedAt: time.Now(),
	}
	if event != nil {
		anomaly.OrderID = event.OrderID
		anomaly.GatewayStatus = event.GatewayStatus
		anomaly.Amount = event.Amount
		anomaly.Payload = event.RawPayload
	}
	uc.journalAnomaly(ctx, anomaly)
	uc.recordWebhookAnomalyMetrics(domain.AnomalyMalformed)
}
