package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kartghar/payment-order-service/internal/domain"
	"github.com/kartghar/payment-order-service/internal/infrastructure/kafka"
	orderdto "github.com/kartghar/payment-order-service/internal/usecase/dto/order"
)

// VerifyOrder polls the gateway for the authoritative order status and
// reconciles the local record. Gateway failures propagate untouched: a
// verification failure is never a payment failure and never transitions
// the stored status.
func (uc *DefaultOrderUsecase) VerifyOrder(ctx context.Context, orderID string) (*orderdto.OrderStatusOutput, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: orderId is required", domain.ErrValidation)
	}

	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	remote, err := uc.Gateway.FetchStatus(ctx, orderID)
	uc.recordGatewayCallMetrics("fetch_status", time.Since(start), err)
	if err != nil {
		return nil, err
	}

	mapped, terminal := mapGatewayStatus(remote.RemoteStatus)
	if !terminal {
		// ACTIVE / EXPIRED / unknown: no transition, still worth a trace.
		slog.Info("order not yet settled at gateway",
			"order_id", orderID, "gateway_status", remote.RemoteStatus)
		return &orderdto.OrderStatusOutput{
			OrderID: orderID,
			Status:  order.Status,
			Settled: order.Status.IsTerminal(),
		}, nil
	}

	updated, err := uc.reconcile(ctx, orderID, mapped, remote, "verify")
	if err != nil {
		return nil, err
	}

	return &orderdto.OrderStatusOutput{
		OrderID: orderID,
		Status:  updated.Status,
		Settled: updated.Status.IsTerminal(),
	}, nil
}

// reconcile is the single transition path shared by the verify poll and the
// webhook handler: both are just two producers feeding one state machine.
func (uc *DefaultOrderUsecase) reconcile(ctx context.Context, orderID string, newStatus domain.PaymentStatus, remote *domain.GatewayOrderStatus, source string) (*domain.Order, error) {
	updated, err := uc.OrderRepo.UpdateOrderStatus(ctx, orderID, newStatus)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			// The gateway told two different stories. Journal it for an
			// operator, never overwrite the stored outcome.
			uc.journalAnomaly(ctx, &domain.WebhookAnomaly{
				OrderID:       orderID,
				GatewayStatus: remote.RemoteStatus,
				Amount:        remote.Amount,
				Reason:        domain.AnomalyConflict,
				ReceivedAt:    time.Now(),
			})
			uc.recordWebhookAnomalyMetrics(domain.AnomalyConflict)
			uc.recordReconciliationConflictMetrics(source)
			slog.Error("terminal signal disagrees with stored outcome",
				"order_id", orderID, "gateway_status", remote.RemoteStatus, "source", source)
			return nil, fmt.Errorf("%w: order %s already settled differently than gateway status %s",
				domain.ErrReconciliationConflict, orderID, remote.RemoteStatus)
		}
		return nil, err
	}

	uc.recordOrderSettledMetrics(updated, source)

	uc.publishOrderEvent(kafka.OrderEvent{
		OrderID:    updated.ID,
		Status:     string(updated.Status),
		AmountFiat: updated.AmountFiat,
		Currency:   updated.Currency,
		CustomerID: updated.Customer.CustomerID,
		Source:     source,
		OccurredAt: time.Now(),
	})

	return updated, nil
}

func (uc *DefaultOrderUsecase) journalAnomaly(ctx context.Context, anomaly *domain.WebhookAnomaly) {
	if uc.AnomalyRepo == nil {
		return
	}
	if err := uc.AnomalyRepo.LogAnomaly(ctx, anomaly); err != nil {
		slog.Error("failed to journal anomaly",
			"order_id", anomaly.OrderID, "reason", string(anomaly.Reason), "error", err.Error())
	}
}
