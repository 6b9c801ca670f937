package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics holds every metric of the order lifecycle.
type OrderMetrics struct {
	OrdersCreatedTotal      prometheus.CounterVec
	OrderAmountCreatedTotal prometheus.CounterVec
	OrdersSettledTotal      prometheus.CounterVec
	OrdersPendingCount      prometheus.GaugeVec

	GatewayRequestDuration prometheus.HistogramVec
	GatewayErrorsTotal     prometheus.CounterVec

	WebhookEventsTotal           prometheus.CounterVec
	WebhookAnomaliesTotal        prometheus.CounterVec
	ReconciliationConflictsTotal prometheus.CounterVec
}

func NewOrderMetrics() *OrderMetrics {
	return &OrderMetrics{
		OrdersCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Total number of orders created",
			},
			[]string{"currency"},
		),

		OrderAmountCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_amount_created_total",
				Help: "Total fiat amount of created orders",
			},
			[]string{"currency"},
		),

		OrdersSettledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_settled_total",
				Help: "Orders moved to a terminal status, by status and signal source",
			},
			[]string{"status", "source"},
		),

		OrdersPendingCount: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "orders_pending_count",
				Help: "Current number of orders awaiting a payment outcome",
			},
			[]string{"currency"},
		),

		GatewayRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gateway_request_duration_seconds",
				Help:    "Duration of outbound payment gateway calls",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
			},
			[]string{"call"},
		),

		GatewayErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_errors_total",
				Help: "Failed outbound gateway calls, by call and failure kind",
			},
			[]string{"call", "kind"},
		),

		WebhookEventsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webhook_events_total",
				Help: "Webhook deliveries received, by gateway status",
			},
			[]string{"status"},
		),

		WebhookAnomaliesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webhook_anomalies_total",
				Help: "Webhook deliveries journaled as anomalies, by reason",
			},
			[]string{"reason"},
		),

		ReconciliationConflictsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reconciliation_conflicts_total",
				Help: "Terminal signals that disagreed with the stored outcome",
			},
			[]string{"source"},
		),
	}
}

func (m *OrderMetrics) RecordOrderCreated(currency string, amountFiat float64) {
	m.OrdersCreatedTotal.WithLabelValues(currency).Inc()
	m.OrderAmountCreatedTotal.WithLabelValues(currency).Add(amountFiat)
	m.OrdersPendingCount.WithLabelValues(currency).Inc()
}

func (m *OrderMetrics) RecordOrderSettled(status, source, currency string) {
	m.OrdersSettledTotal.WithLabelValues(status, source).Inc()
	m.OrdersPendingCount.WithLabelValues(currency).Dec()
}

func (m *OrderMetrics) RecordGatewayRequestDuration(call string, durationSeconds float64) {
	m.GatewayRequestDuration.WithLabelValues(call).Observe(durationSeconds)
}

func (m *OrderMetrics) RecordGatewayError(call, kind string) {
	m.GatewayErrorsTotal.WithLabelValues(call, kind).Inc()
}

func (m *OrderMetrics) RecordWebhookEvent(status string) {
	m.WebhookEventsTotal.WithLabelValues(status).Inc()
}

func (m *OrderMetrics) RecordWebhookAnomaly(reason string) {
	m.WebhookAnomaliesTotal.WithLabelValues(reason).Inc()
}

func (m *OrderMetrics) RecordReconciliationConflict(source string) {
	m.ReconciliationConflictsTotal.WithLabelValues(source).Inc()
}
