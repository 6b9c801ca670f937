package domain

import (
	"context"
	"time"
)

type AnomalyReason string

const (
	AnomalyUnknownOrder AnomalyReason = "unknown_order"
	AnomalyConflict     AnomalyReason = "conflict"
	AnomalyMalformed    AnomalyReason = "malformed"
)

// WebhookAnomaly journals external signals that could not be applied to an
// order, such as webhooks for orders this instance never created or terminal
// signals that disagree with the stored outcome. Operators read this log;
// the request flow only ever appends to it.
type WebhookAnomaly struct {
	ID            string
	OrderID       string
	GatewayStatus string
	Amount        float64
	Reason        AnomalyReason
	Payload       string
	ReceivedAt    time.Time
}

type WebhookAnomalyRepository interface {
	LogAnomaly(ctx context.Context, anomaly *WebhookAnomaly) error
}
