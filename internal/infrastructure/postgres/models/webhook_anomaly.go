package models

import "time"

// WebhookAnomalyModel journals gateway signals that could not be applied.
type WebhookAnomalyModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	OrderID       string `gorm:"index"`
	GatewayStatus string
	Amount        float64
	Reason        string `gorm:"index"`
	Payload       string `gorm:"type:jsonb"`
	ReceivedAt    time.Time
}

func (WebhookAnomalyModel) TableName() string {
	return "webhook_anomalies"
}
