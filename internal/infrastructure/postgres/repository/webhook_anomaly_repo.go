package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kartghar/payment-order-service/internal/domain"
	"github.com/kartghar/payment-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultWebhookAnomalyRepository struct {
	DB *gorm.DB
}

func NewDefaultWebhookAnomalyRepository(db *gorm.DB) *DefaultWebhookAnomalyRepository {
	return &DefaultWebhookAnomalyRepository{DB: db}
}

func (r *DefaultWebhookAnomalyRepository) LogAnomaly(ctx context.Context, anomaly *domain.WebhookAnomaly) error {
	if anomaly.ID == "" {
		anomaly.ID = uuid.New().String()
	}
	payload := anomaly.Payload
	if payload == "" {
		payload = "{}"
	}
	model := models.WebhookAnomalyModel{
		ID:            anomaly.ID,
		OrderID:       anomaly.OrderID,
		GatewayStatus: anomaly.GatewayStatus,
		Amount:        anomaly.Amount,
		Reason:        string(anomaly.Reason),
		Payload:       payload,
		ReceivedAt:    anomaly.ReceivedAt,
	}
	return r.DB.WithContext(ctx).Create(&model).Error
}

// GetAnomalies is an operator-facing query, paginated newest first.
func (r *DefaultWebhookAnomalyRepository) GetAnomalies(ctx context.Context, reason string, page, limit int32) ([]*domain.WebhookAnomaly, int64, error) {
	query := r.DB.WithContext(ctx).Model(&models.WebhookAnomalyModel{})
	if reason != "" {
		query = query.Where("reason = ?", reason)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 50
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	var anomalyModels []models.WebhookAnomalyModel
	if err := query.
		Order("received_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&anomalyModels).Error; err != nil {
		return nil, 0, err
	}

	anomalies := make([]*domain.WebhookAnomaly, len(anomalyModels))
	for i, model := range anomalyModels {
		anomalies[i] = &domain.WebhookAnomaly{
			ID:            model.ID,
			OrderID:       model.OrderID,
			GatewayStatus: model.GatewayStatus,
			Amount:        model.Amount,
			Reason:        domain.AnomalyReason(model.Reason),
			Payload:       model.Payload,
			ReceivedAt:    model.ReceivedAt,
		}
	}

	return anomalies, total, nil
}
