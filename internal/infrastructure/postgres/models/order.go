package models

import (
	"time"

	"github.com/kartghar/payment-order-service/internal/domain"
)

type OrderModel struct {
	ID               string `gorm:"primaryKey"`
	AmountFiat       float64
	Currency         string
	CustomerID       string
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	ItemsJSON        string               `gorm:"type:jsonb"`
	Status           domain.PaymentStatus `gorm:"index:idx_status"`
	PaymentSessionID string
	CreatedAt        time.Time `gorm:"index:idx_created_at"`
	UpdatedAt        time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}
