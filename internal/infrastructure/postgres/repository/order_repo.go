package repository

import (
	"context"
	"errors"

	"github.com/kartghar/payment-order-service/internal/domain"
	"github.com/kartghar/payment-order-service/internal/infrastructure/postgres/mappers"
	"github.com/kartghar/payment-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	orderModel := mappers.ToGORMOrder(order)
	if err := r.DB.WithContext(ctx).Create(orderModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateOrderID
		}
		return err
	}
	return nil
}

func (r *DefaultOrderRepository) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	var orderModel models.OrderModel
	if err := r.DB.WithContext(ctx).First(&orderModel, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	return mappers.ToDomainOrder(&orderModel), nil
}

// UpdateOrderStatus performs the transition as one guarded UPDATE. The WHERE
// clause admits only non-terminal rows or rows already carrying newStatus, so
// two racing reconciliations (client poll vs gateway webhook) settle on the
// row lock and a stale signal can never overwrite a terminal outcome.
func (r *DefaultOrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, newStatus domain.PaymentStatus) (*domain.Order, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Where("status IN ?", []domain.PaymentStatus{domain.StatusPending, newStatus}).
		Update("status", newStatus)
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		// Either the order does not exist or it is terminal with a
		// different outcome. Distinguish the two for the caller.
		var current models.OrderModel
		if err := r.DB.WithContext(ctx).First(&current, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrOrderNotFound
			}
			return nil, err
		}
		return nil, domain.ErrInvalidTransition
	}

	return r.GetOrderByID(ctx, orderID)
}

func (r *DefaultOrderRepository) SetPaymentSession(ctx context.Context, orderID, sessionID string) error {
	res := r.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Update("payment_session_id", sessionID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}
