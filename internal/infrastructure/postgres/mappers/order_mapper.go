package mappers

import (
	"encoding/json"
	"log/slog"

	"github.com/kartghar/payment-order-service/internal/domain"
	"github.com/kartghar/payment-order-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	var items []domain.LineItem
	if model.ItemsJSON != "" {
		if err := json.Unmarshal([]byte(model.ItemsJSON), &items); err != nil {
			slog.Error("failed to decode stored line items", "order_id", model.ID, "error", err.Error())
		}
	}

	return &domain.Order{
		ID:         model.ID,
		Items:      items,
		AmountFiat: model.AmountFiat,
		Currency:   model.Currency,
		Customer: domain.Customer{
			CustomerID: model.CustomerID,
			Name:       model.CustomerName,
			Email:      model.CustomerEmail,
			Phone:      model.CustomerPhone,
		},
		Status:           model.Status,
		PaymentSessionID: model.PaymentSessionID,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	itemsJSON := "[]"
	if len(order.Items) > 0 {
		if raw, err := json.Marshal(order.Items); err == nil {
			itemsJSON = string(raw)
		}
	}

	return &models.OrderModel{
		ID:               order.ID,
		AmountFiat:       order.AmountFiat,
		Currency:         order.Currency,
		CustomerID:       order.Customer.CustomerID,
		CustomerName:     order.Customer.Name,
		CustomerEmail:    order.Customer.Email,
		CustomerPhone:    order.Customer.Phone,
		ItemsJSON:        itemsJSON,
		Status:           order.Status,
		PaymentSessionID: order.PaymentSessionID,
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}
}
