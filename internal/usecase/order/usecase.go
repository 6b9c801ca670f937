package usecase

import (
	"context"

	"github.com/kartghar/payment-order-service/internal/domain"
	"github.com/kartghar/payment-order-service/internal/infrastructure/kafka"
	"github.com/kartghar/payment-order-service/internal/infrastructure/metrics"
	orderdto "github.com/kartghar/payment-order-service/internal/usecase/dto/order"
)

type OrderUsecase interface {
	CreateOrder(ctx context.Context, input *orderdto.CreateOrderInput) (*orderdto.CreateOrderOutput, error)
	VerifyOrder(ctx context.Context, orderID string) (*orderdto.OrderStatusOutput, error)
	HandleWebhook(ctx context.Context, event *orderdto.WebhookEventInput) error
}

type OrderEventPublisher interface {
	PublishOrder(event kafka.OrderEvent) error
}

// PaymentPolicy is the validation strictness of the creation path.
// RequireCustomerEmail resolves the strict/lenient storefront split.
type PaymentPolicy struct {
	Currency             string
	RequireCustomerEmail bool
}

type DefaultOrderUsecase struct {
	OrderRepo   domain.OrderRepository
	Gateway     domain.PaymentGateway
	AnomalyRepo domain.WebhookAnomalyRepository
	Publisher   OrderEventPublisher
	Metrics     *metrics.OrderMetrics
	Policy      PaymentPolicy
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	gateway domain.PaymentGateway,
	anomalyRepo domain.WebhookAnomalyRepository,
	publisher OrderEventPublisher,
	orderMetrics *metrics.OrderMetrics,
	policy PaymentPolicy) *DefaultOrderUsecase {

	if policy.Currency == "" {
		policy.Currency = "INR"
	}

	return &DefaultOrderUsecase{
		OrderRepo:   orderRepo,
		Gateway:     gateway,
		AnomalyRepo: anomalyRepo,
		Publisher:   publisher,
		Metrics:     orderMetrics,
		Policy:      policy,
	}
}
