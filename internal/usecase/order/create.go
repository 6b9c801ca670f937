package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/kartghar/payment-order-service/internal/domain"
	"github.com/kartghar/payment-order-service/internal/infrastructure/kafka"
	orderdto "github.com/kartghar/payment-order-service/internal/usecase/dto/order"
)

// orderIDPrefix is the fixed namespace tag shared with the gateway.
const orderIDPrefix = "KG_"

// CreateOrder validates the request, durably records a PENDING order and
// then asks the gateway for a checkout session. The store write comes
// first: a gateway session with no local trace is recoverable, a charge
// with no local record is not. A gateway failure leaves the PENDING row
// behind for operational retry.
func (uc *DefaultOrderUsecase) CreateOrder(ctx context.Context, input *orderdto.CreateOrderInput) (*orderdto.CreateOrderOutput, error) {
	if err := uc.validateCreateOrder(input); err != nil {
		return nil, err
	}

	orderID := orderIDPrefix + uuid.New().String()

	customerID := input.Customer.CustomerID
	if customerID == "" {
		customerID = newGuestCustomerID()
	}

	currency := input.Currency
	if currency == "" {
		currency = uc.Policy.Currency
	}

	items := make([]domain.LineItem, len(input.Items))
	for i, item := range input.Items {
		items[i] = domain.LineItem{
			SKU:      item.SKU,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	order := &domain.Order{
		ID:         orderID,
		Items:      items,
		AmountFiat: input.Amount,
		Currency:   currency,
		Customer: domain.Customer{
			CustomerID: customerID,
			Name:       input.Customer.Name,
			Email:      input.Customer.Email,
			Phone:      input.Customer.Phone,
		},
		Status:    domain.StatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uc.OrderRepo.CreateOrder(ctx, order); err != nil {
		// A duplicate on a freshly generated uuid is a generation bug,
		// not something to retry around.
		if errors.Is(err, domain.ErrDuplicateOrderID) {
			return nil, fmt.Errorf("order id collision on %s: %w", orderID, err)
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	uc.recordOrderCreatedMetrics(order)

	start := time.Now()
	session, err := uc.Gateway.CreateSession(ctx, &domain.SessionRequest{
		OrderID:  orderID,
		Amount:   order.AmountFiat,
		Currency: order.Currency,
		Customer: order.Customer,
	})
	uc.recordGatewayCallMetrics("create_session", time.Since(start), err)
	if err != nil {
		slog.Error("gateway create-session failed, order stays PENDING",
			"order_id", orderID, "error", err.Error())
		return nil, err
	}

	if err := uc.OrderRepo.SetPaymentSession(ctx, orderID, session.PaymentSessionID); err != nil {
		slog.Error("failed to store payment session id",
			"order_id", orderID, "error", err.Error())
	}

	uc.publishOrderEvent(kafka.OrderEvent{
		OrderID:    order.ID,
		Status:     string(domain.StatusPending),
		AmountFiat: order.AmountFiat,
		Currency:   order.Currency,
		CustomerID: order.Customer.CustomerID,
		Source:     "create",
		OccurredAt: time.Now(),
	})

	return &orderdto.CreateOrderOutput{
		OrderID:          orderID,
		PaymentSessionID: session.PaymentSessionID,
	}, nil
}

func (uc *DefaultOrderUsecase) validateCreateOrder(input *orderdto.CreateOrderInput) error {
	if input == nil {
		return fmt.Errorf("%w: empty request", domain.ErrValidation)
	}
	if math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) || input.Amount <= 0 {
		return fmt.Errorf("%w: amount must be a positive number", domain.ErrValidation)
	}
	if input.Customer.Name == "" || input.Customer.Phone == "" {
		return fmt.Errorf("%w: customer name and phone are required", domain.ErrValidation)
	}
	if uc.Policy.RequireCustomerEmail && input.Customer.Email == "" {
		return fmt.Errorf("%w: customer email is required", domain.ErrValidation)
	}
	return nil
}

func newGuestCustomerID() string {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		// nanoid.Standard only fails on an invalid length constant
		return "guest_" + uuid.New().String()
	}
	return "guest_" + idGenerator()
}
