package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/kartghar/payment-order-service/internal/domain"
	orderdto "github.com/kartghar/payment-order-service/internal/usecase/dto/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryOrderRepo implements the same compare-and-set contract as the
// postgres repository, so racing reconciliations can be exercised in-process.
type memoryOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
}

func newMemoryOrderRepo() *memoryOrderRepo {
	return &memoryOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *memoryOrderRepo) CreateOrder(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.ID]; ok {
		return domain.ErrDuplicateOrderID
	}
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

func (r *memoryOrderRepo) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

func (r *memoryOrderRepo) UpdateOrderStatus(ctx context.Context, orderID string, newStatus domain.PaymentStatus) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	if order.Status != domain.StatusPending && order.Status != newStatus {
		return nil, domain.ErrInvalidTransition
	}
	order.Status = newStatus
	copied := *order
	return &copied, nil
}

func (r *memoryOrderRepo) SetPaymentSession(ctx context.Context, orderID, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.PaymentSessionID = sessionID
	return nil
}

func seedPendingOrder(t *testing.T, repo *memoryOrderRepo, orderID string) {
	t.Helper()
	require.NoError(t, repo.CreateOrder(context.Background(), &domain.Order{
		ID:         orderID,
		AmountFiat: 500,
		Currency:   "INR",
		Status:     domain.StatusPending,
	}))
}

func TestRepeatedTerminalUpdateIsIdempotent(t *testing.T) {
	repo := newMemoryOrderRepo()
	seedPendingOrder(t, repo, "KG_1")
	uc := newTestUsecase(repo, &mockGateway{}, &mockAnomalyRepo{})

	event := &orderdto.WebhookEventInput{
		OrderID:       "KG_1",
		GatewayStatus: domain.GatewayStatusPaid,
		Amount:        500,
	}

	require.NoError(t, uc.HandleWebhook(context.Background(), event))
	require.NoError(t, uc.HandleWebhook(context.Background(), event))

	order, err := repo.GetOrderByID(context.Background(), "KG_1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, order.Status)
}

func TestRacingVerifyAndWebhookSameOutcome(t *testing.T) {
	repo := newMemoryOrderRepo()
	seedPendingOrder(t, repo, "KG_1")
	gw := &mockGateway{
		fetchStatusFn: func(ctx context.Context, orderID string) (*domain.GatewayOrderStatus, error) {
			return &domain.GatewayOrderStatus{OrderID: orderID, RemoteStatus: domain.GatewayStatusPaid, Amount: 500}, nil
		},
	}
	anomalies := &mockAnomalyRepo{}
	uc := newTestUsecase(repo, gw, anomalies)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := uc.VerifyOrder(context.Background(), "KG_1")
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			err := uc.HandleWebhook(context.Background(), &orderdto.WebhookEventInput{
				OrderID:       "KG_1",
				GatewayStatus: domain.GatewayStatusPaid,
				Amount:        500,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	order, err := repo.GetOrderByID(context.Background(), "KG_1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, order.Status)
	assert.Equal(t, 0, anomalies.count(), "agreeing signals must not produce conflicts")
}

func TestTerminalStatusNeverFlips(t *testing.T) {
	repo := newMemoryOrderRepo()
	seedPendingOrder(t, repo, "KG_1")
	anomalies := &mockAnomalyRepo{}
	uc := newTestUsecase(repo, &mockGateway{}, anomalies)

	require.NoError(t, uc.HandleWebhook(context.Background(), &orderdto.WebhookEventInput{
		OrderID:       "KG_1",
		GatewayStatus: domain.GatewayStatusPaid,
	}))

	// The contradicting signal is acknowledged but journaled, and the
	// stored outcome stays untouched.
	require.NoError(t, uc.HandleWebhook(context.Background(), &orderdto.WebhookEventInput{
		OrderID:       "KG_1",
		GatewayStatus: domain.GatewayStatusFailed,
	}))

	order, err := repo.GetOrderByID(context.Background(), "KG_1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, order.Status)
	require.Equal(t, 1, anomalies.count())
	assert.Equal(t, domain.AnomalyConflict, anomalies.anomalies[0].Reason)
}
