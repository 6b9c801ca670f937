package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/kartghar/payment-order-service/internal/domain"
	orderdto "github.com/kartghar/payment-order-service/internal/usecase/dto/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const paidWebhookBody = `{
	"data": {
		"order": {
			"order_id": "KG_1",
			"order_status": "PAID",
			"payment_amount": 500
		}
	}
}`

func TestWebhookHandlerSuccess(t *testing.T) {
	var captured *orderdto.WebhookEventInput
	uc := &mockUsecase{
		handleWebhookFn: func(ctx context.Context, event *orderdto.WebhookEventInput) error {
			captured = event
			return nil
		},
	}
	srv := newTestServer(uc)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/webhooks/payment", "application/json", strings.NewReader(paidWebhookBody))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var ack struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ack))
	assert.True(t, ack.Success)

	require.NotNil(t, captured)
	assert.Equal(t, "KG_1", captured.OrderID)
	assert.Equal(t, "PAID", captured.GatewayStatus)
	assert.Equal(t, 500.0, captured.Amount)
	assert.JSONEq(t, paidWebhookBody, captured.RawPayload)
}

func TestWebhookHandlerUndecodableBody(t *testing.T) {
	uc := &mockUsecase{
		handleWebhookFn: func(ctx context.Context, event *orderdto.WebhookEventInput) error {
			t.Error("usecase must not be reached for an undecodable body")
			return nil
		},
	}
	srv := newTestServer(uc)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/webhooks/payment", "application/json", strings.NewReader("{broken"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWebhookHandlerMissingDataObject(t *testing.T) {
	uc := &mockUsecase{
		handleWebhookFn: func(ctx context.Context, event *orderdto.WebhookEventInput) error {
			t.Error("usecase must not be reached without a data object")
			return nil
		},
	}
	srv := newTestServer(uc)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/webhooks/payment", "application/json", strings.NewReader(`{"type": "PING"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWebhookHandlerMalformedEventStillAcked(t *testing.T) {
	uc := &mockUsecase{
		handleWebhookFn: func(ctx context.Context, event *orderdto.WebhookEventInput) error {
			return fmt.Errorf("%w: webhook missing order id", domain.ErrValidation)
		},
	}
	srv := newTestServer(uc)
	defer srv.Close()

	body := `{"data": {"order": {"order_status": "PAID"}}}`
	resp, err := http.Post(srv.URL+"/webhooks/payment", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var ack struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ack))
	assert.True(t, ack.Success)
}

func TestWebhookHandlerInternalError(t *testing.T) {
	uc := &mockUsecase{
		handleWebhookFn: func(ctx context.Context, event *orderdto.WebhookEventInput) error {
			return fmt.Errorf("update failed")
		},
	}
	srv := newTestServer(uc)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/webhooks/payment", "application/json", strings.NewReader(paidWebhookBody))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
