package cashfree

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kartghar/payment-order-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:      baseURL,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		APIVersion:   "2023-08-01",
		ClientURL:    "https://shop.example.com",
		NotifyURL:    "https://api.example.com/webhooks/payment",
	}
}

func sessionRequest() *domain.SessionRequest {
	return &domain.SessionRequest{
		OrderID:  "KG_1",
		Amount:   750.5,
		Currency: "INR",
		Customer: domain.Customer{
			CustomerID: "guest_abc",
			Name:       "A",
			Email:      "a@x.com",
			Phone:      "9999999999",
		},
	}
}

func TestCreateSessionRequestShape(t *testing.T) {
	var gotHeaders http.Header
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]string{
			"payment_session_id": "session_abc",
			"order_status":       domain.GatewayStatusActive,
		})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	resp, err := client.CreateSession(context.Background(), sessionRequest())
	require.NoError(t, err)
	assert.Equal(t, "session_abc", resp.PaymentSessionID)

	assert.Equal(t, "client-id", gotHeaders.Get("x-client-id"))
	assert.Equal(t, "client-secret", gotHeaders.Get("x-client-secret"))
	assert.Equal(t, "2023-08-01", gotHeaders.Get("x-api-version"))
	assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))

	assert.Equal(t, "KG_1", gotBody["order_id"])
	assert.Equal(t, "750.50", gotBody["order_amount"], "amount goes over the wire as a fixed-point string")
	assert.Equal(t, "INR", gotBody["order_currency"])

	customer, ok := gotBody["customer_details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "guest_abc", customer["customer_id"])
	assert.Equal(t, "9999999999", customer["customer_phone"])

	meta, ok := gotBody["order_meta"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://shop.example.com/payment-status?order_id=KG_1", meta["return_url"])
	assert.Equal(t, "https://api.example.com/webhooks/payment", meta["notify_url"])
}

func TestCreateSessionMissingSessionID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"order_status": domain.GatewayStatusActive})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.CreateSession(context.Background(), sessionRequest())
	assert.ErrorIs(t, err, domain.ErrGatewayFault)
}

func TestFetchStatusSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/orders/KG_1", r.URL.Path)
		assert.Equal(t, "client-id", r.Header.Get("x-client-id"))
		json.NewEncoder(w).Encode(map[string]any{
			"order_id":     "KG_1",
			"order_status": domain.GatewayStatusPaid,
			"order_amount": 750.5,
		})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	status, err := client.FetchStatus(context.Background(), "KG_1")
	require.NoError(t, err)
	assert.Equal(t, "KG_1", status.OrderID)
	assert.Equal(t, domain.GatewayStatusPaid, status.RemoteStatus)
	assert.Equal(t, 750.5, status.Amount)
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantErr    error
	}{
		{"bad credentials", http.StatusUnauthorized, `{"message": "authentication failed", "code": "auth_error"}`, domain.ErrGatewayRejected},
		{"unknown order", http.StatusNotFound, `{"message": "order not found"}`, domain.ErrGatewayRejected},
		{"server error", http.StatusInternalServerError, ``, domain.ErrGatewayFault},
		{"bad gateway", http.StatusBadGateway, `upstream down`, domain.ErrGatewayFault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(testConfig(srv.URL))

			_, err := client.FetchStatus(context.Background(), "KG_1")
			assert.ErrorIs(t, err, tt.wantErr)

			_, err = client.CreateSession(context.Background(), sessionRequest())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.FetchStatus(context.Background(), "KG_1")
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
}

func TestTimeoutIsUnavailable(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer srv.Close()
	defer close(blocked)

	cfg := testConfig(srv.URL)
	cfg.Timeout = 50 * time.Millisecond
	client := NewClient(cfg)

	_, err := client.FetchStatus(context.Background(), "KG_1")
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
}

func TestUndecodableSuccessBodyIsFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.FetchStatus(context.Background(), "KG_1")
	assert.ErrorIs(t, err, domain.ErrGatewayFault)
}
