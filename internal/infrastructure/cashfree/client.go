package cashfree

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kartghar/payment-order-service/internal/domain"
)

const defaultTimeout = 10 * time.Second

// Config carries credentials and endpoints for the Cashfree PG API.
// It is passed to NewClient explicitly; nothing here is process-global.
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	APIVersion   string
	Timeout      time.Duration
	// ClientURL is the storefront base for the post-payment return page.
	ClientURL string
	// NotifyURL is the public URL of our payment webhook endpoint.
	NotifyURL string
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2023-08-01"
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type customerDetails struct {
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerPhone string `json:"customer_phone"`
}

type orderMeta struct {
	ReturnURL string `json:"return_url"`
	NotifyURL string `json:"notify_url"`
}

type createOrderRequest struct {
	OrderID         string          `json:"order_id"`
	OrderAmount     string          `json:"order_amount"`
	OrderCurrency   string          `json:"order_currency"`
	CustomerDetails customerDetails `json:"customer_details"`
	OrderMeta       orderMeta       `json:"order_meta"`
}

type createOrderResponse struct {
	PaymentSessionID string `json:"payment_session_id"`
	OrderStatus      string `json:"order_status"`
}

type orderStatusResponse struct {
	OrderID     string  `json:"order_id"`
	OrderStatus string  `json:"order_status"`
	OrderAmount float64 `json:"order_amount"`
}

type errorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (c *Client) CreateSession(ctx context.Context, req *domain.SessionRequest) (*domain.SessionResponse, error) {
	payload := createOrderRequest{
		OrderID:       req.OrderID,
		OrderAmount:   fmt.Sprintf("%.2f", req.Amount),
		OrderCurrency: req.Currency,
		CustomerDetails: customerDetails{
			CustomerID:    req.Customer.CustomerID,
			CustomerName:  req.Customer.Name,
			CustomerEmail: req.Customer.Email,
			CustomerPhone: req.Customer.Phone,
		},
		OrderMeta: orderMeta{
			ReturnURL: fmt.Sprintf("%s/payment-status?order_id=%s", c.cfg.ClientURL, req.OrderID),
			NotifyURL: c.cfg.NotifyURL,
		},
	}

	body, err := c.do(ctx, http.MethodPost, fmt.Sprintf("%s/orders", c.cfg.BaseURL), payload)
	if err != nil {
		return nil, err
	}

	var resp createOrderResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: undecodable create-order response: %v", domain.ErrGatewayFault, err)
	}
	if resp.PaymentSessionID == "" {
		return nil, fmt.Errorf("%w: create-order response missing payment_session_id", domain.ErrGatewayFault)
	}

	return &domain.SessionResponse{PaymentSessionID: resp.PaymentSessionID}, nil
}

func (c *Client) FetchStatus(ctx context.Context, orderID string) (*domain.GatewayOrderStatus, error) {
	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/orders/%s", c.cfg.BaseURL, orderID), nil)
	if err != nil {
		return nil, err
	}

	var resp orderStatusResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: undecodable order-status response: %v", domain.ErrGatewayFault, err)
	}
	if resp.OrderStatus == "" {
		return nil, fmt.Errorf("%w: order-status response missing order_status", domain.ErrGatewayFault)
	}

	return &domain.GatewayOrderStatus{
		OrderID:      resp.OrderID,
		RemoteStatus: resp.OrderStatus,
		Amount:       resp.OrderAmount,
	}, nil
}

func (c *Client) do(ctx context.Context, method, url string, payload any) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	var bodyReader io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-version", c.cfg.APIVersion)
	req.Header.Set("x-client-id", c.cfg.ClientID)
	req.Header.Set("x-client-secret", c.cfg.ClientSecret)

	response, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts and transport failures are retryable for the caller
		// and must never be read as a payment outcome.
		return nil, fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}
	defer response.Body.Close()

	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrGatewayFault, err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBodyBytes, nil
	}

	var errResp errorResponse
	_ = json.Unmarshal(responseBodyBytes, &errResp)
	msg := errResp.Message
	if msg == "" {
		msg = http.StatusText(response.StatusCode)
	}

	if response.StatusCode >= 400 && response.StatusCode < 500 {
		return nil, fmt.Errorf("%w: %d %s", domain.ErrGatewayRejected, response.StatusCode, msg)
	}
	return nil, fmt.Errorf("%w: %d %s", domain.ErrGatewayFault, response.StatusCode, msg)
}
