package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/kartghar/payment-order-service/internal/delivery/http/dto/order/request"
	"github.com/kartghar/payment-order-service/internal/delivery/http/dto/order/response"
	"github.com/kartghar/payment-order-service/internal/domain"
	orderdto "github.com/kartghar/payment-order-service/internal/usecase/dto/order"
	usecase "github.com/kartghar/payment-order-service/internal/usecase/order"
)

type WebhookHandler struct {
	uc usecase.OrderUsecase
}

func NewWebhookHandler(uc usecase.OrderUsecase) *WebhookHandler {
	return &WebhookHandler{uc: uc}
}

// HandlePayment accepts the gateway's payment notification. Gateways retry
// on non-2xx, so once a payload parses it is always acknowledged with 200;
// reconciliation problems are journaled and logged, never surfaced as
// transport failures. Only an undecodable body gets a 400.
func (h *WebhookHandler) HandlePayment(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, response.WebhookAckResponse{Success: false})
		return
	}

	var payload request.PaymentWebhookRequest
	if err := json.Unmarshal(body, &payload); err != nil || payload.Data == nil {
		slog.Warn("undecodable payment webhook", "error", errString(err))
		writeJSON(w, http.StatusBadRequest, response.WebhookAckResponse{Success: false})
		return
	}

	event := &orderdto.WebhookEventInput{
		OrderID:       payload.Data.Order.OrderID,
		GatewayStatus: payload.Data.Order.OrderStatus,
		Amount:        payload.Data.Order.PaymentAmount,
		RawPayload:    string(body),
	}

	if err := h.uc.HandleWebhook(r.Context(), event); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			// Durably recorded as an anomaly; still ACK to stop retries.
			slog.Warn("malformed payment webhook acknowledged",
				"order_id", event.OrderID, "error", err.Error())
			writeJSON(w, http.StatusOK, response.WebhookAckResponse{Success: true})
			return
		}
		slog.Error("webhook processing failed",
			"order_id", event.OrderID, "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, response.WebhookAckResponse{Success: false})
		return
	}

	writeJSON(w, http.StatusOK, response.WebhookAckResponse{Success: true})
}

func errString(err error) string {
	if err == nil {
		return "missing data object"
	}
	return err.Error()
}
