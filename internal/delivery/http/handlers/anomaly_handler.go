package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/kartghar/payment-order-service/internal/delivery/http/dto/order/response"
	"github.com/kartghar/payment-order-service/internal/infrastructure/postgres/repository"
)

// AnomalyHandler exposes the webhook anomaly journal to operators.
type AnomalyHandler struct {
	repo *repository.DefaultWebhookAnomalyRepository
}

func NewAnomalyHandler(repo *repository.DefaultWebhookAnomalyRepository) *AnomalyHandler {
	return &AnomalyHandler{repo: repo}
}

func (h *AnomalyHandler) ListAnomalies(w http.ResponseWriter, r *http.Request) {
	reason := r.URL.Query().Get("reason")
	page := queryInt32(r, "page", 1)
	limit := queryInt32(r, "limit", 50)

	anomalies, total, err := h.repo.GetAnomalies(r.Context(), reason, page, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	resp := response.AnomalyListResponse{
		Anomalies: make([]response.Anomaly, len(anomalies)),
		Total:     total,
	}
	for i, anomaly := range anomalies {
		resp.Anomalies[i] = response.Anomaly{
			ID:            anomaly.ID,
			OrderID:       anomaly.OrderID,
			GatewayStatus: anomaly.GatewayStatus,
			Amount:        anomaly.Amount,
			Reason:        string(anomaly.Reason),
			ReceivedAt:    anomaly.ReceivedAt.Format(time.RFC3339),
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func queryInt32(r *http.Request, key string, def int32) int32 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return def
	}
	return int32(v)
}
