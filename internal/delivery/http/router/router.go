package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/kartghar/payment-order-service/internal/delivery/http/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	orderH *handlers.OrderHandler,
	webhookH *handlers.WebhookHandler,
	anomalyH *handlers.AnomalyHandler,
) chi.Router {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)

	r.Post("/orders", orderH.CreateOrder)
	r.Get("/orders/{orderID}/status", orderH.OrderStatus)
	r.Post("/orders/{orderID}/status", orderH.OrderStatus)

	r.Post("/webhooks/payment", webhookH.HandlePayment)

	if anomalyH != nil {
		r.Get("/internal/webhook-anomalies", anomalyH.ListAnomalies)
	}

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r
}
