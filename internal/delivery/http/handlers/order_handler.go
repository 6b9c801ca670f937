package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kartghar/payment-order-service/internal/delivery/http/dto/order/request"
	"github.com/kartghar/payment-order-service/internal/delivery/http/dto/order/response"
	"github.com/kartghar/payment-order-service/internal/domain"
	orderdto "github.com/kartghar/payment-order-service/internal/usecase/dto/order"
	usecase "github.com/kartghar/payment-order-service/internal/usecase/order"
)

type OrderHandler struct {
	uc usecase.OrderUsecase
}

func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req request.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount, err := req.Amount.Float64()
	if err != nil {
		writeError(w, http.StatusBadRequest, "amount must be a number")
		return
	}

	input := toCreateOrderInput(&req, amount)
	out, err := h.uc.CreateOrder(r.Context(), input)
	if err != nil {
		writeOrderError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, response.CreateOrderResponse{
		OrderID:          out.OrderID,
		PaymentSessionID: out.PaymentSessionID,
	})
}

func (h *OrderHandler) OrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	out, err := h.uc.VerifyOrder(r.Context(), orderID)
	if err != nil {
		writeOrderError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response.OrderStatusResponse{
		OrderID: out.OrderID,
		Status:  string(out.Status),
		Settled: out.Settled,
	})
}

func toCreateOrderInput(req *request.CreateOrderRequest, amount float64) *orderdto.CreateOrderInput {
	items := make([]orderdto.LineItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = orderdto.LineItemInput{
			SKU:      item.SKU,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	return &orderdto.CreateOrderInput{
		Amount:   amount,
		Currency: req.Currency,
		Customer: orderdto.CustomerInput{
			CustomerID: req.Customer.CustomerID,
			Name:       req.Customer.Name,
			Email:      req.Customer.Email,
			Phone:      req.Customer.Phone,
		},
		Items: items,
	}
}

func writeOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, "order not found")
	case errors.Is(err, domain.ErrReconciliationConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrGatewayUnavailable),
		errors.Is(err, domain.ErrGatewayRejected),
		errors.Is(err, domain.ErrGatewayFault):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, response.ErrorResponse{Error: msg})
}
