package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/coffeeshop/coffee-system/order-service/application"
	"github.com/coffeeshop/coffee-system/order-service/domain"
	"github.com/coffeeshop/coffee-system/shared/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// OrderHandlers contains order HTTP handlers
type OrderHandlers struct {
	orchestrator *application.OrderOrchestrator
	logger       *zap.Logger
}

// NewOrderHandlers creates new order handlers
func NewOrderHandlers(orchestrator *application.OrderOrchestrator, logger *zap.Logger) *OrderHandlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderHandlers{
		orchestrator: orchestrator,
		logger:       logger,
	}
}

// PlaceOrder handles coffee orders
func (h *OrderHandlers) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse(models.ErrorCodeBadRequest, "Invalid request body"))
		return
	}

	status, err := h.orchestrator.PlaceOrder(r.Context(), order)
	if err != nil {
		h.logger.Error("order failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse(models.ErrorCodeInternalServerError, "Order could not be processed"))
		return
	}

	code := statusCode(status)
	if code != http.StatusOK {
		h.logger.Warn("order not possible",
			zap.Int64("order_number", status.OrderNumber()),
			zap.String("flavor", order.Flavor),
		)
	} else {
		h.logger.Info("order successful", zap.Int64("order_number", status.OrderNumber()))
	}

	writeJSON(w, code, domain.NewStatusView(status))
}

// GetOrderStatus handles order status requests
func (h *OrderHandlers) GetOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderNumber, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse(models.ErrorCodeBadRequest, "Order number must be a number"))
		return
	}

	status, err := h.orchestrator.GetStatus(r.Context(), orderNumber)
	if err != nil {
		h.logger.Error("failed to read order status", zap.Int64("order_number", orderNumber), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse(models.ErrorCodeInternalServerError, err.Error()))
		return
	}
	if status == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, domain.NewStatusView(status))
}

// RegisterRoutes registers order routes
func (h *OrderHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/api/order", func(r chi.Router) {
		r.Post("/", h.PlaceOrder)
		r.Get("/{id}", h.GetOrderStatus)
	})
}

// statusCode maps a saga result to its HTTP status
func statusCode(status domain.OrderStatus) int {
	switch s := status.(type) {
	case domain.NotPossible:
		if s.Reason == domain.ReasonPaymentNotPossible {
			return http.StatusInternalServerError
		}
		return http.StatusBadRequest
	default:
		return http.StatusOK
	}
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
