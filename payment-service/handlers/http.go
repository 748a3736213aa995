package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/coffeeshop/coffee-system/payment-service/application"
	"github.com/coffeeshop/coffee-system/payment-service/domain"
	"github.com/coffeeshop/coffee-system/shared/models"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// PaymentHandlers contains payment HTTP handlers
type PaymentHandlers struct {
	chargeCard *application.ChargeCard
	getBalance *application.GetBalance
	logger     *zap.Logger
}

// NewPaymentHandlers creates new payment handlers
func NewPaymentHandlers(chargeCard *application.ChargeCard, getBalance *application.GetBalance, logger *zap.Logger) *PaymentHandlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentHandlers{
		chargeCard: chargeCard,
		getBalance: getBalance,
		logger:     logger,
	}
}

// Charge handles charge requests
func (h *PaymentHandlers) Charge(w http.ResponseWriter, r *http.Request) {
	var cmd application.ChargeCardCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse(models.ErrorCodeBadRequest, "Invalid request body"))
		return
	}

	receipt, err := h.chargeCard.Execute(r.Context(), &cmd)
	if err != nil {
		var funds *domain.InsufficientFundsError
		switch {
		case errors.As(err, &funds):
			writeJSON(w, http.StatusBadRequest, models.NewErrorResponse(models.ErrorCodeInsufficientFunds, funds.Error()))
		case errors.Is(err, domain.ErrMissingCreditCard), errors.Is(err, domain.ErrInvalidPrice):
			writeJSON(w, http.StatusBadRequest, models.NewErrorResponse(models.ErrorCodeBadRequest, err.Error()))
		default:
			h.logger.Error("charge failed", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse(models.ErrorCodeInternalServerError, "Charge could not be processed"))
		}
		return
	}

	writeJSON(w, http.StatusOK, receipt)
}

// GetBalance handles balance requests
func (h *PaymentHandlers) GetBalance(w http.ResponseWriter, r *http.Request) {
	card := chi.URLParam(r, "card")

	response, err := h.getBalance.Execute(r.Context(), card)
	if err != nil {
		if errors.Is(err, application.ErrAccountNotFound) {
			writeJSON(w, http.StatusNotFound, models.NewErrorResponse(models.ErrorCodeIncorrectRequest, "No charges for credit card: "+card))
			return
		}
		h.logger.Error("failed to read balance", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse(models.ErrorCodeInternalServerError, err.Error()))
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// RegisterRoutes registers payment routes
func (h *PaymentHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/charge", h.Charge)
		r.Get("/balance/{card}", h.GetBalance)
	})
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
