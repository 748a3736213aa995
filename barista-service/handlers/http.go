package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/coffeeshop/coffee-system/barista-service/application"
	"github.com/coffeeshop/coffee-system/barista-service/domain"
	"github.com/coffeeshop/coffee-system/shared/models"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// BaristaHandlers contains barista HTTP handlers
type BaristaHandlers struct {
	brewCoffee   *application.BrewCoffee
	getCoffee    *application.GetCoffee
	listCoffees  *application.ListCoffees
	updateCoffee *application.UpdateCoffee
	deleteCoffee *application.DeleteCoffee
	logger       *zap.Logger
}

// NewBaristaHandlers creates new barista handlers
func NewBaristaHandlers(
	brewCoffee *application.BrewCoffee,
	getCoffee *application.GetCoffee,
	listCoffees *application.ListCoffees,
	updateCoffee *application.UpdateCoffee,
	deleteCoffee *application.DeleteCoffee,
	logger *zap.Logger,
) *BaristaHandlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BaristaHandlers{
		brewCoffee:   brewCoffee,
		getCoffee:    getCoffee,
		listCoffees:  listCoffees,
		updateCoffee: updateCoffee,
		deleteCoffee: deleteCoffee,
		logger:       logger,
	}
}

// BrewCoffee handles POST /api/coffees
func (h *BaristaHandlers) BrewCoffee(w http.ResponseWriter, r *http.Request) {
	var cmd application.BrewCoffeeCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse(models.ErrorCodeBadRequest, "Invalid request body"))
		return
	}

	cup, err := h.brewCoffee.Execute(r.Context(), &cmd)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cup)
}

// ListCoffees handles GET /api/coffees
func (h *BaristaHandlers) ListCoffees(w http.ResponseWriter, r *http.Request) {
	cups, err := h.listCoffees.Execute(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cups)
}

// GetCoffee handles GET /api/coffees/{id}
func (h *BaristaHandlers) GetCoffee(w http.ResponseWriter, r *http.Request) {
	id, ok := cupID(w, r)
	if !ok {
		return
	}

	cup, err := h.getCoffee.Execute(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cup)
}

// UpdateCoffee handles PUT /api/coffees/{id}
func (h *BaristaHandlers) UpdateCoffee(w http.ResponseWriter, r *http.Request) {
	id, ok := cupID(w, r)
	if !ok {
		return
	}

	var cmd application.BrewCoffeeCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse(models.ErrorCodeBadRequest, "Invalid request body"))
		return
	}

	cup, err := h.updateCoffee.Execute(r.Context(), id, &cmd)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cup)
}

// DeleteCoffee handles DELETE /api/coffees/{id}
func (h *BaristaHandlers) DeleteCoffee(w http.ResponseWriter, r *http.Request) {
	id, ok := cupID(w, r)
	if !ok {
		return
	}

	if err := h.deleteCoffee.Execute(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RegisterRoutes registers barista routes
func (h *BaristaHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/api/coffees", func(r chi.Router) {
		r.Post("/", h.BrewCoffee)
		r.Get("/", h.ListCoffees)
		r.Get("/{id}", h.GetCoffee)
		r.Put("/{id}", h.UpdateCoffee)
		r.Delete("/{id}", h.DeleteCoffee)
	})
}

func (h *BaristaHandlers) writeError(w http.ResponseWriter, err error) {
	var validation *domain.ValidationError
	var notMade *domain.CoffeeNotMadeHereError

	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Message: models.ErrorCodeBadRequest,
			Details: validation.Details,
		})
	case errors.As(err, &notMade):
		writeJSON(w, http.StatusNotFound, models.NewErrorResponse(models.ErrorCodeIncorrectRequest, notMade.Error()))
	default:
		h.logger.Error("barista request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse(models.ErrorCodeInternalServerError, "Something went wrong while brewing."))
	}
}

func cupID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse(models.ErrorCodeBadRequest, domain.UnknownCoffee))
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
