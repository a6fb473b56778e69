package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"tayarpro-be/internal/account"
	"tayarpro-be/internal/appointment"
	"tayarpro-be/internal/cart"
	"tayarpro-be/internal/catalog"
	"tayarpro-be/internal/logger"
	"tayarpro-be/internal/order"
	"tayarpro-be/internal/vehicle"

	"go.uber.org/zap"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.L().Error("failed to encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, kind, message string) {
	respondJSON(w, status, errorResponse{Error: kind, Message: message})
}

func respondUnauthorized(w http.ResponseWriter) {
	respondError(w, http.StatusUnauthorized, "unauthorized", "missing or invalid credentials")
}

// respondDomainError maps service-layer sentinel errors onto HTTP
// statuses. Ownership failures come through as not-found so callers
// cannot probe for other accounts' resources.
func respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, account.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "unauthorized", "invalid username or password")

	case errors.Is(err, catalog.ErrTyreNotFound):
		respondError(w, http.StatusNotFound, "not_found", "tyre not found")
	case errors.Is(err, catalog.ErrServiceNotFound):
		respondError(w, http.StatusNotFound, "not_found", "service not found")
	case errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, cart.ErrProductNotFound):
		respondError(w, http.StatusNotFound, "not_found", "product not found")
	case errors.Is(err, cart.ErrCartItemNotFound):
		respondError(w, http.StatusNotFound, "not_found", "item not in cart")
	case errors.Is(err, vehicle.ErrCarNotFound),
		errors.Is(err, appointment.ErrNoRegisteredCar):
		respondError(w, http.StatusNotFound, "not_found", "car not found")
	case errors.Is(err, order.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, "not_found", "order not found")
	case errors.Is(err, appointment.ErrAppointmentNotFound):
		respondError(w, http.StatusNotFound, "not_found", "appointment not found")
	case errors.Is(err, account.ErrAccountNotFound):
		respondError(w, http.StatusNotFound, "not_found", "account not found")

	case errors.Is(err, cart.ErrInvalidQuantity):
		respondError(w, http.StatusBadRequest, "invalid_argument", "quantity must be at least 1")
	case errors.Is(err, appointment.ErrInvalidBay):
		respondError(w, http.StatusBadRequest, "invalid_argument", "bay must be between 1 and 5")
	case errors.Is(err, appointment.ErrInvalidSchedule):
		respondError(w, http.StatusBadRequest, "invalid_argument", "invalid appointment date or time")
	case errors.Is(err, vehicle.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, "invalid_argument", "invalid car details")

	case errors.Is(err, cart.ErrCartEmpty):
		respondError(w, http.StatusBadRequest, "invalid_state", "cart is empty")
	case errors.Is(err, appointment.ErrAppointmentFinal):
		respondError(w, http.StatusBadRequest, "invalid_state", "appointment is already completed or cancelled")

	case errors.Is(err, account.ErrEmailExists):
		respondError(w, http.StatusConflict, "conflict", "email already registered")
	case errors.Is(err, account.ErrUsernameExists):
		respondError(w, http.StatusConflict, "conflict", "username already taken")

	default:
		logger.FromCtx(r.Context()).Error("unhandled service error", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}
