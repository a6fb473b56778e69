package httpapi

import (
	"encoding/json"
	"net/http"

	"tayarpro-be/internal/auth"
	"tayarpro-be/internal/checkout"
)

type CheckoutHandler struct {
	checkout checkout.Service
}

func NewCheckoutHandler(checkoutSvc checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkoutSvc}
}

type checkoutRequest struct {
	CarID           string `json:"car_id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	AppointmentBay  int    `json:"appointment_bay"`
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountIDFromContext(r.Context())
	if !ok {
		respondUnauthorized(w)
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_argument", "invalid JSON body")
		return
	}

	orderID, err := h.checkout.Checkout(
		r.Context(),
		accountID,
		req.CarID,
		req.AppointmentDate,
		req.AppointmentTime,
		req.AppointmentBay,
	)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message":  "checkout successful",
		"order_id": orderID,
	})
}
