package httpapi

import (
	"encoding/json"
	"net/http"

	"tayarpro-be/internal/appointment"
	"tayarpro-be/internal/auth"

	"github.com/go-chi/chi/v5"
)

type AppointmentHandler struct {
	appointments appointment.Service
}

func NewAppointmentHandler(appointments appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments}
}

type updateAppointmentRequest struct {
	AppointmentID   string `json:"appointment_id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	AppointmentBay  int    `json:"appointment_bay"`
}

type cancelAppointmentRequest struct {
	AppointmentID string `json:"appointment_id"`
}

func (h *AppointmentHandler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountIDFromContext(r.Context())
	if !ok {
		respondUnauthorized(w)
		return
	}

	appointments, err := h.appointments.ListAppointments(r.Context(), accountID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, appointments)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountIDFromContext(r.Context())
	if !ok {
		respondUnauthorized(w)
		return
	}

	a, err := h.appointments.GetAppointment(r.Context(), chi.URLParam(r, "appointment_id"), accountID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, a)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountIDFromContext(r.Context())
	if !ok {
		respondUnauthorized(w)
		return
	}

	var req updateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_argument", "invalid JSON body")
		return
	}

	a, err := h.appointments.UpdateAppointment(
		r.Context(),
		req.AppointmentID,
		accountID,
		req.AppointmentDate,
		req.AppointmentTime,
		req.AppointmentBay,
	)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "appointment updated",
		"appointment": a,
	})
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountIDFromContext(r.Context())
	if !ok {
		respondUnauthorized(w)
		return
	}

	var req cancelAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_argument", "invalid JSON body")
		return
	}

	if _, err := h.appointments.CancelAppointment(r.Context(), req.AppointmentID, accountID); err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "appointment cancelled"})
}
