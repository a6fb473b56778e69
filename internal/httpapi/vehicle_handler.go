package httpapi

import (
	"encoding/json"
	"net/http"

	"tayarpro-be/internal/auth"
	"tayarpro-be/internal/vehicle"

	"github.com/go-chi/chi/v5"
)

type VehicleHandler struct {
	vehicles vehicle.Service
}

func NewVehicleHandler(vehicles vehicle.Service) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

type addCarRequest struct {
	PlateNumber string `json:"platenumber"`
	CarBrand    string `json:"carbrand"`
	CarModel    string `json:"carmodel"`
	CarYear     int    `json:"caryear"`
	TyreSize    string `json:"tyresize"`
	CarType     string `json:"cartype"`
}

func (h *VehicleHandler) AddNewCar(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountIDFromContext(r.Context())
	if !ok {
		respondUnauthorized(w)
		return
	}

	var req addCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_argument", "invalid JSON body")
		return
	}

	car, err := h.vehicles.RegisterCar(r.Context(), accountID, vehicle.RegisterCarParams{
		PlateNumber: req.PlateNumber,
		CarBrand:    req.CarBrand,
		CarModel:    req.CarModel,
		CarYear:     req.CarYear,
		TyreSize:    req.TyreSize,
		CarType:     req.CarType,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "car registered",
		"car":     car,
	})
}

func (h *VehicleHandler) GetCars(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountIDFromContext(r.Context())
	if !ok {
		respondUnauthorized(w)
		return
	}

	cars, err := h.vehicles.GetCars(r.Context(), accountID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, cars)
}

func (h *VehicleHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountIDFromContext(r.Context())
	if !ok {
		respondUnauthorized(w)
		return
	}

	car, err := h.vehicles.GetCar(r.Context(), chi.URLParam(r, "carid"), accountID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, car)
}

func (h *VehicleHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountIDFromContext(r.Context())
	if !ok {
		respondUnauthorized(w)
		return
	}

	carID := chi.URLParam(r, "carid")
	if err := h.vehicles.DeleteCar(r.Context(), carID, accountID); err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "car deleted"})
}
