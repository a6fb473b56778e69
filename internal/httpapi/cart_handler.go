package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"tayarpro-be/internal/auth"
	"tayarpro-be/internal/cart"
	"tayarpro-be/internal/catalog"

	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	carts cart.Service
}

func NewCartHandler(carts cart.Service) *CartHandler {
	return &CartHandler{carts: carts}
}

type addTyreRequest struct {
	TyreID   string `json:"tyre_id"`
	Quantity int    `json:"quantity"`
}

type addServiceRequest struct {
	ServiceID string `json:"service_id"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) AddTyreToCart(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountIDFromContext(r.Context())
	if !ok {
		respondUnauthorized(w)
		return
	}

	var req addTyreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_argument", "invalid JSON body")
		return
	}
	if !catalog.IsTyreID(req.TyreID) {
		respondError(w, http.StatusNotFound, "not_found", "tyre not found")
		return
	}

	h.addAndRespond(w, r, accountID, req.TyreID, req.Quantity)
}

func (h *CartHandler) AddServiceToCart(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountIDFromContext(r.Context())
	if !ok {
		respondUnauthorized(w)
		return
	}

	var req addServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_argument", "invalid JSON body")
		return
	}
	if catalog.IsTyreID(req.ServiceID) {
		respondError(w, http.StatusNotFound, "not_found", "service not found")
		return
	}

	h.addAndRespond(w, r, accountID, req.ServiceID, req.Quantity)
}

// addAndRespond performs the add and returns the whole cart so the
// frontend can redraw without a second round trip.
func (h *CartHandler) addAndRespond(w http.ResponseWriter, r *http.Request, accountID, productID string, quantity int) {
	if _, err := h.carts.AddToCart(r.Context(), accountID, productID, quantity); err != nil {
		respondDomainError(w, r, err)
		return
	}

	items, err := h.carts.GetCart(r.Context(), accountID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "item added to cart",
		"carts":   items,
	})
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountIDFromContext(r.Context())
	if !ok {
		respondUnauthorized(w)
		return
	}

	items, err := h.carts.GetCart(r.Context(), accountID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountIDFromContext(r.Context())
	if !ok {
		respondUnauthorized(w)
		return
	}

	productID := chi.URLParam(r, "product_id")
	quantity, err := strconv.Atoi(chi.URLParam(r, "quantity"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_argument", "quantity must be an integer")
		return
	}

	item, err := h.carts.UpdateQuantity(r.Context(), accountID, productID, quantity)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "quantity updated",
		"quantity": item.Quantity,
	})
}

func (h *CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountIDFromContext(r.Context())
	if !ok {
		respondUnauthorized(w)
		return
	}

	productID := chi.URLParam(r, "product_id")
	if err := h.carts.RemoveFromCart(r.Context(), accountID, productID); err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "item removed from cart"})
}
