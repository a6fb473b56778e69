package httpapi

import (
	"encoding/json"
	"net/http"

	"tayarpro-be/internal/auth"
	"tayarpro-be/internal/order"
)

type OrderHandler struct {
	orders order.Service
}

func NewOrderHandler(orders order.Service) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type orderDetailRequest struct {
	OrderID string `json:"order_id"`
}

func (h *OrderHandler) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountIDFromContext(r.Context())
	if !ok {
		respondUnauthorized(w)
		return
	}

	orders, err := h.orders.GetOrders(r.Context(), accountID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) GetOrderDetail(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountIDFromContext(r.Context())
	if !ok {
		respondUnauthorized(w)
		return
	}

	var req orderDetailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_argument", "invalid JSON body")
		return
	}

	o, lines, err := h.orders.GetOrderDetail(r.Context(), req.OrderID, accountID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"order":        o,
		"order_detail": lines,
	})
}
