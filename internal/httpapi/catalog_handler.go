package httpapi

import (
	"net/http"

	"tayarpro-be/internal/catalog"

	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalog catalog.Service
}

func NewCatalogHandler(catalogSvc catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: catalogSvc}
}

func (h *CatalogHandler) GetAllTyres(w http.ResponseWriter, r *http.Request) {
	tyres, err := h.catalog.ListTyres(r.Context())
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, tyres)
}

func (h *CatalogHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemid")

	product, err := h.catalog.ResolveProduct(r.Context(), itemID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "serviceid")

	svc, err := h.catalog.GetServiceItem(r.Context(), serviceID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, svc)
}

func (h *CatalogHandler) GetAllBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.catalog.ListBrands(r.Context())
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, brands)
}

func (h *CatalogHandler) GetAllServices(w http.ResponseWriter, r *http.Request) {
	serviceType := r.URL.Query().Get("typeid")

	var (
		services interface{}
		err      error
	)
	if serviceType != "" {
		services, err = h.catalog.ListServicesByType(r.Context(), serviceType)
	} else {
		services, err = h.catalog.ListServices(r.Context())
	}
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, services)
}

func (h *CatalogHandler) GetPaymentMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.catalog.ListPaymentMethods(r.Context())
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, methods)
}
