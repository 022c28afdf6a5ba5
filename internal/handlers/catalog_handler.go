package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"repair-console/internal/apiclient"
	"repair-console/internal/cache"
	"repair-console/pkg/utils"
)

const catalogCacheTTL = 10 * time.Minute

// CatalogHandler serves the small lookup lists backing the console's form
// selects. Catalogs change rarely, so responses cache for 10 minutes.
type CatalogHandler struct {
	Client *apiclient.Client
}

func NewCatalogHandler(client *apiclient.Client) *CatalogHandler {
	return &CatalogHandler{Client: client}
}

// Brands handles GET /api/catalog/brands
func (h *CatalogHandler) Brands(w http.ResponseWriter, r *http.Request) {
	serveCatalog(w, r, "catalog:brands", h.Client.ListBrands)
}

// Technicians handles GET /api/catalog/technicians
func (h *CatalogHandler) Technicians(w http.ResponseWriter, r *http.Request) {
	serveCatalog(w, r, "catalog:technicians", h.Client.ListTechnicians)
}

// Locations handles GET /api/catalog/locations
func (h *CatalogHandler) Locations(w http.ResponseWriter, r *http.Request) {
	serveCatalog(w, r, "catalog:locations", h.Client.ListLocations)
}

// PaymentMethods handles GET /api/catalog/payment-methods
func (h *CatalogHandler) PaymentMethods(w http.ResponseWriter, r *http.Request) {
	serveCatalog(w, r, "catalog:payment_methods", h.Client.ListPaymentMethods)
}

func serveCatalog[T any](w http.ResponseWriter, r *http.Request, key string, fetch func(context.Context) ([]T, error)) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if data, ok := cache.GetCached(ctx, key); ok {
		var cached []T
		if json.Unmarshal(data, &cached) == nil {
			utils.JSON(w, http.StatusOK, cached)
			return
		}
	}

	items, err := fetch(ctx)
	if err != nil {
		utils.Error(w, http.StatusBadGateway, err.Error())
		return
	}

	if data, err := json.Marshal(items); err == nil {
		cache.SetCached(ctx, key, data, catalogCacheTTL)
	}
	utils.JSON(w, http.StatusOK, items)
}
