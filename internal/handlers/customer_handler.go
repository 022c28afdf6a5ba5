package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"repair-console/internal/models"
	"repair-console/internal/services"
	"repair-console/pkg/utils"

	"github.com/gorilla/mux"
)

// CustomerHandler handles the customer directory endpoints.
type CustomerHandler struct {
	Service *services.CustomerService
}

func NewCustomerHandler(service *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{Service: service}
}

type customerListResponse struct {
	Customers []models.Customer `json:"customers"`
	Count     int               `json:"count"`
	Next      string            `json:"next,omitempty"`
	Previous  string            `json:"previous,omitempty"`
}

// List handles GET /api/customers
// Query params: search, tier, sort, dir=asc|desc, page
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	result, err := h.Service.ListCustomers(ctx, page)
	if err != nil {
		utils.Error(w, http.StatusBadGateway, err.Error())
		return
	}

	params := viewParams(r)
	// The customer screen filters on tier only.
	params.Filters = map[string]string{}
	if tier := r.URL.Query().Get("tier"); tier != "" {
		params.Filters["tier"] = tier
	}
	customers := services.CustomerView.Apply(result.Items, params)

	utils.JSON(w, http.StatusOK, customerListResponse{
		Customers: customers,
		Count:     result.Count,
		Next:      result.Next,
		Previous:  result.Previous,
	})
}

// Get handles GET /api/customers/{id}
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	customer, err := h.Service.GetCustomer(ctx, id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, customer)
}

// Create handles POST /api/customers
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	customer, err := h.Service.CreateCustomer(ctx, &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSON(w, http.StatusCreated, customer)
}

// Update handles PUT /api/customers/{id}
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	var req models.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	customer, err := h.Service.UpdateCustomer(ctx, id, &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, customer)
}

// Delete handles DELETE /api/customers/{id}
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if err := h.Service.DeleteCustomer(ctx, id); err != nil {
		utils.Error(w, http.StatusBadGateway, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "Customer deleted"})
}
