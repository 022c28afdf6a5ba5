package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"repair-console/internal/listview"
	"repair-console/internal/middleware"
	"repair-console/internal/models"
	"repair-console/internal/services"
	"repair-console/internal/views"
	"repair-console/pkg/utils"

	"github.com/gorilla/mux"
)

// TaskHandler handles the task screen endpoints. The list endpoint runs the
// role's server page through the list-view engine so search, filters, and
// sorting behave identically on every role's screen.
type TaskHandler struct {
	Service *services.TaskService
}

func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{Service: service}
}

// taskListResponse is the list screen payload: the derived view plus the
// server page cursors for fetching adjacent pages.
type taskListResponse struct {
	Tasks    []models.Task    `json:"tasks"`
	Count    int              `json:"count"`
	Next     string           `json:"next,omitempty"`
	Previous string           `json:"previous,omitempty"`
	View     views.Capability `json:"view"`
}

// List handles GET /api/tasks
// Query params: search, status, urgency, location, payment_status,
// technician, sort, dir=asc|desc, page
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetRoleFromContext(r.Context())
	name, _ := middleware.GetNameFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	result, err := h.Service.ListForRole(ctx, role, name, page)
	if err != nil {
		utils.Error(w, http.StatusBadGateway, err.Error())
		return
	}

	params := viewParams(r)
	tasks := services.TaskView.Apply(result.Items, params)

	cap, _ := views.ForRole(role)
	utils.JSON(w, http.StatusOK, taskListResponse{
		Tasks:    tasks,
		Count:    result.Count,
		Next:     result.Next,
		Previous: result.Previous,
		View:     cap,
	})
}

// viewParams reads the list-view engine parameters from the query string.
// Filter dimensions absent from the query default to the "all" sentinel.
func viewParams(r *http.Request) listview.Params {
	q := r.URL.Query()

	filters := map[string]string{}
	for _, dim := range []string{"status", "urgency", "location", "payment_status", "technician"} {
		if v := q.Get(dim); v != "" {
			filters[dim] = v
		}
	}

	dir := listview.Unsorted
	switch q.Get("dir") {
	case "asc":
		dir = listview.Ascending
	case "desc":
		dir = listview.Descending
	}

	return listview.Params{
		Search:  q.Get("search"),
		Filters: filters,
		SortKey: q.Get("sort"),
		SortDir: dir,
	}
}

// Get handles GET /api/tasks/{title}
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	title := mux.Vars(r)["title"]

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	task, err := h.Service.Get(ctx, title)
	if err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, task)
}

// Create handles POST /api/tasks
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	task, err := h.Service.Create(ctx, &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSON(w, http.StatusCreated, task)
}

// Update handles PUT /api/tasks/{title}
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	title := mux.Vars(r)["title"]

	var req models.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	task, err := h.Service.Update(ctx, title, &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/{title}
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetRoleFromContext(r.Context())
	title := mux.Vars(r)["title"]

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if err := h.Service.Delete(ctx, role, title); err != nil {
		writeTaskError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "Task deleted"})
}

// Action handles POST /api/tasks/{title}/actions/{action}
func (h *TaskHandler) Action(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetRoleFromContext(r.Context())
	vars := mux.Vars(r)

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	task, err := h.Service.PerformAction(ctx, role, vars["title"], views.Action(vars["action"]))
	if err != nil {
		writeTaskError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, task)
}

// ChangeStatus handles PUT /api/tasks/{title}/status
func (h *TaskHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetRoleFromContext(r.Context())
	title := mux.Vars(r)["title"]

	var req models.ChangeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	task, err := h.Service.ChangeStatus(ctx, role, title, req.Status)
	if err != nil {
		writeTaskError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, task)
}

// ListNotes handles GET /api/tasks/{title}/notes
func (h *TaskHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	title := mux.Vars(r)["title"]

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	notes, err := h.Service.ListNotes(ctx, title)
	if err != nil {
		utils.Error(w, http.StatusBadGateway, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, notes)
}

// AddNote handles POST /api/tasks/{title}/notes
func (h *TaskHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	title := mux.Vars(r)["title"]

	var req models.CreateTaskNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if name, ok := middleware.GetNameFromContext(r.Context()); ok && req.Author == "" {
		req.Author = name
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	note, err := h.Service.AddNote(ctx, title, &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSON(w, http.StatusCreated, note)
}

// ListPayments handles GET /api/tasks/{title}/payments
func (h *TaskHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	title := mux.Vars(r)["title"]

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	items, err := h.Service.ListBreakdowns(ctx, title)
	if err != nil {
		utils.Error(w, http.StatusBadGateway, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, items)
}

// RecordPayment handles POST /api/tasks/{title}/payments
func (h *TaskHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetRoleFromContext(r.Context())
	title := mux.Vars(r)["title"]

	var req models.CreateCostBreakdownRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	item, err := h.Service.RecordPayment(ctx, role, title, &req)
	if err != nil {
		writeTaskError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, item)
}

// writeTaskError maps service sentinels to status codes. The payment gate
// surfaces as 409 so the UI can show the pickup-blocked message.
func writeTaskError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrPaymentRequired):
		utils.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrActionNotAllowed):
		utils.Error(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrUnknownStatus):
		utils.Error(w, http.StatusBadRequest, err.Error())
	default:
		utils.Error(w, http.StatusBadGateway, err.Error())
	}
}
