package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"repair-console/internal/apiclient"
	"repair-console/internal/cache"
	"repair-console/internal/models"
	"repair-console/internal/views"
)

var (
	// ErrPaymentRequired blocks the pickup mutation for unpaid tasks that
	// are not flagged as accepted debt. The request never reaches the
	// backend.
	ErrPaymentRequired = errors.New("task must be fully paid or flagged as debt before pickup")

	ErrActionNotAllowed = errors.New("action not available for this role")
	ErrUnknownStatus    = errors.New("unknown task status")
)

// TaskService drives the role-scoped task screens: fetching each role's
// workflow slice, wiring its actions, and enforcing the payment gate in one
// place instead of per page component.
type TaskService struct {
	Client *apiclient.Client
}

func NewTaskService(client *apiclient.Client) *TaskService {
	return &TaskService{Client: client}
}

// ListForRole fetches the server page of tasks for a role's screen. The
// technician screen is additionally scoped to the signed-in technician.
func (s *TaskService) ListForRole(ctx context.Context, role, staffName string, page int) (apiclient.Page[models.Task], error) {
	cap, ok := views.ForRole(role)
	if !ok {
		return apiclient.Page[models.Task]{}, fmt.Errorf("unknown role %q", role)
	}

	q := apiclient.TaskQuery{Statuses: cap.Statuses, Page: page}
	if role == "technician" {
		q.Technician = staffName
	}

	key := fmt.Sprintf("tasks:%s:%s:%d", role, q.Technician, page)
	if data, ok := cache.GetCached(ctx, key); ok {
		var cached apiclient.Page[models.Task]
		if json.Unmarshal(data, &cached) == nil {
			return cached, nil
		}
	}

	result, err := s.Client.ListTasks(ctx, q)
	if err != nil {
		return apiclient.Page[models.Task]{}, err
	}

	if data, err := json.Marshal(result); err == nil {
		cache.SetCached(ctx, key, data, 2*time.Minute)
	}
	return result, nil
}

func (s *TaskService) Get(ctx context.Context, title string) (models.Task, error) {
	return s.Client.GetTask(ctx, title)
}

func (s *TaskService) Create(ctx context.Context, req *models.CreateTaskRequest) (models.Task, error) {
	if req.Title == "" || req.CustomerName == "" {
		return models.Task{}, errors.New("title and customer name are required")
	}
	task, err := s.Client.CreateTask(ctx, req)
	if err != nil {
		return models.Task{}, err
	}
	cache.InvalidateTaskCaches(ctx)
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, title string, req *models.UpdateTaskRequest) (models.Task, error) {
	task, err := s.Client.UpdateTask(ctx, title, req)
	if err != nil {
		return models.Task{}, err
	}
	cache.InvalidateTaskCaches(ctx)
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, role, title string) error {
	cap, ok := views.ForRole(role)
	if !ok || !cap.Allows(views.ActionDelete) {
		return ErrActionNotAllowed
	}
	if err := s.Client.DeleteTask(ctx, title); err != nil {
		return err
	}
	cache.InvalidateTaskCaches(ctx)
	return nil
}

// PerformAction runs one of the task screen's action buttons. Every action
// maps to a status transition; the capability set decides which buttons a
// role sees and the payment gate guards the pickup transition.
func (s *TaskService) PerformAction(ctx context.Context, role, title string, action views.Action) (models.Task, error) {
	cap, ok := views.ForRole(role)
	if !ok || !cap.Allows(action) {
		return models.Task{}, ErrActionNotAllowed
	}

	var target string
	switch action {
	case views.ActionApprove:
		target = models.StatusInProgress
	case views.ActionReject, views.ActionTerminate:
		target = models.StatusTerminated
	case views.ActionMarkPickedUp:
		target = models.StatusPickedUp
	default:
		return models.Task{}, ErrActionNotAllowed
	}

	return s.transition(ctx, title, target)
}

// ChangeStatus runs a free-form status transition from the task detail
// screen. Transitions into Picked Up go through the same payment gate as
// the action button.
func (s *TaskService) ChangeStatus(ctx context.Context, role, title, status string) (models.Task, error) {
	cap, ok := views.ForRole(role)
	if !ok || !cap.Allows(views.ActionChangeStatus) {
		return models.Task{}, ErrActionNotAllowed
	}
	if !validStatus(status) {
		return models.Task{}, ErrUnknownStatus
	}
	return s.transition(ctx, title, status)
}

func (s *TaskService) transition(ctx context.Context, title, target string) (models.Task, error) {
	if target == models.StatusPickedUp {
		task, err := s.Client.GetTask(ctx, title)
		if err != nil {
			return models.Task{}, err
		}
		if task.PaymentStatus != models.PaymentFullyPaid && !task.IsDebt {
			return models.Task{}, ErrPaymentRequired
		}
	}

	task, err := s.Client.ChangeTaskStatus(ctx, title, target)
	if err != nil {
		return models.Task{}, err
	}
	cache.InvalidateTaskCaches(ctx)
	return task, nil
}

// RecordPayment adds a cost breakdown line item (the mark-paid flow).
func (s *TaskService) RecordPayment(ctx context.Context, role, title string, req *models.CreateCostBreakdownRequest) (models.CostBreakdown, error) {
	cap, ok := views.ForRole(role)
	if !ok || !cap.Allows(views.ActionMarkPaid) {
		return models.CostBreakdown{}, ErrActionNotAllowed
	}
	if req.Amount <= 0 {
		return models.CostBreakdown{}, errors.New("payment amount must be positive")
	}
	switch req.Type {
	case models.BreakdownInclusive, models.BreakdownAdditive, models.BreakdownSubtractive:
	default:
		return models.CostBreakdown{}, fmt.Errorf("unknown breakdown type %q", req.Type)
	}

	item, err := s.Client.AddCostBreakdown(ctx, title, req)
	if err != nil {
		return models.CostBreakdown{}, err
	}
	cache.InvalidateTaskCaches(ctx)
	return item, nil
}

func (s *TaskService) ListNotes(ctx context.Context, title string) ([]models.TaskNote, error) {
	return s.Client.ListTaskNotes(ctx, title)
}

func (s *TaskService) AddNote(ctx context.Context, title string, req *models.CreateTaskNoteRequest) (models.TaskNote, error) {
	if req.Note == "" {
		return models.TaskNote{}, errors.New("note text is required")
	}
	return s.Client.AddTaskNote(ctx, title, req)
}

func (s *TaskService) ListBreakdowns(ctx context.Context, title string) ([]models.CostBreakdown, error) {
	return s.Client.ListCostBreakdowns(ctx, title)
}

func validStatus(status string) bool {
	for _, known := range models.AllStatuses {
		if status == known {
			return true
		}
	}
	return false
}
