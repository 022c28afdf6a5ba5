package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"repair-console/internal/apiclient"
	"repair-console/internal/auth"
	"repair-console/internal/config"
	"repair-console/internal/models"
	"repair-console/internal/views"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend records every mutation the console issues so tests can assert
// that blocked transitions never reach the API.
type fakeBackend struct {
	task            models.Task
	statusMutations []string
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/tasks/{title}", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": b.task})
	})
	mux.HandleFunc("PUT /api/tasks/{title}/status", func(w http.ResponseWriter, r *http.Request) {
		var req models.ChangeStatusRequest
		json.NewDecoder(r.Body).Decode(&req)
		b.statusMutations = append(b.statusMutations, req.Status)
		b.task.Status = req.Status
		json.NewEncoder(w).Encode(map[string]any{"data": b.task})
	})
	mux.HandleFunc("GET /api/tasks", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"results": []models.Task{b.task},
			"count":   1,
		})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	return mux
}

func newTestService(t *testing.T, backend *fakeBackend) (*TaskService, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = srv.URL
	cfg.API.TimeoutSeconds = 5

	tokens := auth.NewTokenStore(filepath.Join(t.TempDir(), "token"))
	client := apiclient.New(cfg, tokens)
	return NewTaskService(client), srv
}

func TestPickupBlockedWhenUnpaid(t *testing.T) {
	backend := &fakeBackend{task: models.Task{
		Title:         "Screen swap",
		Status:        models.StatusCompleted,
		PaymentStatus: models.PaymentUnpaid,
	}}
	svc, _ := newTestService(t, backend)

	_, err := svc.PerformAction(context.Background(), auth.RoleManager, "Screen swap", views.ActionMarkPickedUp)

	require.ErrorIs(t, err, ErrPaymentRequired)
	assert.Empty(t, backend.statusMutations, "no status mutation may be issued for an unpaid non-debt task")
}

func TestPickupBlockedWhenPartiallyPaid(t *testing.T) {
	backend := &fakeBackend{task: models.Task{
		Title:         "Board repair",
		Status:        models.StatusCompleted,
		PaymentStatus: models.PaymentPartiallyPaid,
	}}
	svc, _ := newTestService(t, backend)

	_, err := svc.ChangeStatus(context.Background(), auth.RoleManager, "Board repair", models.StatusPickedUp)

	require.ErrorIs(t, err, ErrPaymentRequired)
	assert.Empty(t, backend.statusMutations)
}

func TestPickupAllowedWhenFullyPaid(t *testing.T) {
	backend := &fakeBackend{task: models.Task{
		Title:         "Screen swap",
		Status:        models.StatusCompleted,
		PaymentStatus: models.PaymentFullyPaid,
	}}
	svc, _ := newTestService(t, backend)

	task, err := svc.PerformAction(context.Background(), auth.RoleManager, "Screen swap", views.ActionMarkPickedUp)

	require.NoError(t, err)
	assert.Equal(t, models.StatusPickedUp, task.Status)
	assert.Equal(t, []string{models.StatusPickedUp}, backend.statusMutations)
}

func TestPickupAllowedForDebtTask(t *testing.T) {
	backend := &fakeBackend{task: models.Task{
		Title:         "Keyboard replacement",
		Status:        models.StatusCompleted,
		PaymentStatus: models.PaymentPartiallyPaid,
		IsDebt:        true,
	}}
	svc, _ := newTestService(t, backend)

	task, err := svc.PerformAction(context.Background(), auth.RoleFrontDesk, "Keyboard replacement", views.ActionMarkPickedUp)

	require.NoError(t, err)
	assert.Equal(t, models.StatusPickedUp, task.Status)
}

func TestNonPickupTransitionSkipsPaymentGate(t *testing.T) {
	backend := &fakeBackend{task: models.Task{
		Title:         "Screen swap",
		Status:        models.StatusPending,
		PaymentStatus: models.PaymentUnpaid,
	}}
	svc, _ := newTestService(t, backend)

	task, err := svc.ChangeStatus(context.Background(), auth.RoleManager, "Screen swap", models.StatusInProgress)

	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, task.Status)
}

func TestActionRequiresCapability(t *testing.T) {
	backend := &fakeBackend{task: models.Task{Title: "Screen swap", Status: models.StatusPending}}
	svc, _ := newTestService(t, backend)

	tests := []struct {
		role   string
		action views.Action
	}{
		{role: auth.RoleTechnician, action: views.ActionMarkPickedUp},
		{role: auth.RoleAccountant, action: views.ActionApprove},
		{role: auth.RoleFrontDesk, action: views.ActionDelete},
		{role: "intern", action: views.ActionApprove},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s cannot %s", tt.role, tt.action), func(t *testing.T) {
			_, err := svc.PerformAction(context.Background(), tt.role, "Screen swap", tt.action)
			assert.ErrorIs(t, err, ErrActionNotAllowed)
		})
	}
	assert.Empty(t, backend.statusMutations)
}

func TestChangeStatusRejectsUnknownStatus(t *testing.T) {
	backend := &fakeBackend{task: models.Task{Title: "Screen swap", Status: models.StatusPending}}
	svc, _ := newTestService(t, backend)

	_, err := svc.ChangeStatus(context.Background(), auth.RoleManager, "Screen swap", "Vaporized")

	require.ErrorIs(t, err, ErrUnknownStatus)
	assert.Empty(t, backend.statusMutations)
}

func TestApproveMapsToInProgress(t *testing.T) {
	backend := &fakeBackend{task: models.Task{Title: "Screen swap", Status: models.StatusPending}}
	svc, _ := newTestService(t, backend)

	task, err := svc.PerformAction(context.Background(), auth.RoleManager, "Screen swap", views.ActionApprove)

	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, task.Status)
}

func TestRejectMapsToTerminated(t *testing.T) {
	backend := &fakeBackend{task: models.Task{Title: "Screen swap", Status: models.StatusPending}}
	svc, _ := newTestService(t, backend)

	task, err := svc.PerformAction(context.Background(), auth.RoleManager, "Screen swap", views.ActionReject)

	require.NoError(t, err)
	assert.Equal(t, models.StatusTerminated, task.Status)
}

func TestRecordPaymentValidation(t *testing.T) {
	backend := &fakeBackend{task: models.Task{Title: "Screen swap"}}
	svc, _ := newTestService(t, backend)

	_, err := svc.RecordPayment(context.Background(), auth.RoleAccountant, "Screen swap", &models.CreateCostBreakdownRequest{Amount: 0, Type: models.BreakdownAdditive})
	assert.Error(t, err, "zero amount must be rejected")

	_, err = svc.RecordPayment(context.Background(), auth.RoleAccountant, "Screen swap", &models.CreateCostBreakdownRequest{Amount: 50, Type: "mystery"})
	assert.Error(t, err, "unknown breakdown type must be rejected")

	_, err = svc.RecordPayment(context.Background(), auth.RoleTechnician, "Screen swap", &models.CreateCostBreakdownRequest{Amount: 50, Type: models.BreakdownAdditive})
	assert.ErrorIs(t, err, ErrActionNotAllowed)
}

func TestListForRoleScopesTechnician(t *testing.T) {
	var gotQuery map[string]string

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/tasks", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"status":     r.URL.Query().Get("status"),
			"technician": r.URL.Query().Get("technician"),
		}
		json.NewEncoder(w).Encode(map[string]any{"results": []models.Task{}, "count": 0})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = srv.URL
	cfg.API.TimeoutSeconds = 5
	client := apiclient.New(cfg, auth.NewTokenStore(filepath.Join(t.TempDir(), "token")))
	svc := NewTaskService(client)

	_, err := svc.ListForRole(context.Background(), auth.RoleTechnician, "Priya", 0)
	require.NoError(t, err)

	assert.Equal(t, "Priya", gotQuery["technician"])
	assert.Equal(t, "Pending,In Progress,Awaiting Parts", gotQuery["status"])
}

func TestListForRoleUnknownRole(t *testing.T) {
	backend := &fakeBackend{}
	svc, _ := newTestService(t, backend)

	_, err := svc.ListForRole(context.Background(), "janitor", "", 1)
	assert.Error(t, err)
}
