package apiclient

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"repair-console/internal/models"
)

// TaskQuery selects the task subset fetched from the backend. Statuses are
// passed as a comma-separated status filter, mirroring how the role pages
// request their workflow slice.
type TaskQuery struct {
	Statuses   []string
	Technician string
	Page       int
}

func (q TaskQuery) values() url.Values {
	v := url.Values{}
	if len(q.Statuses) > 0 {
		v.Set("status", strings.Join(q.Statuses, ","))
	}
	if q.Technician != "" {
		v.Set("technician", q.Technician)
	}
	if q.Page > 1 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	return v
}

func (c *Client) ListTasks(ctx context.Context, q TaskQuery) (Page[models.Task], error) {
	return getList[models.Task](ctx, c, "/api/tasks", q.values())
}

func (c *Client) GetTask(ctx context.Context, title string) (models.Task, error) {
	return getData[models.Task](ctx, c, "/api/tasks/"+url.PathEscape(title), nil)
}

func (c *Client) CreateTask(ctx context.Context, req *models.CreateTaskRequest) (models.Task, error) {
	return postData[models.Task](ctx, c, "/api/tasks", req)
}

func (c *Client) UpdateTask(ctx context.Context, title string, req *models.UpdateTaskRequest) (models.Task, error) {
	return putData[models.Task](ctx, c, "/api/tasks/"+url.PathEscape(title), req)
}

func (c *Client) DeleteTask(ctx context.Context, title string) error {
	return c.delete(ctx, "/api/tasks/"+url.PathEscape(title))
}

// ChangeTaskStatus issues the status transition mutation for a task.
func (c *Client) ChangeTaskStatus(ctx context.Context, title, status string) (models.Task, error) {
	req := &models.ChangeStatusRequest{Status: status}
	return putData[models.Task](ctx, c, "/api/tasks/"+url.PathEscape(title)+"/status", req)
}

func (c *Client) ListTaskNotes(ctx context.Context, title string) ([]models.TaskNote, error) {
	return getData[[]models.TaskNote](ctx, c, "/api/tasks/"+url.PathEscape(title)+"/notes", nil)
}

func (c *Client) AddTaskNote(ctx context.Context, title string, req *models.CreateTaskNoteRequest) (models.TaskNote, error) {
	return postData[models.TaskNote](ctx, c, "/api/tasks/"+url.PathEscape(title)+"/notes", req)
}

func (c *Client) ListCostBreakdowns(ctx context.Context, title string) ([]models.CostBreakdown, error) {
	return getData[[]models.CostBreakdown](ctx, c, "/api/tasks/"+url.PathEscape(title)+"/breakdowns", nil)
}

func (c *Client) AddCostBreakdown(ctx context.Context, title string, req *models.CreateCostBreakdownRequest) (models.CostBreakdown, error) {
	return postData[models.CostBreakdown](ctx, c, "/api/tasks/"+url.PathEscape(title)+"/breakdowns", req)
}
