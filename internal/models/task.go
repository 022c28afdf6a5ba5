package models

import "time"

// Task statuses follow the repair workflow from intake to pickup.
// Picked Up and Terminated are terminal.
const (
	StatusPending        = "Pending"
	StatusInProgress     = "In Progress"
	StatusAwaitingParts  = "Awaiting Parts"
	StatusReadyForPickup = "Ready for Pickup"
	StatusCompleted      = "Completed"
	StatusPickedUp       = "Picked Up"
	StatusTerminated     = "Terminated"
)

const (
	PaymentUnpaid        = "Unpaid"
	PaymentPartiallyPaid = "Partially Paid"
	PaymentFullyPaid     = "Fully Paid"
	PaymentRefunded      = "Refunded"
)

const (
	UrgencyLow    = "Low"
	UrgencyNormal = "Normal"
	UrgencyHigh   = "High"
	UrgencyUrgent = "Urgent"
)

// AllStatuses lists every workflow status in lifecycle order.
var AllStatuses = []string{
	StatusPending,
	StatusInProgress,
	StatusAwaitingParts,
	StatusReadyForPickup,
	StatusCompleted,
	StatusPickedUp,
	StatusTerminated,
}

// Task is a repair ticket. The backend is authoritative; the console only
// displays and mutates tasks through the API. The title doubles as the
// primary key in task detail routes.
type Task struct {
	Title          string     `json:"title"`
	CustomerName   string     `json:"customer_name"`
	CustomerPhone  string     `json:"customer_phone"`
	Brand          string     `json:"brand"`
	Model          string     `json:"model"`
	SerialNumber   string     `json:"serial_number"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	Urgency        string     `json:"urgency"`
	PaymentStatus  string     `json:"payment_status"`
	IsDebt         bool       `json:"is_debt"` // pickup allowed despite outstanding balance
	TechnicianName string     `json:"technician_name"`
	Location       string     `json:"location"`
	EstimatedCost  float64    `json:"estimated_cost"`
	TotalCost      float64    `json:"total_cost"`
	PaidAmount     float64    `json:"paid_amount"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	PickedUpAt     *time.Time `json:"picked_up_at,omitempty"`
}

// Balance returns the amount still owed on the task.
func (t *Task) Balance() float64 {
	return t.TotalCost - t.PaidAmount
}

// IsTerminal reports whether the task has left the active workflow.
func (t *Task) IsTerminal() bool {
	return t.Status == StatusPickedUp || t.Status == StatusTerminated
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Title         string  `json:"title"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	SerialNumber  string  `json:"serial_number"`
	Description   string  `json:"description"`
	Urgency       string  `json:"urgency"`
	Location      string  `json:"location"`
	EstimatedCost float64 `json:"estimated_cost"`
}

// UpdateTaskRequest represents the request body for updating a task
type UpdateTaskRequest struct {
	CustomerName   string  `json:"customer_name"`
	CustomerPhone  string  `json:"customer_phone"`
	Brand          string  `json:"brand"`
	Model          string  `json:"model"`
	SerialNumber   string  `json:"serial_number"`
	Description    string  `json:"description"`
	Urgency        string  `json:"urgency"`
	Location       string  `json:"location"`
	TechnicianName string  `json:"technician_name"`
	EstimatedCost  float64 `json:"estimated_cost"`
}

// ChangeStatusRequest represents the request body for a status transition
type ChangeStatusRequest struct {
	Status string `json:"status"`
}
