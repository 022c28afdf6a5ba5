package models

import "time"

// Cost breakdown types. Additive entries raise the task total, Subtractive
// entries are refunds, Inclusive entries itemize within the agreed total.
const (
	BreakdownInclusive   = "Inclusive"
	BreakdownAdditive    = "Additive"
	BreakdownSubtractive = "Subtractive"
)

// CostBreakdown is a line item attached to a task.
type CostBreakdown struct {
	ID            int       `json:"id"`
	TaskTitle     string    `json:"task_title"`
	Amount        float64   `json:"amount"`
	Type          string    `json:"type"`
	PaymentMethod string    `json:"payment_method"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateCostBreakdownRequest represents the request body for adding a line item
type CreateCostBreakdownRequest struct {
	Amount        float64 `json:"amount"`
	Type          string  `json:"type"`
	PaymentMethod string  `json:"payment_method"`
	Notes         string  `json:"notes"`
}
