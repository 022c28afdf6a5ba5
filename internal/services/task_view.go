package services

import (
	"repair-console/internal/listview"
	"repair-console/internal/models"
)

// TaskView is the list-view engine configuration shared by every role's
// task screen: the searchable field set and the accessor the engine uses
// for filtering and sorting.
var TaskView = listview.View[models.Task]{
	SearchFields: []string{
		"title", "customer_name", "brand", "model", "serial_number", "description",
	},
	Field: taskField,
}

func taskField(t models.Task, name string) (any, bool) {
	switch name {
	case "title":
		return t.Title, true
	case "customer_name":
		return t.CustomerName, true
	case "customer_phone":
		return t.CustomerPhone, true
	case "brand":
		return t.Brand, true
	case "model":
		return t.Model, true
	case "serial_number":
		return t.SerialNumber, true
	case "description":
		return t.Description, true
	case "status":
		return t.Status, true
	case "urgency":
		return t.Urgency, true
	case "payment_status":
		return t.PaymentStatus, true
	case "technician":
		return t.TechnicianName, true
	case "location":
		return t.Location, true
	case "estimated_cost":
		return t.EstimatedCost, true
	case "total_cost":
		return t.TotalCost, true
	case "paid_amount":
		return t.PaidAmount, true
	case "created_at":
		return t.CreatedAt, true
	case "completed_at":
		if t.CompletedAt == nil {
			return nil, false
		}
		return *t.CompletedAt, true
	default:
		return nil, false
	}
}

// CustomerView configures the list-view engine for the customer screen.
var CustomerView = listview.View[models.Customer]{
	SearchFields: []string{"name", "phone", "email", "address"},
	Field:        customerField,
}

func customerField(c models.Customer, name string) (any, bool) {
	switch name {
	case "name":
		return c.Name, true
	case "phone":
		return c.Phone, true
	case "email":
		return c.Email, true
	case "address":
		return c.Address, true
	case "tier":
		return c.Tier, true
	case "total_spent":
		return c.TotalSpent, true
	case "loyalty_points":
		return c.LoyaltyPoints, true
	case "task_count":
		return c.TaskCount, true
	case "created_at":
		return c.CreatedAt, true
	default:
		return nil, false
	}
}
