package models

import "time"

// Customer tiers assigned by the backend from spend aggregates.
const (
	TierRegular = "Regular"
	TierSilver  = "Silver"
	TierGold    = "Gold"
)

type Customer struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	Tier          string    `json:"tier"`
	TotalSpent    float64   `json:"total_spent"`
	LoyaltyPoints int       `json:"loyalty_points"`
	TaskCount     int       `json:"task_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateCustomerRequest represents the request body for creating a customer
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// UpdateCustomerRequest represents the request body for updating a customer
type UpdateCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}
