// Package views holds the per-role list screen configuration. Each staff
// role gets the same parameterized task screen driven by a capability set:
// which workflow slice is fetched and which action buttons are wired.
package views

import (
	"repair-console/internal/auth"
	"repair-console/internal/models"
)

type Action string

const (
	ActionApprove      Action = "approve"
	ActionReject       Action = "reject"
	ActionMarkPaid     Action = "mark-paid"
	ActionMarkPickedUp Action = "mark-picked-up"
	ActionTerminate    Action = "terminate"
	ActionDelete       Action = "delete"
	ActionChangeStatus Action = "change-status"
)

// Capability describes what one role's task screen fetches and exposes.
type Capability struct {
	Role     string   `json:"role"`
	Statuses []string `json:"statuses"`
	Actions  []Action `json:"actions"`
}

// Allows reports whether the role's screen wires the given action.
func (c Capability) Allows(a Action) bool {
	for _, allowed := range c.Actions {
		if allowed == a {
			return true
		}
	}
	return false
}

var capabilities = map[string]Capability{
	auth.RoleManager: {
		Role:     auth.RoleManager,
		Statuses: models.AllStatuses,
		Actions: []Action{
			ActionApprove, ActionReject, ActionMarkPaid, ActionMarkPickedUp,
			ActionTerminate, ActionDelete, ActionChangeStatus,
		},
	},
	auth.RoleFrontDesk: {
		Role: auth.RoleFrontDesk,
		Statuses: []string{
			models.StatusPending, models.StatusInProgress, models.StatusAwaitingParts,
			models.StatusReadyForPickup, models.StatusCompleted,
		},
		Actions: []Action{ActionMarkPickedUp, ActionTerminate, ActionChangeStatus},
	},
	auth.RoleAccountant: {
		Role: auth.RoleAccountant,
		Statuses: []string{
			models.StatusReadyForPickup, models.StatusCompleted, models.StatusPickedUp,
		},
		Actions: []Action{ActionMarkPaid},
	},
	auth.RoleTechnician: {
		Role: auth.RoleTechnician,
		Statuses: []string{
			models.StatusPending, models.StatusInProgress, models.StatusAwaitingParts,
		},
		Actions: []Action{ActionChangeStatus},
	},
}

// ForRole returns the capability set for a staff role.
func ForRole(role string) (Capability, bool) {
	c, ok := capabilities[role]
	return c, ok
}
