package reports

import "encoding/json"

// Report kind discriminators as sent by the backend's report endpoint.
const (
	KindRevenueSummary        = "revenue_summary"
	KindOutstandingPayments   = "outstanding_payments"
	KindPaymentMethods        = "payment_methods"
	KindTaskStatus            = "task_status"
	KindTurnaroundTime        = "turnaround_time"
	KindTechnicianPerformance = "technician_performance"
	KindTechnicianWorkload    = "technician_workload"
	KindInventoryLocation     = "inventory_location"
)

// KnownKinds lists the report kinds with dedicated renderers, in the order
// the console's report menu presents them.
var KnownKinds = []string{
	KindRevenueSummary,
	KindOutstandingPayments,
	KindPaymentMethods,
	KindTaskStatus,
	KindTurnaroundTime,
	KindTechnicianPerformance,
	KindTechnicianWorkload,
	KindInventoryLocation,
}

// titles maps kind discriminators to display titles. Unknown kinds fall
// back to the raw discriminator.
var titles = map[string]string{
	KindRevenueSummary:        "Revenue Summary",
	KindOutstandingPayments:   "Outstanding Payments",
	KindPaymentMethods:        "Payment Methods",
	KindTaskStatus:            "Task Status",
	KindTurnaroundTime:        "Turnaround Time",
	KindTechnicianPerformance: "Technician Performance",
	KindTechnicianWorkload:    "Technician Workload",
	KindInventoryLocation:     "Inventory by Location",
}

// Title returns the display title for a report kind.
func Title(kind string) string {
	if t, ok := titles[kind]; ok {
		return t
	}
	return kind
}

// The typed payloads below are decoded once at the API boundary. Absent
// fields default to their zero value here instead of being guarded at every
// render site; renderers substitute "N/A" / 0 / empty list from the zero.

type RevenueSummary struct {
	TotalRevenue     float64        `json:"total_revenue"`
	TotalPaid        float64        `json:"total_paid"`
	TotalOutstanding float64        `json:"total_outstanding"`
	TaskCount        int            `json:"task_count"`
	AveragePerTask   float64        `json:"average_per_task"`
	Period           ReportPeriod   `json:"period"`
	ByMonth          []MonthRevenue `json:"by_month"`
}

type ReportPeriod struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type MonthRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Tasks   int     `json:"tasks"`
}

type OutstandingPayments struct {
	TotalOutstanding float64           `json:"total_outstanding"`
	Tasks            []OutstandingTask `json:"tasks"`
}

type OutstandingTask struct {
	Title         string  `json:"title"`
	CustomerName  string  `json:"customer_name"`
	TotalCost     float64 `json:"total_cost"`
	PaidAmount    float64 `json:"paid_amount"`
	Balance       float64 `json:"balance"`
	PaymentStatus string  `json:"payment_status"`
	IsDebt        bool    `json:"is_debt"`
}

type PaymentMethods struct {
	Total   float64              `json:"total"`
	Methods []PaymentMethodSlice `json:"methods"`
}

type PaymentMethodSlice struct {
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
	Share  float64 `json:"share"`
}

type TaskStatus struct {
	Total  int           `json:"total"`
	Counts []StatusCount `json:"counts"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type TurnaroundTime struct {
	AverageDays float64             `json:"average_days"`
	MedianDays  float64             `json:"median_days"`
	FastestDays float64             `json:"fastest_days"`
	SlowestDays float64             `json:"slowest_days"`
	ByUrgency   []UrgencyTurnaround `json:"by_urgency"`
}

type UrgencyTurnaround struct {
	Urgency     string  `json:"urgency"`
	AverageDays float64 `json:"average_days"`
	Count       int     `json:"count"`
}

type TechnicianPerformance struct {
	Technicians []TechnicianStats `json:"technicians"`
}

type TechnicianStats struct {
	Name                  string  `json:"name"`
	Completed             int     `json:"completed"`
	Revenue               float64 `json:"revenue"`
	AverageTurnaroundDays float64 `json:"average_turnaround_days"`
}

type TechnicianWorkload struct {
	TotalActive int              `json:"total_active"`
	Technicians []TechnicianLoad `json:"technicians"`
}

type TechnicianLoad struct {
	Name          string `json:"name"`
	Active        int    `json:"active"`
	Pending       int    `json:"pending"`
	AwaitingParts int    `json:"awaiting_parts"`
}

type InventoryLocation struct {
	Total     int             `json:"total"`
	Locations []LocationCount `json:"locations"`
}

type LocationCount struct {
	Location  string `json:"location"`
	TaskCount int    `json:"task_count"`
}

// decode unmarshals a raw payload into a typed schema, tolerating absent
// fields. A malformed payload yields the zero schema rather than an error;
// the renderer then shows defaults instead of failing the page.
func decode[T any](raw json.RawMessage) T {
	var out T
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	return out
}
