package reports

import (
	"encoding/json"
	"fmt"
	"time"
)

// Row is one labeled summary value.
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Table is one titled tabular section.
type Table struct {
	Title  string     `json:"title"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// Document is the rendered, presentation-ready form of a report payload.
// The same document feeds the on-screen view, the PDF export and the CSV
// export.
type Document struct {
	Kind        string    `json:"kind"`
	Title       string    `json:"title"`
	GeneratedAt time.Time `json:"generated_at"`
	Summary     []Row     `json:"summary"`
	Tables      []Table   `json:"tables"`
}

// Render maps a raw report payload into a Document. Known kinds use their
// dedicated renderer; anything else falls back to the generic flattener.
func Render(kind string, raw json.RawMessage, generatedAt time.Time) *Document {
	doc := &Document{
		Kind:        kind,
		Title:       Title(kind),
		GeneratedAt: generatedAt,
	}

	switch kind {
	case KindRevenueSummary:
		renderRevenueSummary(doc, decode[RevenueSummary](raw))
	case KindOutstandingPayments:
		renderOutstandingPayments(doc, decode[OutstandingPayments](raw))
	case KindPaymentMethods:
		renderPaymentMethods(doc, decode[PaymentMethods](raw))
	case KindTaskStatus:
		renderTaskStatus(doc, decode[TaskStatus](raw))
	case KindTurnaroundTime:
		renderTurnaroundTime(doc, decode[TurnaroundTime](raw))
	case KindTechnicianPerformance:
		renderTechnicianPerformance(doc, decode[TechnicianPerformance](raw))
	case KindTechnicianWorkload:
		renderTechnicianWorkload(doc, decode[TechnicianWorkload](raw))
	case KindInventoryLocation:
		renderInventoryLocation(doc, decode[InventoryLocation](raw))
	default:
		renderGeneric(doc, raw)
	}

	return doc
}

func renderRevenueSummary(doc *Document, data RevenueSummary) {
	doc.Summary = []Row{
		{Label: "Period", Value: orNA(data.Period.From) + " to " + orNA(data.Period.To)},
		{Label: "Total Revenue", Value: money(data.TotalRevenue)},
		{Label: "Total Paid", Value: money(data.TotalPaid)},
		{Label: "Outstanding", Value: money(data.TotalOutstanding)},
		{Label: "Tasks", Value: count(data.TaskCount)},
		{Label: "Average per Task", Value: money(data.AveragePerTask)},
	}

	table := Table{Title: "Revenue by Month", Header: []string{"Month", "Revenue", "Tasks"}}
	for _, m := range data.ByMonth {
		table.Rows = append(table.Rows, []string{orNA(m.Month), money(m.Revenue), count(m.Tasks)})
	}
	doc.Tables = []Table{table}
}

func renderOutstandingPayments(doc *Document, data OutstandingPayments) {
	doc.Summary = []Row{
		{Label: "Total Outstanding", Value: money(data.TotalOutstanding)},
		{Label: "Tasks with Balance", Value: count(len(data.Tasks))},
	}

	table := Table{
		Title:  "Outstanding Tasks",
		Header: []string{"Task", "Customer", "Total", "Paid", "Balance", "Payment Status", "Debt"},
	}
	for _, t := range data.Tasks {
		debt := "No"
		if t.IsDebt {
			debt = "Yes"
		}
		table.Rows = append(table.Rows, []string{
			orNA(t.Title), orNA(t.CustomerName), money(t.TotalCost),
			money(t.PaidAmount), money(t.Balance), orNA(t.PaymentStatus), debt,
		})
	}
	doc.Tables = []Table{table}
}

func renderPaymentMethods(doc *Document, data PaymentMethods) {
	doc.Summary = []Row{{Label: "Total Collected", Value: money(data.Total)}}

	table := Table{Title: "By Payment Method", Header: []string{"Method", "Amount", "Payments", "Share"}}
	for _, m := range data.Methods {
		table.Rows = append(table.Rows, []string{
			orNA(m.Method), money(m.Amount), count(m.Count), percent(m.Share),
		})
	}
	doc.Tables = []Table{table}
}

func renderTaskStatus(doc *Document, data TaskStatus) {
	doc.Summary = []Row{{Label: "Total Tasks", Value: count(data.Total)}}

	table := Table{Title: "Tasks by Status", Header: []string{"Status", "Count"}}
	for _, c := range data.Counts {
		table.Rows = append(table.Rows, []string{orNA(c.Status), count(c.Count)})
	}
	doc.Tables = []Table{table}
}

func renderTurnaroundTime(doc *Document, data TurnaroundTime) {
	doc.Summary = []Row{
		{Label: "Average", Value: days(data.AverageDays)},
		{Label: "Median", Value: days(data.MedianDays)},
		{Label: "Fastest", Value: days(data.FastestDays)},
		{Label: "Slowest", Value: days(data.SlowestDays)},
	}

	table := Table{Title: "By Urgency", Header: []string{"Urgency", "Average", "Tasks"}}
	for _, u := range data.ByUrgency {
		table.Rows = append(table.Rows, []string{orNA(u.Urgency), days(u.AverageDays), count(u.Count)})
	}
	doc.Tables = []Table{table}
}

func renderTechnicianPerformance(doc *Document, data TechnicianPerformance) {
	doc.Summary = []Row{{Label: "Technicians", Value: count(len(data.Technicians))}}

	table := Table{
		Title:  "Performance",
		Header: []string{"Technician", "Completed", "Revenue", "Avg Turnaround"},
	}
	for _, t := range data.Technicians {
		table.Rows = append(table.Rows, []string{
			orNA(t.Name), count(t.Completed), money(t.Revenue), days(t.AverageTurnaroundDays),
		})
	}
	doc.Tables = []Table{table}
}

func renderTechnicianWorkload(doc *Document, data TechnicianWorkload) {
	doc.Summary = []Row{{Label: "Active Tasks", Value: count(data.TotalActive)}}

	table := Table{
		Title:  "Workload",
		Header: []string{"Technician", "Active", "Pending", "Awaiting Parts"},
	}
	for _, t := range data.Technicians {
		table.Rows = append(table.Rows, []string{
			orNA(t.Name), count(t.Active), count(t.Pending), count(t.AwaitingParts),
		})
	}
	doc.Tables = []Table{table}
}

func renderInventoryLocation(doc *Document, data InventoryLocation) {
	doc.Summary = []Row{{Label: "Laptops in Shop", Value: count(data.Total)}}

	table := Table{Title: "By Location", Header: []string{"Location", "Tasks"}}
	for _, l := range data.Locations {
		table.Rows = append(table.Rows, []string{orNA(l.Location), count(l.TaskCount)})
	}
	doc.Tables = []Table{table}
}

// renderGeneric handles unrecognized report kinds: flatten the payload and
// emit one row per leaf field.
func renderGeneric(doc *Document, raw json.RawMessage) {
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		payload = nil
	}

	table := Table{Title: "Report Fields", Header: []string{"Field", "Value"}}
	for _, leaf := range Flatten(payload) {
		table.Rows = append(table.Rows, []string{leaf.Path, leaf.Value})
	}
	doc.Tables = []Table{table}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func count(n int) string {
	return fmt.Sprintf("%d", n)
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func days(v float64) string {
	return fmt.Sprintf("%.1f days", v)
}
