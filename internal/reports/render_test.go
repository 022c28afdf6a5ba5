package reports

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var renderedAt = time.Date(2025, 4, 10, 14, 30, 0, 0, time.UTC)

func TestRenderRevenueSummary(t *testing.T) {
	raw := json.RawMessage(`{
		"total_revenue": 1250.5,
		"total_paid": 1000,
		"total_outstanding": 250.5,
		"task_count": 12,
		"average_per_task": 104.21,
		"period": {"from": "2025-03-01", "to": "2025-03-31"},
		"by_month": [{"month": "2025-03", "revenue": 1250.5, "tasks": 12}]
	}`)

	doc := Render(KindRevenueSummary, raw, renderedAt)

	assert.Equal(t, "Revenue Summary", doc.Title)
	assert.Equal(t, renderedAt, doc.GeneratedAt)
	require.Len(t, doc.Summary, 6)
	assert.Equal(t, Row{Label: "Total Revenue", Value: "$1250.50"}, doc.Summary[1])
	assert.Equal(t, Row{Label: "Period", Value: "2025-03-01 to 2025-03-31"}, doc.Summary[0])

	require.Len(t, doc.Tables, 1)
	require.Len(t, doc.Tables[0].Rows, 1)
	assert.Equal(t, []string{"2025-03", "$1250.50", "12"}, doc.Tables[0].Rows[0])
}

func TestRenderDefaultsAbsentFields(t *testing.T) {
	doc := Render(KindRevenueSummary, json.RawMessage(`{}`), renderedAt)

	require.Len(t, doc.Summary, 6)
	assert.Equal(t, "N/A to N/A", doc.Summary[0].Value)
	assert.Equal(t, "$0.00", doc.Summary[1].Value)
	assert.Equal(t, "0", doc.Summary[4].Value)
	require.Len(t, doc.Tables, 1)
	assert.Empty(t, doc.Tables[0].Rows)
}

func TestRenderMalformedPayloadYieldsZeroDocument(t *testing.T) {
	doc := Render(KindTaskStatus, json.RawMessage(`not json`), renderedAt)

	require.Len(t, doc.Summary, 1)
	assert.Equal(t, Row{Label: "Total Tasks", Value: "0"}, doc.Summary[0])
}

func TestRenderOutstandingPayments(t *testing.T) {
	raw := json.RawMessage(`{
		"total_outstanding": 300,
		"tasks": [
			{"title": "Screen swap", "customer_name": "Amara", "total_cost": 200, "paid_amount": 50, "balance": 150, "payment_status": "Partially Paid", "is_debt": false},
			{"title": "Board repair", "customer_name": "Jonas", "total_cost": 150, "paid_amount": 0, "balance": 150, "payment_status": "Unpaid", "is_debt": true}
		]
	}`)

	doc := Render(KindOutstandingPayments, raw, renderedAt)

	require.Len(t, doc.Tables, 1)
	require.Len(t, doc.Tables[0].Rows, 2)
	assert.Equal(t, "Screen swap", doc.Tables[0].Rows[0][0])
	assert.Equal(t, Row{Label: "Tasks with Balance", Value: "2"}, doc.Summary[1])
}

func TestRenderUnknownKindFallsBackToFlatten(t *testing.T) {
	raw := json.RawMessage(`{"a": {"b": 1, "c": {"d": 2}}}`)

	doc := Render("quarterly_forecast", raw, renderedAt)

	assert.Equal(t, "quarterly_forecast", doc.Title, "unknown kinds keep the raw discriminator as title")
	require.Len(t, doc.Tables, 1)
	table := doc.Tables[0]
	assert.Equal(t, "Report Fields", table.Title)
	assert.Equal(t, [][]string{
		{"a.b", "1"},
		{"a.c.d", "2"},
	}, table.Rows)
}

func TestRenderUnknownKindRowPerLeaf(t *testing.T) {
	raw := json.RawMessage(`{"x": 1, "y": [true, null], "z": {"w": "s"}}`)

	doc := Render("mystery", raw, renderedAt)

	require.Len(t, doc.Tables, 1)
	assert.Len(t, doc.Tables[0].Rows, 4)
}
