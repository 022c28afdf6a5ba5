package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"repair-console/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportHandlerRejectsBadDates(t *testing.T) {
	h := NewReportHandler(services.NewReportService(nil, nil))

	tests := []struct {
		name string
		url  string
	}{
		{name: "invalid from", url: "/api/reports/task_status?from=March-1"},
		{name: "invalid to", url: "/api/reports/task_status?to=2025-13-45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest("GET", tt.url, nil)
			h.Get(w, r)

			assert.Equal(t, 400, w.Code)
		})
	}
}

func TestReportServiceRejectsReversedRange(t *testing.T) {
	h := NewReportHandler(services.NewReportService(nil, nil))

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/reports/task_status?from=2025-04-10&to=2025-04-01", nil)
	h.Get(w, r)

	assert.Equal(t, 400, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "end date")
}

func TestListKinds(t *testing.T) {
	h := NewReportHandler(nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/reports", nil)
	h.ListKinds(w, r)

	require.Equal(t, 200, w.Code)

	var kinds []map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &kinds))
	assert.Len(t, kinds, 8)
	assert.Equal(t, "revenue_summary", kinds[0]["kind"])
	assert.Equal(t, "Revenue Summary", kinds[0]["title"])
}
