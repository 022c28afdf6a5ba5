package handlers

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"repair-console/internal/listview"
	"repair-console/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewParams(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/tasks?search=dell&status=Pending&urgency=High&sort=created_at&dir=desc", nil)

	p := viewParams(r)

	assert.Equal(t, "dell", p.Search)
	assert.Equal(t, "Pending", p.Filters["status"])
	assert.Equal(t, "High", p.Filters["urgency"])
	assert.Equal(t, "created_at", p.SortKey)
	assert.Equal(t, listview.Descending, p.SortDir)
}

func TestViewParamsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/tasks", nil)

	p := viewParams(r)

	assert.Empty(t, p.Search)
	assert.Empty(t, p.Filters)
	assert.Equal(t, listview.Unsorted, p.SortDir)
}

func TestViewParamsUnknownDirIsUnsorted(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/tasks?sort=title&dir=sideways", nil)
	assert.Equal(t, listview.Unsorted, viewParams(r).SortDir)
}

func TestWriteTaskErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "payment gate maps to conflict", err: services.ErrPaymentRequired, want: 409},
		{name: "capability violation maps to forbidden", err: services.ErrActionNotAllowed, want: 403},
		{name: "unknown status maps to bad request", err: services.ErrUnknownStatus, want: 400},
		{name: "other errors map to bad gateway", err: errors.New("connection refused"), want: 502},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeTaskError(w, tt.err)

			assert.Equal(t, tt.want, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}
