package services

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"repair-console/internal/apiclient"
	"repair-console/internal/auth"
	"repair-console/internal/config"
	"repair-console/internal/reports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportService(t *testing.T) *ReportService {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"report": {"total": 4}, "type": "` + r.URL.Query().Get("type") + `", "success": true}`))
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = srv.URL
	cfg.API.TimeoutSeconds = 5
	client := apiclient.New(cfg, auth.NewTokenStore(filepath.Join(t.TempDir(), "token")))
	return NewReportService(client, nil)
}

func TestDocumentRejectsReversedRange(t *testing.T) {
	svc := NewReportService(nil, nil)

	from := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Document(context.Background(), reports.KindTaskStatus, from, to)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestExportPDF(t *testing.T) {
	svc := newReportService(t)

	filename, data, err := svc.ExportPDF(context.Background(), reports.KindTaskStatus, time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, "Task_Status_"))
	assert.True(t, strings.HasSuffix(filename, ".pdf"))
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExportCSV(t *testing.T) {
	svc := newReportService(t)

	filename, data, err := svc.ExportCSV(context.Background(), reports.KindTaskStatus, time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(filename, ".csv"))
	assert.Contains(t, string(data), "Task Status")
}

func TestExportBundleContainsEveryKind(t *testing.T) {
	svc := newReportService(t)

	filename, data, err := svc.ExportBundle(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, "All_Reports_"))
	assert.True(t, strings.HasSuffix(filename, ".zip"))

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Len(t, zr.File, len(reports.KnownKinds))
	for _, f := range zr.File {
		assert.True(t, strings.HasSuffix(f.Name, ".pdf"), f.Name)
	}
}
