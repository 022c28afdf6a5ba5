package services

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"repair-console/internal/apiclient"
	"repair-console/internal/archive"
	"repair-console/internal/cache"
	"repair-console/internal/reports"
	"repair-console/internal/timeutil"
)

// ErrInvalidDateRange rejects custom report ranges where the end precedes
// the start.
var ErrInvalidDateRange = errors.New("end date must not be before start date")

// ReportService fetches server-computed aggregates, renders them into
// documents, and produces the PDF/CSV exports.
type ReportService struct {
	Client  *apiclient.Client
	Archive *archive.Uploader
}

func NewReportService(client *apiclient.Client, uploader *archive.Uploader) *ReportService {
	return &ReportService{Client: client, Archive: uploader}
}

// Document fetches and renders one report. Report payloads cache for 15
// minutes; task mutations invalidate them early.
func (s *ReportService) Document(ctx context.Context, kind string, from, to time.Time) (*reports.Document, error) {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, ErrInvalidDateRange
	}

	payload, err := s.fetchPayload(ctx, kind, from, to)
	if err != nil {
		return nil, err
	}

	return reports.Render(kind, payload, timeutil.Now()), nil
}

func (s *ReportService) fetchPayload(ctx context.Context, kind string, from, to time.Time) (json.RawMessage, error) {
	key := fmt.Sprintf("reports:%s:%s:%s", kind, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if data, ok := cache.GetCached(ctx, key); ok {
		return json.RawMessage(data), nil
	}

	payload, err := s.Client.FetchReport(ctx, kind, from, to)
	if err != nil {
		return nil, err
	}

	cache.SetCached(ctx, key, payload, 15*time.Minute)
	return payload, nil
}

// ExportPDF renders the report as a downloadable PDF and archives a copy
// when object storage is configured.
func (s *ReportService) ExportPDF(ctx context.Context, kind string, from, to time.Time) (string, []byte, error) {
	doc, err := s.Document(ctx, kind, from, to)
	if err != nil {
		return "", nil, err
	}

	data, err := doc.PDF()
	if err != nil {
		return "", nil, fmt.Errorf("generate PDF: %w", err)
	}

	filename := doc.FileName("pdf")
	s.archiveCopy(filename, data, "application/pdf")
	return filename, data, nil
}

// ExportCSV renders the report as a downloadable CSV.
func (s *ReportService) ExportCSV(ctx context.Context, kind string, from, to time.Time) (string, []byte, error) {
	doc, err := s.Document(ctx, kind, from, to)
	if err != nil {
		return "", nil, err
	}

	data := doc.CSV()
	filename := doc.FileName("csv")
	s.archiveCopy(filename, data, "text/csv")
	return filename, data, nil
}

// ExportBundle renders every known report kind to PDF and bundles them in
// one ZIP download.
func (s *ReportService) ExportBundle(ctx context.Context, from, to time.Time) (string, []byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, kind := range reports.KnownKinds {
		doc, err := s.Document(ctx, kind, from, to)
		if err != nil {
			return "", nil, fmt.Errorf("render %s: %w", kind, err)
		}
		data, err := doc.PDF()
		if err != nil {
			return "", nil, fmt.Errorf("generate %s PDF: %w", kind, err)
		}

		f, err := zw.Create(doc.FileName("pdf"))
		if err != nil {
			return "", nil, err
		}
		if _, err := f.Write(data); err != nil {
			return "", nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return "", nil, err
	}

	filename := fmt.Sprintf("All_Reports_%s.zip", timeutil.Now().Format("2006-01-02"))
	s.archiveCopy(filename, buf.Bytes(), "application/zip")
	return filename, buf.Bytes(), nil
}

// archiveCopy uploads in the background; the download is served either way.
func (s *ReportService) archiveCopy(filename string, data []byte, contentType string) {
	if s.Archive == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.Archive.Upload(ctx, filename, data, contentType); err != nil {
			log.Printf("[Reports] Archive upload failed: %v", err)
		}
	}()
}
