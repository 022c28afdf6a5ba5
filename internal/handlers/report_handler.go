package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"repair-console/internal/listview"
	"repair-console/internal/reports"
	"repair-console/internal/services"
	"repair-console/internal/timeutil"
	"repair-console/pkg/utils"

	"github.com/gorilla/mux"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: service}
}

type reportKindInfo struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
}

// ListKinds handles GET /api/reports
func (h *ReportHandler) ListKinds(w http.ResponseWriter, r *http.Request) {
	kinds := make([]reportKindInfo, 0, len(reports.KnownKinds))
	for _, kind := range reports.KnownKinds {
		kinds = append(kinds, reportKindInfo{Kind: kind, Title: reports.Title(kind)})
	}
	utils.JSON(w, http.StatusOK, kinds)
}

// reportResponse wraps the document with the on-screen table's page info
// when the page-size selector is in play.
type reportResponse struct {
	*reports.Document
	Page *listview.PageInfo `json:"page,omitempty"`
}

// Get handles GET /api/reports/{kind}
// Query params: from=YYYY-MM-DD, to=YYYY-MM-DD, page, page_size
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	kind := mux.Vars(r)["kind"]

	from, to, ok := h.dateRange(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	doc, err := h.Service.Document(ctx, kind, from, to)
	if err != nil {
		h.writeReportError(w, err)
		return
	}

	resp := reportResponse{Document: doc}

	// The on-screen view pages through the primary table; exports always
	// carry the full table.
	q := r.URL.Query()
	if size, _ := strconv.Atoi(q.Get("page_size")); size > 0 && len(doc.Tables) > 0 {
		page, _ := strconv.Atoi(q.Get("page"))
		rows, info := listview.Paginate(doc.Tables[0].Rows, page, size)
		doc.Tables[0].Rows = rows
		resp.Page = &info
	}

	utils.JSON(w, http.StatusOK, resp)
}

// GetPDF handles GET /api/reports/{kind}/pdf
func (h *ReportHandler) GetPDF(w http.ResponseWriter, r *http.Request) {
	kind := mux.Vars(r)["kind"]

	from, to, ok := h.dateRange(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	filename, data, err := h.Service.ExportPDF(ctx, kind, from, to)
	if err != nil {
		h.writeReportError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.Write(data)
}

// GetCSV handles GET /api/reports/{kind}/csv
func (h *ReportHandler) GetCSV(w http.ResponseWriter, r *http.Request) {
	kind := mux.Vars(r)["kind"]

	from, to, ok := h.dateRange(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	filename, data, err := h.Service.ExportCSV(ctx, kind, from, to)
	if err != nil {
		h.writeReportError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.Write(data)
}

// GetBundle handles GET /api/reports/export/zip
// Returns a ZIP containing every report kind as a PDF.
func (h *ReportHandler) GetBundle(w http.ResponseWriter, r *http.Request) {
	from, to, ok := h.dateRange(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 120*time.Second)
	defer cancel()

	filename, data, err := h.Service.ExportBundle(ctx, from, to)
	if err != nil {
		h.writeReportError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.Write(data)
}

func (h *ReportHandler) dateRange(w http.ResponseWriter, r *http.Request) (from, to time.Time, ok bool) {
	q := r.URL.Query()

	if s := q.Get("from"); s != "" {
		t, err := timeutil.ParseDate(s)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid from date, expected YYYY-MM-DD")
			return
		}
		from = timeutil.StartOfDay(t)
	}
	if s := q.Get("to"); s != "" {
		t, err := timeutil.ParseDate(s)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid to date, expected YYYY-MM-DD")
			return
		}
		to = timeutil.EndOfDay(t)
	}

	return from, to, true
}

func (h *ReportHandler) writeReportError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrInvalidDateRange) {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.Error(w, http.StatusBadGateway, err.Error())
}
