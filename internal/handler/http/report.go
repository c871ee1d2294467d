package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/report"
	"github.com/cmlabs-hris/team-tracker-go/internal/handler/http/response"
	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/clock"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler interface {
	// Team Performance Report
	GetPerformanceReport(w http.ResponseWriter, r *http.Request)

	// Team Performance Report as XLSX
	ExportPerformanceReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
	now           clock.Clock
}

func NewReportHandler(reportService report.ReportService, now clock.Clock) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		now:           now,
	}
}

// GetPerformanceReport handles GET /reports/performance?department=
func (h *reportHandlerImpl) GetPerformanceReport(w http.ResponseWriter, r *http.Request) {
	req := report.PerformanceReportRequest{
		Department: r.URL.Query().Get("department"),
	}

	result, err := h.reportService.GeneratePerformanceReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportPerformanceReport handles GET /reports/performance.xlsx?department=
func (h *reportHandlerImpl) ExportPerformanceReport(w http.ResponseWriter, r *http.Request) {
	req := report.PerformanceReportRequest{
		Department: r.URL.Query().Get("department"),
	}

	// Build the workbook in memory so errors can still be sent as JSON
	var buf bytes.Buffer
	if err := h.reportService.ExportPerformanceWorkbook(r.Context(), req, &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("team-performance-%s.xlsx", h.now.Today().Format(clock.DateLayout))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write report", "error", err)
	}
}
