package report

import (
	"context"
	"io"
)

// ReportService defines the interface for report generation
type ReportService interface {
	// Generate Team Performance Report
	GeneratePerformanceReport(ctx context.Context, req PerformanceReportRequest) (PerformanceReport, error)

	// Export Team Performance Report as an XLSX workbook
	ExportPerformanceWorkbook(ctx context.Context, req PerformanceReportRequest, w io.Writer) error
}
