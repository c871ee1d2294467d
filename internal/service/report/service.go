package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/report"
	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/clock"
	"github.com/cmlabs-hris/team-tracker-go/internal/service/metrics"
	"github.com/xuri/excelize/v2"
)

const (
	performanceSheet = "Performance"
	tasksSheet       = "Tasks"
)

var performanceHeader = []interface{}{
	"ID", "Name", "Position", "Department", "Status", "Performance (%)", "Tier",
	"Attendance (%)", "Live Attendance (%)", "Tasks Completed", "Total Tasks",
	"Completion (%)", "Late Comings", "Overdue Tasks", "Hours Logged",
}

var tasksHeader = []interface{}{
	"ID", "Title", "Assigned To", "Priority", "Status", "Due Date", "Completed Date",
}

type reportServiceImpl struct {
	reportRepo report.ReportRepository
	now        clock.Clock
}

func NewReportService(reportRepo report.ReportRepository, now clock.Clock) report.ReportService {
	return &reportServiceImpl{
		reportRepo: reportRepo,
		now:        now,
	}
}

// GeneratePerformanceReport implements report.ReportService.
func (s *reportServiceImpl) GeneratePerformanceReport(ctx context.Context, req report.PerformanceReportRequest) (report.PerformanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.PerformanceReport{}, err
	}

	snap, err := s.reportRepo.Snapshot(ctx)
	if err != nil {
		return report.PerformanceReport{}, fmt.Errorf("failed to snapshot store: %w", err)
	}

	employees := make([]employee.Employee, 0, len(snap.Employees))
	included := make(map[int]bool)
	for _, e := range snap.Employees {
		if req.Department == "" || e.Department == req.Department {
			employees = append(employees, e)
			included[e.ID] = true
		}
	}
	if req.Department != "" && len(employees) == 0 {
		return report.PerformanceReport{}, report.ErrUnknownDepartment
	}

	now := s.now()
	today := clock.DateOf(now)

	rows := make([]report.PerformanceRow, 0, len(employees))
	for _, e := range employees {
		hours := metrics.WorkHoursFor(snap.WorkEntries, e.ID)
		rows = append(rows, report.PerformanceRow{
			EmployeeID:            e.ID,
			Name:                  e.Name,
			Position:              e.Position,
			Department:            e.Department,
			Status:                string(e.Status),
			Performance:           e.Performance,
			Tier:                  string(metrics.ClassifyPerformance(e.Performance)),
			Attendance:            e.Attendance,
			LiveAttendanceRate:    metrics.AttendanceRate(snap.Attendance, e.ID),
			TasksCompleted:        e.TasksCompleted,
			TotalTasks:            e.TotalTasks,
			TaskCompletionPercent: metrics.EmployeeTaskCompletion(e),
			LateComings:           e.LateComings,
			OverdueTasks:          metrics.TaskBreakdownFor(snap.Tasks, e.ID, today).Overdue,
			HoursLogged:           hours.Total.StringFixed(1),
		})
	}

	taskRows := make([]report.TaskRow, 0, len(snap.Tasks))
	overdue := 0
	for _, t := range snap.Tasks {
		if !included[t.AssignedTo] && req.Department != "" {
			continue
		}
		if metrics.IsOverdue(t, today) {
			overdue++
		}
		row := report.TaskRow{
			TaskID:          t.ID,
			Title:           t.Title,
			AssignedTo:      metrics.EmployeeName(snap.Employees, t.AssignedTo),
			Priority:        string(t.Priority),
			EffectiveStatus: string(metrics.EffectiveStatus(t, today)),
			DueDate:         t.DueDate.Format(clock.DateLayout),
		}
		if t.CompletedDate != nil {
			row.CompletedDate = t.CompletedDate.Format(clock.DateLayout)
		}
		taskRows = append(taskRows, row)
	}

	return report.PerformanceReport{
		Department:  req.Department,
		ReportDate:  today.Format(clock.DateLayout),
		GeneratedAt: now.Format(time.RFC3339),
		Summary: report.PerformanceSummary{
			TotalEmployees:     len(employees),
			AveragePerformance: metrics.Round(metrics.AveragePerformance(employees)),
			AverageAttendance:  metrics.Round(metrics.AverageAttendance(employees)),
			CompletionRate:     metrics.Round(metrics.TaskCompletionRate(employees)),
			TotalLateComings:   metrics.TotalLateComings(employees),
			OverdueTasks:       overdue,
		},
		Employees: rows,
		Tasks:     taskRows,
	}, nil
}

// ExportPerformanceWorkbook implements report.ReportService.
func (s *reportServiceImpl) ExportPerformanceWorkbook(ctx context.Context, req report.PerformanceReportRequest, w io.Writer) error {
	rep, err := s.GeneratePerformanceReport(ctx, req)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := writePerformanceSheet(f, rep); err != nil {
		return fmt.Errorf("%w: %v", report.ErrReportGenerationFailed, err)
	}
	if err := writeTasksSheet(f, rep); err != nil {
		return fmt.Errorf("%w: %v", report.ErrReportGenerationFailed, err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1F4E78"}},
	})
}

func writeHeader(f *excelize.File, sheet string, header []interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	style, err := headerStyle(f)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", lastCol, 18)
}

func writePerformanceSheet(f *excelize.File, rep report.PerformanceReport) error {
	// A new file starts with a single "Sheet1"
	if err := f.SetSheetName("Sheet1", performanceSheet); err != nil {
		return err
	}
	if err := writeHeader(f, performanceSheet, performanceHeader); err != nil {
		return err
	}

	for i, r := range rep.Employees {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{
			r.EmployeeID, r.Name, r.Position, r.Department, r.Status, r.Performance, r.Tier,
			r.Attendance, r.LiveAttendanceRate, r.TasksCompleted, r.TotalTasks,
			r.TaskCompletionPercent, r.LateComings, r.OverdueTasks, r.HoursLogged,
		}
		if err := f.SetSheetRow(performanceSheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}

func writeTasksSheet(f *excelize.File, rep report.PerformanceReport) error {
	if _, err := f.NewSheet(tasksSheet); err != nil {
		return err
	}
	if err := writeHeader(f, tasksSheet, tasksHeader); err != nil {
		return err
	}

	for i, t := range rep.Tasks {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{
			t.TaskID, t.Title, t.AssignedTo, t.Priority, t.EffectiveStatus, t.DueDate, t.CompletedDate,
		}
		if err := f.SetSheetRow(tasksSheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}
