package report

import (
	"strings"
)

// ========================================
// TEAM PERFORMANCE REPORT
// ========================================

type PerformanceReportRequest struct {
	Department string `json:"department"`
}

func (r *PerformanceReportRequest) Validate() error {
	r.Department = strings.TrimSpace(r.Department)
	if r.Department == "all" {
		r.Department = ""
	}
	return nil
}

type PerformanceReport struct {
	Department  string `json:"department,omitempty"`
	ReportDate  string `json:"report_date"`
	GeneratedAt string `json:"generated_at"`

	Summary   PerformanceSummary `json:"summary"`
	Employees []PerformanceRow   `json:"employees"`
	Tasks     []TaskRow          `json:"tasks"`
}

type PerformanceSummary struct {
	TotalEmployees     int `json:"total_employees"`
	AveragePerformance int `json:"average_performance"`
	AverageAttendance  int `json:"average_attendance"`
	CompletionRate     int `json:"completion_rate"`
	TotalLateComings   int `json:"total_late_comings"`
	OverdueTasks       int `json:"overdue_tasks"`
}

// PerformanceRow holds the stored summary of one employee next to the
// values derived from the session's records.
type PerformanceRow struct {
	EmployeeID            int    `json:"employee_id"`
	Name                  string `json:"name"`
	Position              string `json:"position"`
	Department            string `json:"department"`
	Status                string `json:"status"`
	Performance           int    `json:"performance"`
	Tier                  string `json:"tier"`
	Attendance            int    `json:"attendance"`
	LiveAttendanceRate    int    `json:"live_attendance_rate"`
	TasksCompleted        int    `json:"tasks_completed"`
	TotalTasks            int    `json:"total_tasks"`
	TaskCompletionPercent int    `json:"task_completion_percent"`
	LateComings           int    `json:"late_comings"`
	OverdueTasks          int    `json:"overdue_tasks"`
	HoursLogged           string `json:"hours_logged"`
}

type TaskRow struct {
	TaskID          int    `json:"task_id"`
	Title           string `json:"title"`
	AssignedTo      string `json:"assigned_to"`
	Priority        string `json:"priority"`
	EffectiveStatus string `json:"effective_status"`
	DueDate         string `json:"due_date"`
	CompletedDate   string `json:"completed_date,omitempty"`
}
