package fixtures

import (
	"time"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/task"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/workentry"
	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/clock"
	"github.com/shopspring/decimal"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func timePtr(t time.Time) *time.Time { return &t }

func completionPtr(c task.CompletionType) *task.CompletionType { return &c }

// ==========================================
// DEFAULT EMPLOYEES
// ==========================================

type employeeSeed struct {
	Name           string
	Position       string
	Department     string
	Email          string
	Performance    int
	Attendance     int
	TasksCompleted int
	TotalTasks     int
	LateComings    int
}

var defaultEmployees = []employeeSeed{
	{"Max Hamilton", "Senior Accountant", "Accounting", "max.hamilton@company.com", 92, 96, 28, 30, 2},
	{"Bilawal Ali", "Financial Analyst", "Finance", "bilawal.ali@company.com", 88, 94, 25, 28, 3},
	{"Arthur Andersen", "Junior Accountant", "Accounting", "arthur.andersen@company.com", 85, 98, 22, 25, 1},
	{"Peter Parker", "Budget Analyst", "Finance", "peter.parker@company.com", 90, 92, 26, 29, 4},
	{"Robert Shiller", "Accounts Payable Specialist", "Accounting", "robert.shiller@company.com", 87, 95, 24, 27, 2},
	{"Barry Johnson", "Tax Specialist", "Accounting", "barry.johnson@company.com", 91, 97, 27, 29, 1},
	{"Moaaz Ahmed", "Financial Controller", "Finance", "moaaz.ahmed@company.com", 95, 99, 31, 32, 0},
}

// Employees returns the default team, ids 1..7 in order.
func Employees() []employee.Employee {
	out := make([]employee.Employee, 0, len(defaultEmployees))
	for i, s := range defaultEmployees {
		out = append(out, employee.Employee{
			ID:             i + 1,
			Name:           s.Name,
			Position:       s.Position,
			Department:     s.Department,
			Email:          s.Email,
			Avatar:         employee.DefaultAvatar,
			Performance:    s.Performance,
			Attendance:     s.Attendance,
			TasksCompleted: s.TasksCompleted,
			TotalTasks:     s.TotalTasks,
			LateComings:    s.LateComings,
			Status:         employee.StatusActive,
		})
	}
	return out
}

// ==========================================
// DEFAULT TASKS
// ==========================================

func Tasks() []task.Task {
	return []task.Task{
		{
			ID:          1,
			Title:       "Monthly Financial Report",
			Description: "Prepare comprehensive monthly financial report for Q4",
			AssignedTo:  1,
			AssignedBy:  task.DefaultAssignedBy,
			Priority:    task.PriorityHigh,
			Status:      task.StatusInProgress,
			DueDate:     clock.MustDate("2024-02-15"),
			CreatedDate: clock.MustDate("2024-02-01"),
		},
		{
			ID:             2,
			Title:          "Budget Analysis",
			Description:    "Analyze budget variances for the marketing department",
			AssignedTo:     2,
			AssignedBy:     task.DefaultAssignedBy,
			Priority:       task.PriorityMedium,
			Status:         task.StatusCompletedOnTime,
			DueDate:        clock.MustDate("2024-02-10"),
			CreatedDate:    clock.MustDate("2024-01-28"),
			CompletedDate:  timePtr(clock.MustDate("2024-02-09")),
			CompletionType: completionPtr(task.CompletionOnTime),
		},
		{
			ID:          3,
			Title:       "Invoice Processing",
			Description: "Process pending invoices from vendors",
			AssignedTo:  3,
			AssignedBy:  task.DefaultAssignedBy,
			Priority:    task.PriorityHigh,
			Status:      task.StatusPending,
			DueDate:     clock.MustDate("2024-02-12"),
			CreatedDate: clock.MustDate("2024-02-05"),
		},
		{
			ID:             4,
			Title:          "Tax Documentation Review",
			Description:    "Review and organize tax documentation for audit",
			AssignedTo:     6,
			AssignedBy:     task.DefaultAssignedBy,
			Priority:       task.PriorityMedium,
			Status:         task.StatusCompletedLate,
			DueDate:        clock.MustDate("2024-02-08"),
			CreatedDate:    clock.MustDate("2024-01-25"),
			CompletedDate:  timePtr(clock.MustDate("2024-02-10")),
			CompletionType: completionPtr(task.CompletionLate),
		},
	}
}

// ==========================================
// DEFAULT WORK ENTRIES
// ==========================================

func WorkEntries() []workentry.WorkEntry {
	return []workentry.WorkEntry{
		{
			ID:          1,
			EmployeeID:  1,
			Date:        clock.MustDate("2024-02-08"),
			Tasks:       []string{"Financial report preparation", "Budget analysis", "Client meeting"},
			HoursWorked: decimal.NewFromInt(8),
			Description: "Completed monthly financial report and attended client meeting for budget discussion.",
			Status:      workentry.StatusApproved,
			SubmittedAt: time.Date(2024, 2, 8, 17, 30, 0, 0, time.UTC),
		},
		{
			ID:          2,
			EmployeeID:  2,
			Date:        clock.MustDate("2024-02-08"),
			Tasks:       []string{"Data analysis", "Variance report", "Team meeting"},
			HoursWorked: decimal.RequireFromString("7.5"),
			Description: "Analyzed quarterly data and prepared variance report for management review.",
			Status:      workentry.StatusSubmitted,
			SubmittedAt: time.Date(2024, 2, 8, 18, 0, 0, 0, time.UTC),
		},
	}
}

// Default is the session seed: the team, its tasks and work log. Attendance
// starts empty and is filled in through the API.
func Default() dashboard.Snapshot {
	return dashboard.Snapshot{
		Employees:   Employees(),
		Attendance:  []attendance.Entry{},
		Tasks:       Tasks(),
		WorkEntries: WorkEntries(),
	}
}
