package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/task"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/workentry"
	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/clock"
	"github.com/cmlabs-hris/team-tracker-go/internal/service/metrics"
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	taskRepo       task.TaskRepository
	workEntryRepo  workentry.WorkEntryRepository
	now            clock.Clock
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	taskRepo task.TaskRepository,
	workEntryRepo workentry.WorkEntryRepository,
	now clock.Clock,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		taskRepo:       taskRepo,
		workEntryRepo:  workEntryRepo,
		now:            now,
	}
}

// Helper function to map Employee to EmployeeResponse
func mapEmployeeToResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:             e.ID,
		Name:           e.Name,
		Position:       e.Position,
		Department:     e.Department,
		Email:          e.Email,
		Avatar:         e.Avatar,
		Performance:    e.Performance,
		Attendance:     e.Attendance,
		TasksCompleted: e.TasksCompleted,
		TotalTasks:     e.TotalTasks,
		LateComings:    e.LateComings,
		Status:         string(e.Status),
		Tier:           string(metrics.ClassifyPerformance(e.Performance)),
	}
}

func matches(e employee.Employee, filter employee.EmployeeFilter) bool {
	if filter.Query != "" {
		q := strings.ToLower(filter.Query)
		if !strings.Contains(strings.ToLower(e.Name), q) && !strings.Contains(strings.ToLower(e.Position), q) {
			return false
		}
	}
	if filter.Department != "" && e.Department != filter.Department {
		return false
	}
	if filter.Tier != "" && string(metrics.ClassifyPerformance(e.Performance)) != filter.Tier {
		return false
	}
	return true
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		if matches(e, filter) {
			responses = append(responses, mapEmployeeToResponse(e))
		}
	}
	return responses, nil
}

// ListDepartments implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListDepartments(ctx context.Context) ([]string, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	seen := make(map[string]bool)
	departments := make([]string, 0)
	for _, e := range employees {
		if !seen[e.Department] {
			seen[e.Department] = true
			departments = append(departments, e.Department)
		}
	}
	return departments, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id int) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(e), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, req.ToEntity())
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return mapEmployeeToResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated := req.ToEntity()
	if err := s.employeeRepo.Update(ctx, updated); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	// Re-read so the response carries the normalized record
	stored, err := s.employeeRepo.GetByID(ctx, updated.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(stored), nil
}

// GetScorecard implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetScorecard(ctx context.Context, id int) (employee.ScorecardResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.ScorecardResponse{}, err
	}

	entries, err := s.attendanceRepo.ListByEmployee(ctx, id)
	if err != nil {
		return employee.ScorecardResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	tasks, err := s.taskRepo.ListByAssignee(ctx, id)
	if err != nil {
		return employee.ScorecardResponse{}, fmt.Errorf("failed to list tasks: %w", err)
	}
	workEntries, err := s.workEntryRepo.ListByEmployee(ctx, id)
	if err != nil {
		return employee.ScorecardResponse{}, fmt.Errorf("failed to list work entries: %w", err)
	}

	counts := metrics.AttendanceFor(entries, id)
	breakdown := metrics.TaskBreakdownFor(tasks, id, s.now.Today())
	hours := metrics.WorkHoursFor(workEntries, id)

	return employee.ScorecardResponse{
		Employee:              mapEmployeeToResponse(e),
		TaskCompletionPercent: metrics.EmployeeTaskCompletion(e),
		LiveAttendanceRate:    counts.Rate(),
		AttendanceEntries:     counts.Total(),
		Tasks: employee.TaskBreakdownResponse{
			CompletedOnTime: breakdown.CompletedOnTime,
			CompletedLate:   breakdown.CompletedLate,
			InProgress:      breakdown.InProgress,
			Pending:         breakdown.Pending,
			Overdue:         breakdown.Overdue,
			Total:           breakdown.Total,
		},
		WorkHours: employee.WorkHoursResponse{
			Entries:      hours.Entries,
			TotalHours:   hours.Total.StringFixed(1),
			AverageHours: hours.Average().StringFixed(1),
		},
	}, nil
}
