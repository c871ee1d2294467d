package workentry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/workentry"
	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/clock"
	"github.com/cmlabs-hris/team-tracker-go/internal/service/metrics"
)

type WorkEntryServiceImpl struct {
	workEntryRepo workentry.WorkEntryRepository
	employeeRepo  employee.EmployeeRepository
	now           clock.Clock
}

func NewWorkEntryService(
	workEntryRepo workentry.WorkEntryRepository,
	employeeRepo employee.EmployeeRepository,
	now clock.Clock,
) workentry.WorkEntryService {
	return &WorkEntryServiceImpl{
		workEntryRepo: workEntryRepo,
		employeeRepo:  employeeRepo,
		now:           now,
	}
}

func mapWorkEntryToResponse(w workentry.WorkEntry, employees []employee.Employee) workentry.WorkEntryResponse {
	return workentry.WorkEntryResponse{
		ID:           w.ID,
		EmployeeID:   w.EmployeeID,
		EmployeeName: metrics.EmployeeName(employees, w.EmployeeID),
		Date:         w.Date.Format(clock.DateLayout),
		Tasks:        append([]string{}, w.Tasks...),
		HoursWorked:  w.HoursWorked.StringFixed(1),
		Description:  w.Description,
		Status:       string(w.Status),
		SubmittedAt:  w.SubmittedAt.Format(time.RFC3339),
	}
}

func (s *WorkEntryServiceImpl) respond(ctx context.Context, w workentry.WorkEntry) (workentry.WorkEntryResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return workentry.WorkEntryResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}
	return mapWorkEntryToResponse(w, employees), nil
}

// AddWorkEntry implements workentry.WorkEntryService.
func (s *WorkEntryServiceImpl) AddWorkEntry(ctx context.Context, req workentry.CreateWorkEntryRequest) (workentry.WorkEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return workentry.WorkEntryResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return workentry.WorkEntryResponse{}, workentry.ErrEmployeeNotFound
		}
		return workentry.WorkEntryResponse{}, err
	}

	now := s.now()
	if req.Date == "" {
		req.ParsedDate = clock.DateOf(now)
	}

	created, err := s.workEntryRepo.Create(ctx, req.ToEntity(now))
	if err != nil {
		return workentry.WorkEntryResponse{}, fmt.Errorf("failed to create work entry: %w", err)
	}
	return s.respond(ctx, created)
}

// ApproveWorkEntry implements workentry.WorkEntryService.
func (s *WorkEntryServiceImpl) ApproveWorkEntry(ctx context.Context, id int) (workentry.WorkEntryResponse, error) {
	approved, err := s.workEntryRepo.Approve(ctx, id)
	if err != nil {
		return workentry.WorkEntryResponse{}, fmt.Errorf("failed to approve work entry: %w", err)
	}
	return s.respond(ctx, approved)
}

// ListWorkEntries implements workentry.WorkEntryService. A zero employeeID
// lists every entry.
func (s *WorkEntryServiceImpl) ListWorkEntries(ctx context.Context, employeeID int) ([]workentry.WorkEntryResponse, error) {
	var (
		entries []workentry.WorkEntry
		err     error
	)
	if employeeID > 0 {
		entries, err = s.workEntryRepo.ListByEmployee(ctx, employeeID)
	} else {
		entries, err = s.workEntryRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list work entries: %w", err)
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]workentry.WorkEntryResponse, 0, len(entries))
	for _, w := range entries {
		responses = append(responses, mapWorkEntryToResponse(w, employees))
	}
	return responses, nil
}

// GetHoursSummary implements workentry.WorkEntryService. Employees without
// entries are left out.
func (s *WorkEntryServiceImpl) GetHoursSummary(ctx context.Context) ([]workentry.HoursSummaryItem, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	entries, err := s.workEntryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work entries: %w", err)
	}

	items := make([]workentry.HoursSummaryItem, 0)
	for _, e := range employees {
		hours := metrics.WorkHoursFor(entries, e.ID)
		if hours.Entries == 0 {
			continue
		}
		items = append(items, workentry.HoursSummaryItem{
			EmployeeID:   e.ID,
			EmployeeName: e.Name,
			Entries:      hours.Entries,
			TotalHours:   hours.Total.StringFixed(1),
			AverageHours: hours.Average().StringFixed(1),
		})
	}
	return items, nil
}
