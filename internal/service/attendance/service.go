package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/clock"
	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/validator"
	"github.com/cmlabs-hris/team-tracker-go/internal/repository/memory"
	"github.com/cmlabs-hris/team-tracker-go/internal/service/metrics"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	store          *memory.Store
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	now            clock.Clock
}

func NewAttendanceService(
	store *memory.Store,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	now clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		store:          store,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            now,
	}
}

// newEntryID builds "<employee>-<date>-<uuid>".
func newEntryID(employeeID int, date time.Time) string {
	return fmt.Sprintf("%d-%s-%s", employeeID, date.Format(clock.DateLayout), uuid.NewString())
}

func mapEntryToResponse(e attendance.Entry, employees []employee.Employee) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		EmployeeName: metrics.EmployeeName(employees, e.EmployeeID),
		Date:         e.Date.Format(clock.DateLayout),
		Status:       string(e.Status),
		TimeIn:       e.TimeIn,
		TimeOut:      e.TimeOut,
		Notes:        e.Notes,
	}
}

// ensureEmployee checks the employee exists and returns the roster for name
// resolution.
func (s *AttendanceServiceImpl) ensureEmployee(ctx context.Context, employeeID int) ([]employee.Employee, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, attendance.ErrEmployeeNotFound
		}
		return nil, err
	}
	return s.employeeRepo.List(ctx)
}

// AddAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) AddAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	employees, err := s.ensureEmployee(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	entry := req.ToEntity()
	if validator.IsEmpty(entry.ID) {
		entry.ID = newEntryID(entry.EmployeeID, entry.Date)
	}

	created, err := s.attendanceRepo.Create(ctx, entry)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return mapEntryToResponse(created, employees), nil
}

// UpdateAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	employees, err := s.ensureEmployee(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	entry := req.ToEntity()
	if err := s.attendanceRepo.Update(ctx, entry); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	stored, err := s.attendanceRepo.GetByID(ctx, entry.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return mapEntryToResponse(stored, employees), nil
}

// RecordAttendance implements attendance.AttendanceService. The lookup and
// the write run in one store transaction, so concurrent calls for the same
// employee and date still leave a single entry.
func (s *AttendanceServiceImpl) RecordAttendance(ctx context.Context, req attendance.RecordAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	employees, err := s.ensureEmployee(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var recorded attendance.Entry
	err = s.store.WithTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.attendanceRepo.FindByEmployeeAndDate(ctx, req.EmployeeID, req.ParsedDate)
		switch {
		case err == nil:
			entry := req.ToEntity(existing.ID)
			if err := s.attendanceRepo.Update(ctx, entry); err != nil {
				return err
			}
			recorded, err = s.attendanceRepo.GetByID(ctx, entry.ID)
			return err
		case errors.Is(err, attendance.ErrAttendanceNotFound):
			recorded, err = s.attendanceRepo.Create(ctx, req.ToEntity(newEntryID(req.EmployeeID, req.ParsedDate)))
			return err
		default:
			return err
		}
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to record attendance: %w", err)
	}
	return mapEntryToResponse(recorded, employees), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var (
		entries []attendance.Entry
		err     error
	)
	switch {
	case filter.EmployeeID > 0:
		entries, err = s.attendanceRepo.ListByEmployee(ctx, filter.EmployeeID)
	case filter.Date != "":
		date, _ := validator.IsValidDate(filter.Date)
		entries, err = s.attendanceRepo.ListByDate(ctx, date)
	default:
		entries, err = s.attendanceRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(entries))
	for _, e := range entries {
		if filter.Date != "" && e.Date.Format(clock.DateLayout) != filter.Date {
			continue
		}
		responses = append(responses, mapEntryToResponse(e, employees))
	}
	return responses, nil
}

// GetDailySummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDailySummary(ctx context.Context, date string) (attendance.DailySummaryResponse, error) {
	day := s.now.Today()
	if date != "" {
		parsed, ok := validator.IsValidDate(date)
		if !ok {
			var errs validator.ValidationErrors
			errs.Add("date", "date must be in YYYY-MM-DD format")
			return attendance.DailySummaryResponse{}, errs
		}
		day = parsed
	}

	entries, err := s.attendanceRepo.ListByDate(ctx, day)
	if err != nil {
		return attendance.DailySummaryResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	counts := metrics.DailyAttendance(entries, day)
	return attendance.DailySummaryResponse{
		Date:    day.Format(clock.DateLayout),
		Present: counts.Present,
		Late:    counts.Late,
		Absent:  counts.Absent,
		Total:   counts.Total(),
	}, nil
}

// GetAttendanceRate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendanceRate(ctx context.Context, employeeID int) (attendance.AttendanceRateResponse, error) {
	if _, err := s.ensureEmployee(ctx, employeeID); err != nil {
		return attendance.AttendanceRateResponse{}, err
	}

	entries, err := s.attendanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceRateResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	counts := metrics.AttendanceFor(entries, employeeID)
	return attendance.AttendanceRateResponse{
		EmployeeID: employeeID,
		Entries:    counts.Total(),
		Present:    counts.Present,
		Late:       counts.Late,
		Absent:     counts.Absent,
		Rate:       counts.Rate(),
	}, nil
}
