package memory

import (
	"context"
	"time"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/event"
	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/clock"
)

type attendanceRepositoryImpl struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{store: store}
}

func (r *attendanceRepositoryImpl) filter(ctx context.Context, keep func(attendance.Entry) bool) []attendance.Entry {
	release := r.store.read(ctx)
	defer release()

	var out []attendance.Entry
	for _, e := range r.store.attendance {
		if keep(e) {
			out = append(out, e)
		}
	}
	return cloneAttendance(out)
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Entry, error) {
	found := r.filter(ctx, func(e attendance.Entry) bool { return e.ID == id })
	if len(found) == 0 {
		return attendance.Entry{}, attendance.ErrAttendanceNotFound
	}
	return found[0], nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.Entry, error) {
	return r.filter(ctx, func(attendance.Entry) bool { return true }), nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Entry, error) {
	day := clock.DateOf(date)
	return r.filter(ctx, func(e attendance.Entry) bool {
		return clock.DateOf(e.Date).Equal(day)
	}), nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int) ([]attendance.Entry, error) {
	return r.filter(ctx, func(e attendance.Entry) bool { return e.EmployeeID == employeeID }), nil
}

// FindByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) FindByEmployeeAndDate(ctx context.Context, employeeID int, date time.Time) (attendance.Entry, error) {
	day := clock.DateOf(date)
	found := r.filter(ctx, func(e attendance.Entry) bool {
		return e.EmployeeID == employeeID && clock.DateOf(e.Date).Equal(day)
	})
	if len(found) == 0 {
		return attendance.Entry{}, attendance.ErrAttendanceNotFound
	}
	return found[0], nil
}

// Create implements attendance.AttendanceRepository. Entries are keyed by id;
// a second entry for the same employee and date is accepted.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, entry attendance.Entry) (attendance.Entry, error) {
	if entry.ID == "" {
		return attendance.Entry{}, attendance.ErrMissingID
	}
	entry = normalizeEntry(entry)

	release := r.store.write(ctx)
	for _, e := range r.store.attendance {
		if e.ID == entry.ID {
			release()
			return attendance.Entry{}, attendance.ErrAttendanceIDExists
		}
	}
	r.store.attendance = append(r.store.attendance, cloneAttendance([]attendance.Entry{entry})[0])
	release()

	r.store.emit(ctx, event.CollectionAttendance, event.ActionCreated, entry.ID)
	return entry, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, entry attendance.Entry) error {
	entry = normalizeEntry(entry)

	release := r.store.write(ctx)
	idx := -1
	for i, e := range r.store.attendance {
		if e.ID == entry.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		release()
		return attendance.ErrAttendanceNotFound
	}
	r.store.attendance[idx] = cloneAttendance([]attendance.Entry{entry})[0]
	release()

	r.store.emit(ctx, event.CollectionAttendance, event.ActionUpdated, entry.ID)
	return nil
}

// normalizeEntry enforces the "-" sentinel for absent entries and stores the
// date without a time of day.
func normalizeEntry(e attendance.Entry) attendance.Entry {
	e.Date = clock.DateOf(e.Date)
	if e.Status == attendance.StatusAbsent {
		e.TimeIn = attendance.NoTime
		e.TimeOut = attendance.NoTime
	}
	return e
}
