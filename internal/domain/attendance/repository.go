package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	GetByID(ctx context.Context, id string) (Entry, error)
	List(ctx context.Context) ([]Entry, error)
	ListByDate(ctx context.Context, date time.Time) ([]Entry, error)
	ListByEmployee(ctx context.Context, employeeID int) ([]Entry, error)
	// FindByEmployeeAndDate returns ErrAttendanceNotFound when no entry exists.
	FindByEmployeeAndDate(ctx context.Context, employeeID int, date time.Time) (Entry, error)
	// Create appends the entry. It performs no per-day deduplication.
	Create(ctx context.Context, entry Entry) (Entry, error)
	// Update replaces the entry with the same id.
	Update(ctx context.Context, entry Entry) error
}
