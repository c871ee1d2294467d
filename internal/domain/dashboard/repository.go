package dashboard

import (
	"context"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/task"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/workentry"
)

// Snapshot is a consistent copy of every collection taken at one instant.
// It is also the shape of the fixture seed.
type Snapshot struct {
	Employees   []employee.Employee
	Attendance  []attendance.Entry
	Tasks       []task.Task
	WorkEntries []workentry.WorkEntry
}

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	// Snapshot copies all collections under a single read lock
	Snapshot(ctx context.Context) (Snapshot, error)
}
