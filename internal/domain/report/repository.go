package report

import (
	"context"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/dashboard"
)

// ReportRepository defines the interface for report data access
type ReportRepository interface {
	// Snapshot copies every collection at one instant so all report sheets
	// describe the same state
	Snapshot(ctx context.Context) (dashboard.Snapshot, error)
}
