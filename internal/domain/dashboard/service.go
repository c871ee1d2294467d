package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard returns the combined team overview using goroutines
	GetDashboard(ctx context.Context) (*DashboardResponse, error)
}
