package workentry

import "context"

type WorkEntryService interface {
	AddWorkEntry(ctx context.Context, req CreateWorkEntryRequest) (WorkEntryResponse, error)
	ApproveWorkEntry(ctx context.Context, id int) (WorkEntryResponse, error)
	ListWorkEntries(ctx context.Context, employeeID int) ([]WorkEntryResponse, error)
	// GetHoursSummary reports per-employee logged hours
	GetHoursSummary(ctx context.Context) ([]HoursSummaryItem, error)
}
