package workentry

import "context"

type WorkEntryRepository interface {
	GetByID(ctx context.Context, id int) (WorkEntry, error)
	List(ctx context.Context) ([]WorkEntry, error)
	ListByEmployee(ctx context.Context, employeeID int) ([]WorkEntry, error)
	Create(ctx context.Context, entry WorkEntry) (WorkEntry, error)
	// Approve moves a submitted entry to approved.
	Approve(ctx context.Context, id int) (WorkEntry, error)
}
