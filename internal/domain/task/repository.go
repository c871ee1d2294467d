package task

import (
	"context"
	"time"
)

type TaskRepository interface {
	GetByID(ctx context.Context, id int) (Task, error)
	List(ctx context.Context) ([]Task, error)
	ListByAssignee(ctx context.Context, employeeID int) ([]Task, error)
	Create(ctx context.Context, newTask Task) (Task, error)
	// UpdateStatus sets the status; moving to a non-completed status clears
	// completion data.
	UpdateStatus(ctx context.Context, id int, status Status) (Task, error)
	// Complete records the completion kind and date.
	Complete(ctx context.Context, id int, kind CompletionType, completedOn time.Time) (Task, error)
}
