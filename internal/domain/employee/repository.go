package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id int) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	// Create assigns the next id and appends the record.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	// Update replaces the record with the same id.
	Update(ctx context.Context, updated Employee) error
}
