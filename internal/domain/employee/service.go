package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees lists employees matching the filter in insertion order
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error)

	// ListDepartments returns the distinct departments in first-seen order
	ListDepartments(ctx context.Context) ([]string, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id int) (EmployeeResponse, error)

	// CreateEmployee validates and appends a new employee
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee replaces an existing employee record
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// GetScorecard combines stored summary fields with live derived metrics
	GetScorecard(ctx context.Context, id int) (ScorecardResponse, error)
}
