package memory

import (
	"context"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/event"
)

type employeeRepositoryImpl struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepositoryImpl{store: store}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int) (employee.Employee, error) {
	release := r.store.read(ctx)
	defer release()

	for _, e := range r.store.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	release := r.store.read(ctx)
	defer release()

	return append([]employee.Employee(nil), r.store.employees...), nil
}

// Create implements employee.EmployeeRepository. The new id is one greater
// than the current maximum, or 1 for an empty collection. Records with blank
// required fields are not added.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	if !newEmployee.HasRequiredFields() {
		return employee.Employee{}, employee.ErrMissingRequiredField
	}

	release := r.store.write(ctx)
	maxID := 0
	for _, e := range r.store.employees {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	newEmployee = newEmployee.Normalize()
	newEmployee.ID = maxID + 1
	r.store.employees = append(r.store.employees, newEmployee)
	release()

	r.store.emit(ctx, event.CollectionEmployees, event.ActionCreated, itoa(newEmployee.ID))
	return newEmployee, nil
}

// Update implements employee.EmployeeRepository. Unknown ids and records with
// blank required fields leave the collection untouched.
func (r *employeeRepositoryImpl) Update(ctx context.Context, updated employee.Employee) error {
	if !updated.HasRequiredFields() {
		return employee.ErrMissingRequiredField
	}

	release := r.store.write(ctx)
	idx := -1
	for i, e := range r.store.employees {
		if e.ID == updated.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		release()
		return employee.ErrEmployeeNotFound
	}
	r.store.employees[idx] = updated.Normalize()
	release()

	r.store.emit(ctx, event.CollectionEmployees, event.ActionUpdated, itoa(updated.ID))
	return nil
}
