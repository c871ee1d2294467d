package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/report"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/task"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/workentry"
	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrMissingRequiredField):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance entry not found")
	case errors.Is(err, attendance.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, attendance.ErrAttendanceIDExists):
		Conflict(w, "Attendance entry id already exists")

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrAssigneeNotFound):
		NotFound(w, "Assigned employee not found")
	case errors.Is(err, task.ErrTaskAlreadyCompleted):
		Conflict(w, "Task already completed")
	case errors.Is(err, task.ErrInvalidStatusTransition):
		Conflict(w, err.Error())

	// Work entry domain errors
	case errors.Is(err, workentry.ErrWorkEntryNotFound):
		NotFound(w, "Work entry not found")
	case errors.Is(err, workentry.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, workentry.ErrInvalidStatusTransition):
		Conflict(w, err.Error())

	// Report domain errors
	case errors.Is(err, report.ErrUnknownDepartment):
		NotFound(w, "Department not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
