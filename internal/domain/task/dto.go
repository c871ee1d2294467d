package task

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/validator"
)

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	AssignedTo  int    `json:"assigned_to" validate:"gt=0"`
	AssignedBy  string `json:"assigned_by,omitempty"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	DueDate     string `json:"due_date" validate:"required"`

	ParsedDueDate time.Time `json:"-"`
}

func (r *CreateTaskRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	errs := validator.Struct(r)

	if r.DueDate != "" {
		due, ok := validator.IsValidDate(r.DueDate)
		if !ok {
			errs.Add("due_date", "due_date must be in YYYY-MM-DD format")
		}
		r.ParsedDueDate = due
	}
	if r.Priority == "" {
		r.Priority = string(PriorityMedium)
	}
	if validator.IsEmpty(r.AssignedBy) {
		r.AssignedBy = DefaultAssignedBy
	}
	return errs.Err()
}

// ToEntity builds a pending task created on the given day.
func (r CreateTaskRequest) ToEntity(createdOn time.Time) Task {
	return Task{
		Title:       r.Title,
		Description: r.Description,
		AssignedTo:  r.AssignedTo,
		AssignedBy:  r.AssignedBy,
		Priority:    Priority(r.Priority),
		Status:      StatusPending,
		DueDate:     r.ParsedDueDate,
		CreatedDate: createdOn,
	}
}

type UpdateTaskStatusRequest struct {
	ID     int    `json:"-"`
	Status string `json:"status" validate:"required,oneof=pending in-progress completed-on-time completed-late overdue"`
}

func (r *UpdateTaskStatusRequest) Validate() error {
	errs := validator.Struct(r)
	if r.ID <= 0 {
		errs.Add("id", "id must be a positive integer")
	}
	return errs.Err()
}

type CompleteTaskRequest struct {
	ID         int    `json:"-"`
	Completion string `json:"completion" validate:"required,oneof=on-time late"`
}

func (r *CompleteTaskRequest) Validate() error {
	errs := validator.Struct(r)
	if r.ID <= 0 {
		errs.Add("id", "id must be a positive integer")
	}
	return errs.Err()
}

type TaskFilter struct {
	EmployeeID int
	Status     string
}

func (f *TaskFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.EmployeeID < 0 {
		errs.Add("employee_id", "employee_id must be a positive integer")
	}
	if f.Status != "" && !validator.IsInSlice(f.Status, []string{
		string(StatusPending), string(StatusInProgress), string(StatusCompletedOnTime),
		string(StatusCompletedLate), string(StatusOverdue),
	}) {
		errs.Add("status", "unknown task status")
	}
	return errs.Err()
}

type TaskResponse struct {
	ID              int     `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	AssignedTo      int     `json:"assigned_to"`
	AssignedToName  string  `json:"assigned_to_name"`
	AssignedBy      string  `json:"assigned_by"`
	Priority        string  `json:"priority"`
	Status          string  `json:"status"`
	EffectiveStatus string  `json:"effective_status"`
	IsOverdue       bool    `json:"is_overdue"`
	DueDate         string  `json:"due_date"`
	CreatedDate     string  `json:"created_date"`
	CompletedDate   *string `json:"completed_date,omitempty"`
	CompletionType  *string `json:"completion_type,omitempty"`
}

// DistributionItem is one row of the per-employee task overview
type DistributionItem struct {
	EmployeeID      int    `json:"employee_id"`
	EmployeeName    string `json:"employee_name"`
	Position        string `json:"position"`
	CompletedOnTime int    `json:"completed_on_time"`
	CompletedLate   int    `json:"completed_late"`
	InProgress      int    `json:"in_progress"`
	Pending         int    `json:"pending"`
	Overdue         int    `json:"overdue"`
	Total           int    `json:"total"`
}
