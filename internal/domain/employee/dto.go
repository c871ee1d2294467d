package employee

import (
	"strings"

	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name           string `json:"name" validate:"required"`
	Position       string `json:"position" validate:"required"`
	Department     string `json:"department" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Avatar         string `json:"avatar,omitempty"`
	Performance    int    `json:"performance" validate:"gte=0,lte=100"`
	Attendance     int    `json:"attendance" validate:"gte=0,lte=100"`
	TasksCompleted int    `json:"tasks_completed" validate:"gte=0"`
	TotalTasks     int    `json:"total_tasks" validate:"gte=0"`
	LateComings    int    `json:"late_comings" validate:"gte=0"`
	Status         string `json:"status,omitempty" validate:"omitempty,oneof=active inactive on-leave"`
}

func (r *CreateEmployeeRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Position = strings.TrimSpace(r.Position)
	r.Department = strings.TrimSpace(r.Department)
	r.Email = strings.TrimSpace(r.Email)

	errs := validator.Struct(r)
	if r.TasksCompleted > r.TotalTasks {
		errs.Add("tasks_completed", "tasks_completed must not exceed total_tasks")
	}
	return errs.Err()
}

func (r CreateEmployeeRequest) ToEntity() Employee {
	status := Status(r.Status)
	if status == "" {
		status = StatusActive
	}
	avatar := r.Avatar
	if avatar == "" {
		avatar = DefaultAvatar
	}
	return Employee{
		Name:           r.Name,
		Position:       r.Position,
		Department:     r.Department,
		Email:          r.Email,
		Avatar:         avatar,
		Performance:    r.Performance,
		Attendance:     r.Attendance,
		TasksCompleted: r.TasksCompleted,
		TotalTasks:     r.TotalTasks,
		LateComings:    r.LateComings,
		Status:         status,
	}
}

// UpdateEmployeeRequest carries the full edited record; ID comes from the path.
type UpdateEmployeeRequest struct {
	ID int `json:"-"`
	CreateEmployeeRequest
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.ID <= 0 {
		errs.Add("id", "id must be a positive integer")
	}
	if err := r.CreateEmployeeRequest.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}
	return errs.Err()
}

func (r UpdateEmployeeRequest) ToEntity() Employee {
	e := r.CreateEmployeeRequest.ToEntity()
	e.ID = r.ID
	return e
}

// EmployeeFilter narrows the employee list; zero values match everything.
type EmployeeFilter struct {
	Query      string
	Department string
	Tier       string
}

func (f *EmployeeFilter) Validate() error {
	f.Query = strings.TrimSpace(f.Query)
	if f.Department == "all" {
		f.Department = ""
	}
	if f.Tier == "all" {
		f.Tier = ""
	}

	var errs validator.ValidationErrors
	if f.Tier != "" && !validator.IsInSlice(f.Tier, []string{
		string(TierExcellent), string(TierGood), string(TierNeedsImprovement),
	}) {
		errs.Add("tier", ErrInvalidTier.Error())
	}
	return errs.Err()
}

type EmployeeResponse struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Position       string `json:"position"`
	Department     string `json:"department"`
	Email          string `json:"email"`
	Avatar         string `json:"avatar"`
	Performance    int    `json:"performance"`
	Attendance     int    `json:"attendance"`
	TasksCompleted int    `json:"tasks_completed"`
	TotalTasks     int    `json:"total_tasks"`
	LateComings    int    `json:"late_comings"`
	Status         string `json:"status"`
	Tier           string `json:"tier"`
}

type TaskBreakdownResponse struct {
	CompletedOnTime int `json:"completed_on_time"`
	CompletedLate   int `json:"completed_late"`
	InProgress      int `json:"in_progress"`
	Pending         int `json:"pending"`
	Overdue         int `json:"overdue"`
	Total           int `json:"total"`
}

type WorkHoursResponse struct {
	Entries      int    `json:"entries"`
	TotalHours   string `json:"total_hours"`
	AverageHours string `json:"average_hours"`
}

// ScorecardResponse puts the stored summary next to values derived from
// attendance entries, tasks and work entries. Derived values are never
// written back to the employee record.
type ScorecardResponse struct {
	Employee              EmployeeResponse      `json:"employee"`
	TaskCompletionPercent int                   `json:"task_completion_percent"`
	LiveAttendanceRate    int                   `json:"live_attendance_rate"`
	AttendanceEntries     int                   `json:"attendance_entries"`
	Tasks                 TaskBreakdownResponse `json:"tasks"`
	WorkHours             WorkHoursResponse     `json:"work_hours"`
}
