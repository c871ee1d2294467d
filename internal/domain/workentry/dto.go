package workentry

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// TaskList accepts either a JSON array of strings or a single
// comma-separated string.
type TaskList []string

func (l *TaskList) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		var joined string
		if err := json.Unmarshal(data, &joined); err != nil {
			return err
		}
		raw = strings.Split(joined, ",")
	}

	out := make(TaskList, 0, len(raw))
	for _, t := range raw {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	*l = out
	return nil
}

type CreateWorkEntryRequest struct {
	EmployeeID  int             `json:"employee_id" validate:"gt=0"`
	Date        string          `json:"date,omitempty"`
	Tasks       TaskList        `json:"tasks"`
	HoursWorked decimal.Decimal `json:"hours_worked"`
	Description string          `json:"description" validate:"required"`

	ParsedDate time.Time `json:"-"`
}

// Validate checks the request. An empty date is left for the service to
// default to today.
func (r *CreateWorkEntryRequest) Validate() error {
	r.Description = strings.TrimSpace(r.Description)
	errs := validator.Struct(r)

	if len(r.Tasks) == 0 {
		errs.Add("tasks", "tasks is required")
	}
	if r.HoursWorked.IsNegative() {
		errs.Add("hours_worked", "hours_worked must be at least 0")
	} else if r.HoursWorked.GreaterThan(MaxHoursWorked) {
		errs.Add("hours_worked", "hours_worked must be at most 12")
	}
	if r.Date != "" {
		date, ok := validator.IsValidDate(r.Date)
		if !ok {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		}
		r.ParsedDate = date
	}
	return errs.Err()
}

func (r CreateWorkEntryRequest) ToEntity(submittedAt time.Time) WorkEntry {
	return WorkEntry{
		EmployeeID:  r.EmployeeID,
		Date:        r.ParsedDate,
		Tasks:       append([]string(nil), r.Tasks...),
		HoursWorked: r.HoursWorked,
		Description: r.Description,
		Status:      StatusSubmitted,
		SubmittedAt: submittedAt,
	}
}

type WorkEntryResponse struct {
	ID           int      `json:"id"`
	EmployeeID   int      `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	Date         string   `json:"date"`
	Tasks        []string `json:"tasks"`
	HoursWorked  string   `json:"hours_worked"`
	Description  string   `json:"description"`
	Status       string   `json:"status"`
	SubmittedAt  string   `json:"submitted_at"`
}

type HoursSummaryItem struct {
	EmployeeID   int    `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Entries      int    `json:"entries"`
	TotalHours   string `json:"total_hours"`
	AverageHours string `json:"average_hours"`
}
