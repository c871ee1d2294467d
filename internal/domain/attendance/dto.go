package attendance

import (
	"time"

	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// entryFields are shared by every write request.
type entryFields struct {
	EmployeeID int     `json:"employee_id" validate:"gt=0"`
	Date       string  `json:"date" validate:"required"`
	Status     string  `json:"status" validate:"required,oneof=present late absent"`
	TimeIn     string  `json:"time_in,omitempty"`
	TimeOut    string  `json:"time_out,omitempty"`
	Notes      *string `json:"notes,omitempty"`

	ParsedDate time.Time `json:"-"`
}

// normalize validates the shared fields and fills times: absent entries get
// NoTime, omitted times fall back to the office defaults for the status.
func (f *entryFields) normalize() validator.ValidationErrors {
	errs := validator.Struct(f)

	if f.Date != "" {
		date, ok := validator.IsValidDate(f.Date)
		if !ok {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		}
		f.ParsedDate = date
	}

	status := Status(f.Status)
	if status == StatusAbsent {
		f.TimeIn = NoTime
		f.TimeOut = NoTime
		return errs
	}

	if f.TimeIn == "" {
		f.TimeIn = DefaultTimeIn
		if status == StatusLate {
			f.TimeIn = DefaultLateTimeIn
		}
	}
	if f.TimeOut == "" {
		f.TimeOut = DefaultTimeOut
	}
	if !validator.IsValidClock(f.TimeIn) {
		errs.Add("time_in", "time_in must be in HH:MM format")
	}
	if !validator.IsValidClock(f.TimeOut) {
		errs.Add("time_out", "time_out must be in HH:MM format")
	}
	return errs
}

func (f entryFields) toEntity(id string) Entry {
	return Entry{
		ID:         id,
		EmployeeID: f.EmployeeID,
		Date:       f.ParsedDate,
		Status:     Status(f.Status),
		TimeIn:     f.TimeIn,
		TimeOut:    f.TimeOut,
		Notes:      f.Notes,
	}
}

type CreateAttendanceRequest struct {
	ID string `json:"id,omitempty"`
	entryFields
}

func (r *CreateAttendanceRequest) Validate() error {
	return r.normalize().Err()
}

func (r CreateAttendanceRequest) ToEntity() Entry {
	return r.toEntity(r.ID)
}

type UpdateAttendanceRequest struct {
	ID string `json:"-"`
	entryFields
}

func (r *UpdateAttendanceRequest) Validate() error {
	errs := r.normalize()
	if validator.IsEmpty(r.ID) {
		errs.Add("id", ErrMissingID.Error())
	}
	return errs.Err()
}

func (r UpdateAttendanceRequest) ToEntity() Entry {
	return r.toEntity(r.ID)
}

// RecordAttendanceRequest marks an employee for a date, replacing any entry
// already recorded for that pair.
type RecordAttendanceRequest struct {
	entryFields
}

func (r *RecordAttendanceRequest) Validate() error {
	return r.normalize().Err()
}

// ToEntity builds the entry under id, which is the existing entry's id when
// one is being replaced.
func (r RecordAttendanceRequest) ToEntity(id string) Entry {
	return r.toEntity(id)
}

type AttendanceFilter struct {
	Date       string
	EmployeeID int
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.Date != "" {
		if _, ok := validator.IsValidDate(f.Date); !ok {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		}
	}
	if f.EmployeeID < 0 {
		errs.Add("employee_id", "employee_id must be a positive integer")
	}
	return errs.Err()
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   int     `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	TimeIn       string  `json:"time_in"`
	TimeOut      string  `json:"time_out"`
	Notes        *string `json:"notes,omitempty"`
}

// DailySummaryResponse counts the entries recorded for one day
type DailySummaryResponse struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Late    int    `json:"late"`
	Absent  int    `json:"absent"`
	Total   int    `json:"total"`
}

type AttendanceRateResponse struct {
	EmployeeID int `json:"employee_id"`
	Entries    int `json:"entries"`
	Present    int `json:"present"`
	Late       int `json:"late"`
	Absent     int `json:"absent"`
	Rate       int `json:"rate"`
}
