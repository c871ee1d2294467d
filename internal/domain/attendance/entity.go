package attendance

import (
	"time"
)

// Entry is one day's presence record for one employee.
type Entry struct {
	ID         string
	EmployeeID int
	Date       time.Time
	Status     Status
	TimeIn     string
	TimeOut    string
	Notes      *string
}

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
)

// NoTime marks time_in/time_out of an absent entry.
const NoTime = "-"

// Default clock times used when an entry is recorded without explicit times.
const (
	DefaultTimeIn     = "09:00"
	DefaultLateTimeIn = "09:15"
	DefaultTimeOut    = "17:00"
)

// Attended reports whether the status counts towards the attendance rate.
// Late arrivals count as attended.
func (s Status) Attended() bool {
	return s == StatusPresent || s == StatusLate
}

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusLate, StatusAbsent:
		return true
	}
	return false
}
