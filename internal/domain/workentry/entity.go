package workentry

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkEntry is a free-form daily log of completed work.
type WorkEntry struct {
	ID          int
	EmployeeID  int
	Date        time.Time
	Tasks       []string
	HoursWorked decimal.Decimal
	Description string
	Status      Status
	SubmittedAt time.Time
}

type Status string

const (
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusPending   Status = "pending"
)

// MaxHoursWorked bounds a single day's log.
var MaxHoursWorked = decimal.NewFromInt(12)

// Clone returns a copy that shares no slice memory with w.
func (w WorkEntry) Clone() WorkEntry {
	w.Tasks = append([]string(nil), w.Tasks...)
	return w
}
