// Package metrics holds the derived statistics shown on the dashboard. Every
// function is pure: it reads the snapshot it is given and nothing else, so
// results are recomputed on demand and never stored.
package metrics

import (
	"math"
	"time"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/attendance"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/task"
	"github.com/cmlabs-hris/team-tracker-go/internal/domain/workentry"
	"github.com/cmlabs-hris/team-tracker-go/internal/pkg/clock"
	"github.com/shopspring/decimal"
)

// AveragePerformance is the arithmetic mean of employee performance.
// An empty collection yields 0.
func AveragePerformance(employees []employee.Employee) float64 {
	if len(employees) == 0 {
		return 0
	}
	var sum int
	for _, e := range employees {
		sum += e.Performance
	}
	return float64(sum) / float64(len(employees))
}

// AverageAttendance is the arithmetic mean of the stored attendance
// percentage. An empty collection yields 0.
func AverageAttendance(employees []employee.Employee) float64 {
	if len(employees) == 0 {
		return 0
	}
	var sum int
	for _, e := range employees {
		sum += e.Attendance
	}
	return float64(sum) / float64(len(employees))
}

// TaskCompletionRate is sum(tasks_completed)/sum(total_tasks) as a
// percentage, 0 when no tasks are counted.
func TaskCompletionRate(employees []employee.Employee) float64 {
	var completed, total int
	for _, e := range employees {
		completed += e.TasksCompleted
		total += e.TotalTasks
	}
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

// EmployeeTaskCompletion is the rounded completion percentage of a single
// employee, 0 when they have no tasks.
func EmployeeTaskCompletion(e employee.Employee) int {
	if e.TotalTasks == 0 {
		return 0
	}
	return Round(float64(e.TasksCompleted) / float64(e.TotalTasks) * 100)
}

func TotalLateComings(employees []employee.Employee) int {
	var total int
	for _, e := range employees {
		total += e.LateComings
	}
	return total
}

// AttendanceCounts tallies entries by status.
type AttendanceCounts struct {
	Present int
	Late    int
	Absent  int
}

func (c AttendanceCounts) Total() int {
	return c.Present + c.Late + c.Absent
}

// Rate is the rounded percentage of attended (present or late) entries,
// 0 when there are none.
func (c AttendanceCounts) Rate() int {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return Round(float64(c.Present+c.Late) / float64(total) * 100)
}

func countAttendance(entries []attendance.Entry, keep func(attendance.Entry) bool) AttendanceCounts {
	var c AttendanceCounts
	for _, e := range entries {
		if !keep(e) {
			continue
		}
		switch e.Status {
		case attendance.StatusPresent:
			c.Present++
		case attendance.StatusLate:
			c.Late++
		case attendance.StatusAbsent:
			c.Absent++
		}
	}
	return c
}

// AttendanceFor tallies the entries of one employee.
func AttendanceFor(entries []attendance.Entry, employeeID int) AttendanceCounts {
	return countAttendance(entries, func(e attendance.Entry) bool {
		return e.EmployeeID == employeeID
	})
}

// AttendanceRate is (present + late) / total entries of the employee as a
// rounded percentage; 0 when the employee has no entries.
func AttendanceRate(entries []attendance.Entry, employeeID int) int {
	return AttendanceFor(entries, employeeID).Rate()
}

// DailyAttendance tallies all entries recorded for the calendar date.
func DailyAttendance(entries []attendance.Entry, date time.Time) AttendanceCounts {
	day := clock.DateOf(date)
	return countAttendance(entries, func(e attendance.Entry) bool {
		return clock.DateOf(e.Date).Equal(day)
	})
}

// IsOverdue holds iff today is strictly after the due date and the task is
// not completed. Only calendar dates are compared.
func IsOverdue(t task.Task, today time.Time) bool {
	if t.Status.IsCompleted() {
		return false
	}
	return clock.DateOf(today).After(clock.DateOf(t.DueDate))
}

// EffectiveStatus is the status to display: overdue replaces the stored
// status of an open task past its due date.
func EffectiveStatus(t task.Task, today time.Time) task.Status {
	if IsOverdue(t, today) {
		return task.StatusOverdue
	}
	return t.Status
}

// ClassifyPerformance maps a percentage to its tier:
// excellent >= 90, good 80-89, needs-improvement < 80.
func ClassifyPerformance(percent int) employee.PerformanceTier {
	switch {
	case percent >= 90:
		return employee.TierExcellent
	case percent >= 80:
		return employee.TierGood
	default:
		return employee.TierNeedsImprovement
	}
}

// TaskBreakdown counts one employee's task records by state. Overdue is
// counted in addition to the stored status.
type TaskBreakdown struct {
	CompletedOnTime int
	CompletedLate   int
	InProgress      int
	Pending         int
	Overdue         int
	Total           int
}

func TaskBreakdownFor(tasks []task.Task, employeeID int, today time.Time) TaskBreakdown {
	var b TaskBreakdown
	for _, t := range tasks {
		if t.AssignedTo != employeeID {
			continue
		}
		b.Total++
		switch t.Status {
		case task.StatusCompletedOnTime:
			b.CompletedOnTime++
		case task.StatusCompletedLate:
			b.CompletedLate++
		case task.StatusInProgress:
			b.InProgress++
		case task.StatusPending:
			b.Pending++
		}
		if IsOverdue(t, today) {
			b.Overdue++
		}
	}
	return b
}

// CountOverdue counts overdue tasks across the whole collection.
func CountOverdue(tasks []task.Task, today time.Time) int {
	var n int
	for _, t := range tasks {
		if IsOverdue(t, today) {
			n++
		}
	}
	return n
}

// WorkHours summarizes the work entries of one employee.
type WorkHours struct {
	Entries int
	Total   decimal.Decimal
}

// Average is total/entries rounded to one decimal place, 0 without entries.
func (w WorkHours) Average() decimal.Decimal {
	if w.Entries == 0 {
		return decimal.Zero
	}
	return w.Total.Div(decimal.NewFromInt(int64(w.Entries))).Round(1)
}

func WorkHoursFor(entries []workentry.WorkEntry, employeeID int) WorkHours {
	w := WorkHours{Total: decimal.Zero}
	for _, e := range entries {
		if e.EmployeeID != employeeID {
			continue
		}
		w.Entries++
		w.Total = w.Total.Add(e.HoursWorked)
	}
	return w
}

// EmployeeName resolves an id for display, degrading to "Unknown".
func EmployeeName(employees []employee.Employee, id int) string {
	for _, e := range employees {
		if e.ID == id {
			return e.Name
		}
	}
	return employee.UnknownName
}

// Round rounds half away from zero to the nearest integer.
func Round(v float64) int {
	return int(math.Round(v))
}
