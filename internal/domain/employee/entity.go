package employee

import "strings"

type Employee struct {
	ID             int
	Name           string
	Position       string
	Department     string
	Email          string
	Avatar         string
	Performance    int
	Attendance     int
	TasksCompleted int
	TotalTasks     int
	LateComings    int
	Status         Status
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusOnLeave  Status = "on-leave"
)

// PerformanceTier buckets a percentage score. Tiers do not overlap.
type PerformanceTier string

const (
	TierExcellent        PerformanceTier = "excellent"
	TierGood             PerformanceTier = "good"
	TierNeedsImprovement PerformanceTier = "needs-improvement"
)

// DefaultAvatar is used when a record is created without one.
const DefaultAvatar = "/placeholder.svg?height=40&width=40"

// UnknownName is shown when an employee id cannot be resolved.
const UnknownName = "Unknown"

// HasRequiredFields reports whether the identity fields are all non-blank.
func (e Employee) HasRequiredFields() bool {
	for _, s := range []string{e.Name, e.Position, e.Department, e.Email} {
		if strings.TrimSpace(s) == "" {
			return false
		}
	}
	return true
}

// Normalize clamps the summary metrics into their valid ranges.
func (e Employee) Normalize() Employee {
	e.Performance = clampPercent(e.Performance)
	e.Attendance = clampPercent(e.Attendance)
	if e.LateComings < 0 {
		e.LateComings = 0
	}
	if e.TotalTasks < 0 {
		e.TotalTasks = 0
	}
	if e.TasksCompleted < 0 {
		e.TasksCompleted = 0
	}
	if e.TasksCompleted > e.TotalTasks {
		e.TasksCompleted = e.TotalTasks
	}
	if e.Status == "" {
		e.Status = StatusActive
	}
	return e
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
